package rprule

import (
	"context"

	"opne/internal/app/domains/entity/etrule"
)

// RuleRepository 优先级规则仓储接口
type RuleRepository interface {
	// ListActive 加载启用的规则，按 rule_order 升序
	ListActive(ctx context.Context) ([]*etrule.Rule, error)
}
