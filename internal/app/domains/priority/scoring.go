package priority

import (
	"context"

	"opne/internal/app/domains/entity/etrule"
	"opne/internal/app/pkg/logger"
)

// 分值边界
const (
	BaseScore = 50
	MinScore  = 1
	MaxScore  = 100
)

// OrderAttributes 打分与打标签读取的订单属性
// 与持久化 Order 结构解耦，评分/分级/标签只依赖这里的字段
type OrderAttributes struct {
	TotalAmount       float64
	ShippingMethod    string
	IsExpressShipping bool
	IsVIPCustomer     bool
	IsRepeatCustomer  bool
	IsHighValue       bool
}

// ComputeScore 应用规则集计算优先级分值
// 从基础分 50 开始，按 rule_order 升序逐条累加命中规则的调整值，最后夹到 [1,100]；
// 单条规则评估出错只记录日志按 0 处理，不中断后续规则
func ComputeScore(ctx context.Context, attrs OrderAttributes, rules []*etrule.Rule, log logger.Logger) int {
	score := BaseScore

	for _, rule := range rules {
		score += evaluateRule(ctx, attrs, rule, log)
	}

	return Clamp(score)
}

// evaluateRule 评估单条规则，返回分值贡献
func evaluateRule(ctx context.Context, attrs OrderAttributes, rule *etrule.Rule, log logger.Logger) (adjustment int) {
	// 单规则故障隔离：panic 只影响本条规则
	defer func() {
		if r := recover(); r != nil {
			if log != nil {
				log.Warnf(ctx, "[ComputeScore] rule evaluation panic: rule_id=%d, name=%s, recovered=%v",
					rule.ID, rule.Name, r)
			}
			adjustment = 0
		}
	}()

	matched := false
	switch rule.Type {
	case etrule.RuleTypeOrderValue:
		matched = rule.OrderValue != nil && rule.OrderValue.Matches(attrs.TotalAmount)
	case etrule.RuleTypeShippingMethod:
		matched = rule.ShippingMethod != nil && rule.ShippingMethod.Matches(attrs.ShippingMethod)
	case etrule.RuleTypeCustomerTier:
		matched = rule.CustomerTier != nil && rule.CustomerTier.Matches(attrs.IsVIPCustomer, attrs.IsRepeatCustomer)
	}

	if matched {
		return rule.Adjustment
	}
	return 0
}

// Clamp 将分值夹到 [MinScore, MaxScore]
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
