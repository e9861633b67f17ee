package rprule

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"opne/internal/app/domains/entity/etrule"
	"opne/internal/app/infra/persistence/entity"
)

// RuleRepositoryImpl 规则仓储实现（MySQL）
type RuleRepositoryImpl struct {
	db *gorm.DB
}

// NewRuleRepository 创建规则仓储实例
func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &RuleRepositoryImpl{db: db}
}

// ListActive 加载启用的规则，按 rule_order 升序
func (r *RuleRepositoryImpl) ListActive(ctx context.Context) ([]*etrule.Rule, error) {
	var pos []entity.PriorityRule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("rule_order ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*etrule.Rule, 0, len(pos))
	for i := range pos {
		rules = append(rules, toDomainRule(&pos[i]))
	}
	return rules, nil
}

// toDomainRule 将存储行解析为带类型条件变体的规则
// 字段与规则类型不匹配时变体为 nil，评估时按 0 贡献处理
func toDomainRule(po *entity.PriorityRule) *etrule.Rule {
	rule := &etrule.Rule{
		ID:         po.ID,
		Name:       po.Name,
		Type:       etrule.RuleType(po.RuleType),
		Adjustment: po.PriorityAdjustment,
		RuleOrder:  po.RuleOrder,
	}

	switch rule.Type {
	case etrule.RuleTypeOrderValue:
		if po.ConditionField == "total_amount" {
			if threshold, err := strconv.ParseFloat(po.ConditionValue, 64); err == nil {
				rule.OrderValue = &etrule.OrderValueCondition{
					Operator:  po.ConditionOperator,
					Threshold: threshold,
				}
			}
		}
	case etrule.RuleTypeShippingMethod:
		if po.ConditionField == "shipping_method" {
			rule.ShippingMethod = &etrule.ShippingMethodCondition{
				Operator: po.ConditionOperator,
				Methods:  etrule.ParseConditionMethods(po.ConditionValue),
			}
		}
	case etrule.RuleTypeCustomerTier:
		if po.ConditionField == "is_vip_customer" || po.ConditionField == "is_repeat_customer" {
			rule.CustomerTier = &etrule.CustomerTierCondition{
				Field: po.ConditionField,
				Value: po.ConditionValue,
			}
		}
	}

	return rule
}
