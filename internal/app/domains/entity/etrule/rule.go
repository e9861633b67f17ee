package etrule

import "strings"

// RuleType 规则类型（封闭集合）
type RuleType string

const (
	RuleTypeOrderValue     RuleType = "order_value"
	RuleTypeShippingMethod RuleType = "shipping_method"
	RuleTypeCustomerTier   RuleType = "customer_tier"
)

// Rule 优先级规则（领域对象）
// 条件按 rule_type 拆成带类型的变体，只有对应变体非 nil 时规则才可能命中；
// 存储层字段与类型不匹配时变体为 nil，评估贡献为 0
type Rule struct {
	ID         int64
	Name       string
	Type       RuleType
	Adjustment int // 有符号分值调整
	RuleOrder  int // 评估顺序（升序）

	OrderValue     *OrderValueCondition
	ShippingMethod *ShippingMethodCondition
	CustomerTier   *CustomerTierCondition
}

// OrderValueCondition 订单金额条件
type OrderValueCondition struct {
	Operator  string  // >=, >, <=, <, =
	Threshold float64 // 比较阈值
}

// Matches 评估金额条件
func (c *OrderValueCondition) Matches(totalAmount float64) bool {
	switch c.Operator {
	case ">=":
		return totalAmount >= c.Threshold
	case ">":
		return totalAmount > c.Threshold
	case "<=":
		return totalAmount <= c.Threshold
	case "<":
		return totalAmount < c.Threshold
	case "=", "==":
		return totalAmount == c.Threshold
	}
	return false
}

// ShippingMethodCondition 配送方式条件
type ShippingMethodCondition struct {
	Operator string   // = 或 IN
	Methods  []string // 比较值（已按逗号拆分并小写）
}

// Matches 评估配送方式条件（大小写不敏感）
func (c *ShippingMethodCondition) Matches(shippingMethod string) bool {
	method := strings.ToLower(strings.TrimSpace(shippingMethod))

	switch strings.ToUpper(c.Operator) {
	case "=", "==":
		return len(c.Methods) > 0 && c.Methods[0] == method
	case "IN":
		for _, m := range c.Methods {
			if m == method {
				return true
			}
		}
	}
	return false
}

// CustomerTierCondition 客户分层条件
// 仅当存储的比较值为字面量 "true" 且对应标记为真时命中
type CustomerTierCondition struct {
	Field string // is_vip_customer / is_repeat_customer
	Value string // 存储的比较值
}

// Matches 评估客户分层条件
func (c *CustomerTierCondition) Matches(isVIP, isRepeat bool) bool {
	if c.Value != "true" {
		return false
	}
	switch c.Field {
	case "is_vip_customer":
		return isVIP
	case "is_repeat_customer":
		return isRepeat
	}
	return false
}

// ParseConditionMethods 将存储的比较值拆分为小写方法列表
func ParseConditionMethods(value string) []string {
	parts := strings.Split(value, ",")
	methods := make([]string, 0, len(parts))
	for _, p := range parts {
		if m := strings.ToLower(strings.TrimSpace(p)); m != "" {
			methods = append(methods, m)
		}
	}
	return methods
}
