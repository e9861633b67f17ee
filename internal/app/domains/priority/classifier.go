package priority

import (
	"strings"

	"opne/internal/app/domains/entity/etorder"
)

// 标签相关金额阈值
const (
	HighValueThreshold  = 500
	LargeOrderThreshold = 1000
	PremiumThreshold    = 2000
)

// 描述性标签
const (
	TagHighValue       = "high_value"
	TagExpressShipping = "express_shipping"
	TagVIPCustomer     = "vip_customer"
	TagRepeatCustomer  = "repeat_customer"
	TagLargeOrder      = "large_order"
	TagPremiumOrder    = "premium_order"
)

// expressMethods 视为加急的配送方式
var expressMethods = map[string]bool{
	"express":   true,
	"overnight": true,
	"next_day":  true,
}

// ScoreToLevel 分值映射优先级等级（1 最紧急，5 最低）
func ScoreToLevel(score int) int {
	switch {
	case score >= 80:
		return 1
	case score >= 65:
		return 2
	case score >= 35:
		return 3
	case score >= 20:
		return 4
	default:
		return 5
	}
}

// LevelToLabel 等级映射展示标签，越界回落 NORMAL
func LevelToLabel(level int) string {
	switch level {
	case 1:
		return "URGENT"
	case 2:
		return "HIGH"
	case 3:
		return "NORMAL"
	case 4:
		return "LOW"
	case 5:
		return "LOWEST"
	default:
		return "NORMAL"
	}
}

// LevelToFulfillmentPriority 等级映射履约优先级，越界回落 normal
func LevelToFulfillmentPriority(level int) etorder.FulfillmentPriority {
	switch level {
	case 1:
		return etorder.FulfillmentUrgent
	case 2:
		return etorder.FulfillmentHigh
	case 3:
		return etorder.FulfillmentNormal
	case 4, 5:
		return etorder.FulfillmentLow
	default:
		return etorder.FulfillmentNormal
	}
}

// IsExpressMethod 判断配送方式是否加急
func IsExpressMethod(method string) bool {
	return expressMethods[strings.ToLower(strings.TrimSpace(method))]
}

// GenerateTags 从订单属性派生描述性标签
// 各标签相互独立，可叠加
func GenerateTags(attrs OrderAttributes) []string {
	tags := make([]string, 0, 6)

	if attrs.IsHighValue || attrs.TotalAmount >= HighValueThreshold {
		tags = append(tags, TagHighValue)
	}
	if attrs.IsExpressShipping || IsExpressMethod(attrs.ShippingMethod) {
		tags = append(tags, TagExpressShipping)
	}
	if attrs.IsVIPCustomer {
		tags = append(tags, TagVIPCustomer)
	}
	if attrs.IsRepeatCustomer {
		tags = append(tags, TagRepeatCustomer)
	}
	if attrs.TotalAmount >= LargeOrderThreshold {
		tags = append(tags, TagLargeOrder)
	}
	if attrs.TotalAmount >= PremiumThreshold {
		tags = append(tags, TagPremiumOrder)
	}

	return tags
}
