package entity

import "time"

// PriorityRule 优先级规则实体
// 规则由外部管理端维护，本子系统只读消费
type PriorityRule struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string    `gorm:"column:name;type:varchar(128);not null"`
	RuleType           string    `gorm:"column:rule_type;type:varchar(32);not null"`
	ConditionField     string    `gorm:"column:condition_field;type:varchar(64);not null"`
	ConditionOperator  string    `gorm:"column:condition_operator;type:varchar(8);not null"`
	ConditionValue     string    `gorm:"column:condition_value;type:varchar(255);not null"`
	PriorityAdjustment int       `gorm:"column:priority_adjustment;not null;default:0"`
	IsActive           bool      `gorm:"column:is_active;not null;default:1;index:idx_active"`
	RuleOrder          int       `gorm:"column:rule_order;not null;default:0"`
	CreatedAt          time.Time `gorm:"column:created_at;not null"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (PriorityRule) TableName() string {
	return "priority_rules"
}

// Customer 客户实体（只读）
type Customer struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Email       string    `gorm:"column:email;type:varchar(255);uniqueIndex:uk_email;not null"`
	TotalSpent  float64   `gorm:"column:total_spent;type:decimal(12,2);not null;default:0"`
	OrderCount  int       `gorm:"column:order_count;not null;default:0"`
	LoyaltyTier string    `gorm:"column:loyalty_tier;type:varchar(16);not null;default:'standard'"`
	IsVIP       bool      `gorm:"column:is_vip;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
