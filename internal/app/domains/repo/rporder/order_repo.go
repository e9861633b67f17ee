package rporder

import (
	"context"

	"opne/internal/app/domains/entity/etorder"
)

// QueryFilter 看板查询条件
type QueryFilter struct {
	Statuses        []string
	PriorityLevels  []int
	ShippingMethods []string
	HighValueOnly   bool
	VIPOnly         bool
	Search          string // 订单号/客户邮箱模糊匹配

	SortBy  string // 排序字段（空值走默认排序）
	SortDir string // asc / desc

	Offset int
	Limit  int
}

// OrderRepository 订单仓储接口（只定义，不实现）
// 实现在 gorm impl 中
type OrderRepository interface {
	// Create 创建订单及其明细（单事务）
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// UpdateFields 按字段更新订单，订单不存在返回 errorx.ErrOrderNotFound
	UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error

	// ListByStatus 按状态集合查询订单，manualOverride 过滤人工覆盖标记
	ListByStatus(ctx context.Context, statuses []etorder.Status, manualOverride bool) ([]*etorder.Order, error)

	// UpdateFieldsWithHistory 字段更新 + 状态历史追加，单事务写入
	UpdateFieldsWithHistory(ctx context.Context, orderID string, fields map[string]interface{}, history *etorder.StatusHistory) error

	// UpdatePriorityComputation 重算后刷新优先级相关字段（auto_priority_assigned 置 true）
	UpdatePriorityComputation(ctx context.Context, orderID string, score, level int, fulfillmentPriority string, tags []string) error

	// AppendStatusHistory 追加一条状态流转历史
	AppendStatusHistory(ctx context.Context, history *etorder.StatusHistory) error

	// Query 看板查询：过滤 + 排序 + 分页，返回结果页与总匹配数
	Query(ctx context.Context, filter *QueryFilter) ([]*etorder.Order, int64, error)
}
