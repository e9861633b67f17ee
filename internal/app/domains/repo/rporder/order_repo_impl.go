package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/infra/persistence/entity"
	"opne/internal/app/pkg/errorx"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单及其明细，单事务写入
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}

	items := make([]*entity.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &entity.OrderItem{
			ID:                   item.ID,
			OrderID:              order.ID,
			ProductName:          item.ProductName,
			SKU:                  item.SKU,
			Quantity:             item.Quantity,
			UnitPrice:            item.UnitPrice,
			LineTotal:            item.LineTotal,
			IsDigital:            item.IsDigital,
			NeedsSpecialHandling: item.NeedsSpecialHandling,
			CreatedAt:            order.CreatedAt,
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(po).Error; err != nil {
			return fmt.Errorf("create order failed: %w", err)
		}
		if len(items) > 0 {
			if err := tx.Create(items).Error; err != nil {
				return fmt.Errorf("create order items failed: %w", err)
			}
		}
		return nil
	})
}

// GetByID 根据ID查询订单（含明细）
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}

	order, err := r.toDomainModel(&po)
	if err != nil {
		return nil, err
	}

	var itemPOs []entity.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&itemPOs).Error; err != nil {
		return nil, err
	}
	for i := range itemPOs {
		order.Items = append(order.Items, itemToDomain(&itemPOs[i]))
	}

	return order, nil
}

// UpdateFields 按字段更新订单
func (r *OrderRepositoryImpl) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("update order failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errorx.ErrOrderNotFound
	}
	return nil
}

// ListByStatus 按状态集合查询订单
func (r *OrderRepositoryImpl) ListByStatus(ctx context.Context, statuses []etorder.Status, manualOverride bool) ([]*etorder.Order, error) {
	statusStrs := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrs = append(statusStrs, string(s))
	}

	var pos []entity.Order
	err := r.db.WithContext(ctx).
		Where("status IN ? AND manual_priority_override = ?", statusStrs, manualOverride).
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateFieldsWithHistory 字段更新 + 状态历史追加，单事务写入
// 订单不存在返回 errorx.ErrOrderNotFound，历史写入失败整体回滚
func (r *OrderRepositoryImpl) UpdateFieldsWithHistory(ctx context.Context, orderID string, fields map[string]interface{}, history *etorder.StatusHistory) error {
	fields["updated_at"] = time.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Order{}).
			Where("id = ?", orderID).
			Updates(fields)
		if result.Error != nil {
			return fmt.Errorf("update order failed: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errorx.ErrOrderNotFound
		}

		po := &entity.OrderStatusHistory{
			ID:             history.ID,
			OrderID:        history.OrderID,
			PreviousStatus: string(history.PreviousStatus),
			NewStatus:      string(history.NewStatus),
			ChangedBy:      history.ChangedBy,
			Reason:         history.Reason,
			PriorityBefore: history.PriorityBefore,
			PriorityAfter:  history.PriorityAfter,
			CreatedAt:      history.CreatedAt,
		}
		if err := tx.Create(po).Error; err != nil {
			return fmt.Errorf("append status history failed: %w", err)
		}
		return nil
	})
}

// UpdatePriorityComputation 重算后刷新优先级相关字段
func (r *OrderRepositoryImpl) UpdatePriorityComputation(ctx context.Context, orderID string, score, level int, fulfillmentPriority string, tags []string) error {
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return err
	}

	return r.UpdateFields(ctx, orderID, map[string]interface{}{
		"priority_score":         score,
		"priority_level":         level,
		"fulfillment_priority":   fulfillmentPriority,
		"tags":                   tagsJSON,
		"auto_priority_assigned": true,
	})
}

// AppendStatusHistory 追加状态流转历史
func (r *OrderRepositoryImpl) AppendStatusHistory(ctx context.Context, history *etorder.StatusHistory) error {
	po := &entity.OrderStatusHistory{
		ID:             history.ID,
		OrderID:        history.OrderID,
		PreviousStatus: string(history.PreviousStatus),
		NewStatus:      string(history.NewStatus),
		ChangedBy:      history.ChangedBy,
		Reason:         history.Reason,
		PriorityBefore: history.PriorityBefore,
		PriorityAfter:  history.PriorityAfter,
		CreatedAt:      history.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// Query 看板查询：过滤 + 排序 + 分页
func (r *OrderRepositoryImpl) Query(ctx context.Context, filter *QueryFilter) ([]*etorder.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if len(filter.PriorityLevels) > 0 {
		query = query.Where("priority_level IN ?", filter.PriorityLevels)
	}
	if len(filter.ShippingMethods) > 0 {
		query = query.Where("shipping_method IN ?", filter.ShippingMethods)
	}
	if filter.HighValueOnly {
		query = query.Where("is_high_value = ?", true)
	}
	if filter.VIPOnly {
		query = query.Where("is_vip_customer = ?", true)
	}
	if filter.Search != "" {
		like := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("order_number LIKE ? OR customer_email LIKE ?", like, like)
	}

	// 总匹配数与分页无关
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(buildOrderClause(filter))

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var pos []entity.Order
	if err := query.Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// LIKE 通配符需转义，避免搜索词里的 % / _ 被当作模式匹配
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义搜索词中的 LIKE 元字符
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildOrderClause 构造排序子句
// 默认排序：优先级等级升序 → 分值降序 → 下单时间升序（最紧急、分最高、等最久的在前）
func buildOrderClause(filter *QueryFilter) string {
	sortable := map[string]bool{
		"priority_level": true,
		"priority_score": true,
		"total_amount":   true,
		"placed_at":      true,
		"status":         true,
	}

	if filter.SortBy != "" && sortable[filter.SortBy] {
		dir := "ASC"
		if filter.SortDir == "desc" {
			dir = "DESC"
		}
		return fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	return "priority_level ASC, priority_score DESC, placed_at ASC"
}

// toGormModel 领域对象转换为 GORM 模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) (*entity.Order, error) {
	tagsJSON, err := json.Marshal(order.Tags)
	if err != nil {
		return nil, err
	}

	return &entity.Order{
		ID:                     order.ID,
		OrderNumber:            order.OrderNumber,
		CustomerID:             order.CustomerID,
		CustomerEmail:          order.CustomerEmail,
		Subtotal:               order.Subtotal,
		TaxAmount:              order.TaxAmount,
		ShippingAmount:         order.ShippingAmount,
		DiscountAmount:         order.DiscountAmount,
		TotalAmount:            order.TotalAmount,
		Status:                 string(order.Status),
		PriorityLevel:          order.PriorityLevel,
		PriorityScore:          order.PriorityScore,
		AutoPriorityAssigned:   order.AutoPriorityAssigned,
		ManualPriorityOverride: order.ManualPriorityOverride,
		FulfillmentPriority:    string(order.FulfillmentPriority),
		ShippingMethod:         order.ShippingMethod,
		IsExpressShipping:      order.IsExpressShipping,
		IsVIPCustomer:          order.IsVIPCustomer,
		IsRepeatCustomer:       order.IsRepeatCustomer,
		IsHighValue:            order.IsHighValue,
		Tags:                   tagsJSON,
		PlacedAt:               order.PlacedAt,
		ConfirmedAt:            order.ConfirmedAt,
		ShippedAt:              order.ShippedAt,
		DeliveredAt:            order.DeliveredAt,
		CreatedAt:              order.CreatedAt,
		UpdatedAt:              order.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.Order) (*etorder.Order, error) {
	var tags []string
	if len(po.Tags) > 0 {
		if err := json.Unmarshal(po.Tags, &tags); err != nil {
			return nil, err
		}
	}

	return &etorder.Order{
		ID:                     po.ID,
		OrderNumber:            po.OrderNumber,
		CustomerID:             po.CustomerID,
		CustomerEmail:          po.CustomerEmail,
		Subtotal:               po.Subtotal,
		TaxAmount:              po.TaxAmount,
		ShippingAmount:         po.ShippingAmount,
		DiscountAmount:         po.DiscountAmount,
		TotalAmount:            po.TotalAmount,
		Status:                 etorder.Status(po.Status),
		PriorityLevel:          po.PriorityLevel,
		PriorityScore:          po.PriorityScore,
		AutoPriorityAssigned:   po.AutoPriorityAssigned,
		ManualPriorityOverride: po.ManualPriorityOverride,
		FulfillmentPriority:    etorder.FulfillmentPriority(po.FulfillmentPriority),
		ShippingMethod:         po.ShippingMethod,
		IsExpressShipping:      po.IsExpressShipping,
		IsVIPCustomer:          po.IsVIPCustomer,
		IsRepeatCustomer:       po.IsRepeatCustomer,
		IsHighValue:            po.IsHighValue,
		Tags:                   tags,
		PlacedAt:               po.PlacedAt,
		ConfirmedAt:            po.ConfirmedAt,
		ShippedAt:              po.ShippedAt,
		DeliveredAt:            po.DeliveredAt,
		CreatedAt:              po.CreatedAt,
		UpdatedAt:              po.UpdatedAt,
	}, nil
}

// itemToDomain 明细 GORM 模型转换为领域对象
func itemToDomain(po *entity.OrderItem) *etorder.OrderItem {
	return &etorder.OrderItem{
		ID:                   po.ID,
		OrderID:              po.OrderID,
		ProductName:          po.ProductName,
		SKU:                  po.SKU,
		Quantity:             po.Quantity,
		UnitPrice:            po.UnitPrice,
		LineTotal:            po.LineTotal,
		IsDigital:            po.IsDigital,
		NeedsSpecialHandling: po.NeedsSpecialHandling,
	}
}
