package svorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/model"
	"opne/internal/app/domains/priority"
	"opne/internal/app/domains/repo/rpcustomer"
	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/domains/repo/rprule"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/logger"
	"opne/internal/app/pkg/ordernum"
)

// EventPublisher 变更事件发布接口
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *model.OrderChangeEvent) error
}

// OrderService 订单生命周期服务
// 职责：创建订单（含优先级计算）、更新优先级/状态、全量重算清扫
type OrderService struct {
	orderRepo    rporder.OrderRepository
	ruleRepo     rprule.RuleRepository
	customerRepo rpcustomer.CustomerRepository
	publisher    EventPublisher
	numGen       *ordernum.Generator
	logger       logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(
	orderRepo rporder.OrderRepository,
	ruleRepo rprule.RuleRepository,
	customerRepo rpcustomer.CustomerRepository,
	publisher EventPublisher,
	log logger.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		ruleRepo:     ruleRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
		numGen:       ordernum.NewGenerator(),
		logger:       log,
	}
}

// CreateOrderInput 创建订单入参
type CreateOrderInput struct {
	CustomerID     *int64
	CustomerEmail  string
	Subtotal       float64
	TaxAmount      float64
	ShippingAmount float64
	DiscountAmount float64
	TotalAmount    float64
	ShippingMethod string
	Items          []CreateOrderItemInput
}

// CreateOrderItemInput 订单明细入参
type CreateOrderItemInput struct {
	ProductName          string
	SKU                  string
	Quantity             int
	UnitPrice            float64
	IsDigital            bool
	NeedsSpecialHandling bool
}

// CreateOrder 创建订单（完整业务流程）
// 1. 生成订单号、构造明细
// 2. 客户富化（VIP/复购标记）
// 3. 打分 + 分级 + 打标签
// 4. 订单与明细单事务落库
// 5. 发布 insert 变更事件
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*etorder.Order, error) {
	items := make([]*etorder.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, &etorder.OrderItem{
			ID:                   uuid.New().String(),
			ProductName:          it.ProductName,
			SKU:                  it.SKU,
			Quantity:             it.Quantity,
			UnitPrice:            it.UnitPrice,
			LineTotal:            it.UnitPrice * float64(it.Quantity),
			IsDigital:            it.IsDigital,
			NeedsSpecialHandling: it.NeedsSpecialHandling,
		})
	}

	order, err := etorder.NewOrder(uuid.New().String(), s.numGen.Next(), input.CustomerEmail, items)
	if err != nil {
		return nil, fmt.Errorf("create order entity failed: %w", err)
	}
	for _, item := range items {
		item.OrderID = order.ID
	}

	order.CustomerID = input.CustomerID
	order.Subtotal = input.Subtotal
	order.TaxAmount = input.TaxAmount
	order.ShippingAmount = input.ShippingAmount
	order.DiscountAmount = input.DiscountAmount
	order.TotalAmount = input.TotalAmount
	order.ShippingMethod = input.ShippingMethod

	// 客户富化
	s.enrichFromCustomer(ctx, order)
	order.IsExpressShipping = priority.IsExpressMethod(order.ShippingMethod)
	order.IsHighValue = order.TotalAmount >= priority.HighValueThreshold

	// 优先级计算
	s.computePriority(ctx, order)
	order.AutoPriorityAssigned = true

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	// 发布失败只记录日志，不影响订单创建成功
	s.publishEvent(ctx, model.EventInsert, nil, order)

	return order, nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

// UpdatePriority 更新订单优先级
// 从 newLevel 重推履约优先级并持久化，不触碰分值和标签；
// isManual 置位后，后续重算清扫会跳过该订单
func (s *OrderService) UpdatePriority(ctx context.Context, orderID string, newLevel int, isManual bool) (*etorder.Order, error) {
	if newLevel < 1 || newLevel > 5 {
		return nil, errorx.ErrInvalidPriority
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	previous := snapshot(order)

	fulfillment := priority.LevelToFulfillmentPriority(newLevel)
	err = s.orderRepo.UpdateFields(ctx, orderID, map[string]interface{}{
		"priority_level":           newLevel,
		"fulfillment_priority":     string(fulfillment),
		"manual_priority_override": isManual,
		"auto_priority_assigned":   !isManual,
	})
	if err != nil {
		return nil, fmt.Errorf("update priority failed: %w", err)
	}

	order.PriorityLevel = newLevel
	order.FulfillmentPriority = fulfillment
	order.ManualPriorityOverride = isManual
	order.AutoPriorityAssigned = !isManual

	s.publishEventWithPrevious(ctx, model.EventUpdate, previous, order)

	return order, nil
}

// UpdateStatus 更新订单状态并追加一条状态历史
// 订单不存在返回 errorx.ErrOrderNotFound；
// 到达 confirmed/shipped/delivered 时打对应时间戳；状态流转不改变优先级
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, newStatus etorder.Status, changedBy, reason string) (*etorder.Order, error) {
	if !etorder.ValidStatus(string(newStatus)) {
		return nil, errorx.ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	previous := snapshot(order)
	previousStatus := order.Status

	now := time.Now()
	fields := map[string]interface{}{
		"status": string(newStatus),
	}
	switch newStatus {
	case etorder.StatusConfirmed:
		fields["confirmed_at"] = now
	case etorder.StatusShipped:
		fields["shipped_at"] = now
	case etorder.StatusDelivered:
		fields["delivered_at"] = now
	}

	history := &etorder.StatusHistory{
		ID:             uuid.New().String(),
		OrderID:        orderID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		ChangedBy:      changedBy,
		Reason:         reason,
		PriorityBefore: order.PriorityLevel,
		PriorityAfter:  order.PriorityLevel,
		CreatedAt:      now,
	}

	if err := s.orderRepo.UpdateFieldsWithHistory(ctx, orderID, fields, history); err != nil {
		return nil, err
	}

	order.Status = newStatus
	order.ApplyStatusTimestamp(newStatus, now)

	s.publishEventWithPrevious(ctx, model.EventUpdate, previous, order)

	return order, nil
}

// RecalculateAll 全量重算清扫
// 覆盖 status ∈ {pending, confirmed, processing} 且未人工覆盖的订单；
// 单个订单失败只计数不中断；迭代之间响应 ctx 取消
func (s *OrderService) RecalculateAll(ctx context.Context) (updated, failed int, err error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load active rules failed: %w", err)
	}

	orders, err := s.orderRepo.ListByStatus(ctx, etorder.ActiveStatuses(), false)
	if err != nil {
		return 0, 0, fmt.Errorf("list orders failed: %w", err)
	}

	for _, order := range orders {
		// 调用方取消时停止后续变更，已生效的不回滚
		select {
		case <-ctx.Done():
			s.logger.Warnf(ctx, "[RecalculateAll] cancelled: updated=%d, failed=%d", updated, failed)
			return updated, failed, nil
		default:
		}

		previous := snapshot(order)
		attrs := attributes(order)

		score := priority.ComputeScore(ctx, attrs, rules, s.logger)
		level := priority.ScoreToLevel(score)
		fulfillment := priority.LevelToFulfillmentPriority(level)
		tags := priority.GenerateTags(attrs)

		if err := s.orderRepo.UpdatePriorityComputation(ctx, order.ID, score, level, string(fulfillment), tags); err != nil {
			s.logger.Errorf(ctx, "[RecalculateAll] update failed: order_id=%s, error=%v", order.ID, err)
			failed++
			continue
		}

		order.PriorityScore = score
		order.PriorityLevel = level
		order.FulfillmentPriority = fulfillment
		order.Tags = tags
		order.AutoPriorityAssigned = true
		updated++

		s.publishEventWithPrevious(ctx, model.EventUpdate, previous, order)
	}

	s.logger.Infof(ctx, "[RecalculateAll] sweep complete: updated=%d, failed=%d", updated, failed)
	return updated, failed, nil
}

// enrichFromCustomer 从客户档案富化订单标记
// 客户缺失或查询失败时不阻断下单，按游客处理
func (s *OrderService) enrichFromCustomer(ctx context.Context, order *etorder.Order) {
	if order.CustomerID == nil {
		return
	}

	customer, err := s.customerRepo.GetByID(ctx, *order.CustomerID)
	if err != nil {
		s.logger.Warnf(ctx, "[CreateOrder] load customer failed: customer_id=%d, error=%v", *order.CustomerID, err)
		return
	}

	order.IsVIPCustomer = customer.IsVIP
	order.IsRepeatCustomer = customer.IsRepeat()
}

// computePriority 打分 + 分级 + 打标签
// 规则加载失败按空规则集处理（基础分 50），下单不依赖规则表可用性
func (s *OrderService) computePriority(ctx context.Context, order *etorder.Order) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		s.logger.Warnf(ctx, "[CreateOrder] load active rules failed, using base score: error=%v", err)
		rules = nil
	}

	attrs := attributes(order)
	order.PriorityScore = priority.ComputeScore(ctx, attrs, rules, s.logger)
	order.PriorityLevel = priority.ScoreToLevel(order.PriorityScore)
	order.FulfillmentPriority = priority.LevelToFulfillmentPriority(order.PriorityLevel)
	order.Tags = priority.GenerateTags(attrs)
}

// publishEvent 发布变更事件（insert）
func (s *OrderService) publishEvent(ctx context.Context, event string, previous, current *etorder.Order) {
	s.publishEventWithPrevious(ctx, event, snapshot(previous), current)
}

// publishEventWithPrevious 发布变更事件，失败只记录日志
func (s *OrderService) publishEventWithPrevious(ctx context.Context, event string, previous *model.OrderSnapshot, current *etorder.Order) {
	if s.publisher == nil {
		return
	}

	evt := &model.OrderChangeEvent{
		RequestID: uuid.New().String(),
		Event:     event,
		Previous:  previous,
		Current:   snapshot(current),
		EmittedAt: time.Now().Unix(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		s.logger.Warnf(ctx, "[OrderService] publish %s event failed: order_id=%s, error=%v", event, current.ID, err)
	}
}

// attributes 提取打分/打标签所需的订单属性
func attributes(order *etorder.Order) priority.OrderAttributes {
	return priority.OrderAttributes{
		TotalAmount:       order.TotalAmount,
		ShippingMethod:    order.ShippingMethod,
		IsExpressShipping: order.IsExpressShipping,
		IsVIPCustomer:     order.IsVIPCustomer,
		IsRepeatCustomer:  order.IsRepeatCustomer,
		IsHighValue:       order.IsHighValue,
	}
}

// snapshot 构造订单快照
func snapshot(order *etorder.Order) *model.OrderSnapshot {
	if order == nil {
		return nil
	}
	return &model.OrderSnapshot{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		CustomerEmail:       order.CustomerEmail,
		TotalAmount:         order.TotalAmount,
		Status:              string(order.Status),
		PriorityLevel:       order.PriorityLevel,
		PriorityScore:       order.PriorityScore,
		FulfillmentPriority: string(order.FulfillmentPriority),
		ShippingMethod:      order.ShippingMethod,
		IsExpressShipping:   order.IsExpressShipping,
		IsVIPCustomer:       order.IsVIPCustomer,
		IsHighValue:         order.IsHighValue,
		PlacedAt:            order.PlacedAt,
	}
}
