package svnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/domains/model"
	"opne/internal/app/domains/repo/rpnotify"
	"opne/internal/app/pkg/logger"
)

// 高额告警阈值
const highValueAlertThreshold = 1000

// Broadcaster 实时广播接口（fire-and-forget）
type Broadcaster interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotifyService 通知与告警服务
// 职责：
// 1. 消费订单变更事件，按受众派生通知与告警
// 2. 向看板频道广播刷新提示
// 3. 已读/确认/统计操作
type NotifyService struct {
	notificationRepo rpnotify.NotificationRepository
	alertRepo        rpnotify.AlertRepository
	broadcaster      Broadcaster
	channel          string
	logger           logger.Logger
}

// NewNotifyService 创建通知服务实例
func NewNotifyService(
	notificationRepo rpnotify.NotificationRepository,
	alertRepo rpnotify.AlertRepository,
	broadcaster Broadcaster,
	channel string,
	log logger.Logger,
) *NotifyService {
	return &NotifyService{
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
		broadcaster:      broadcaster,
		channel:          channel,
		logger:           log,
	}
}

// HandleOrderEvent 处理一条订单变更事件
// insert：按订单特征生成通知与告警
// update：对比前后快照，优先级提升/状态变化各自产生通知；
//         仅当优先级提升到 1 级时重新评估告警
// 返回 error 表示处理失败（消息不确认，等待重投递）
func (s *NotifyService) HandleOrderEvent(ctx context.Context, event *model.OrderChangeEvent) error {
	if event == nil || event.Current == nil {
		return fmt.Errorf("invalid order event: current snapshot is nil")
	}
	order := event.Current

	switch event.Event {
	case model.EventInsert:
		if err := s.generateNotifications(ctx, order); err != nil {
			return err
		}
		if err := s.generateAlerts(ctx, order); err != nil {
			return err
		}

	case model.EventUpdate:
		if err := s.handleUpdate(ctx, event.Previous, order); err != nil {
			return err
		}

	default:
		// 未知事件类型按解析失败处理，记录后丢弃
		s.logger.Warnf(ctx, "[NotifyService] unknown event type: %s", event.Event)
		return nil
	}

	// 广播失败只记录日志，绝不让源头变更失败
	s.broadcast(ctx, event.Event, order)

	return nil
}

// generateNotifications 按订单特征生成通知（规则相互独立，可同时命中）
func (s *NotifyService) generateNotifications(ctx context.Context, order *model.OrderSnapshot) error {
	if order.PriorityLevel <= 2 {
		err := s.insertNotification(ctx, order.ID, etnotify.NotifyTypePriorityAssigned, etnotify.RecipientFulfillment,
			fmt.Sprintf("Order %s assigned priority level %d (%s)", order.OrderNumber, order.PriorityLevel, order.FulfillmentPriority))
		if err != nil {
			return err
		}
	}

	if order.IsHighValue {
		err := s.insertNotification(ctx, order.ID, etnotify.NotifyTypeHighValueOrder, etnotify.RecipientAdmin,
			fmt.Sprintf("High-value order %s received: $%.2f", order.OrderNumber, order.TotalAmount))
		if err != nil {
			return err
		}
	}

	if order.IsVIPCustomer {
		err := s.insertNotification(ctx, order.ID, etnotify.NotifyTypeVIPOrder, etnotify.RecipientCustomerService,
			fmt.Sprintf("VIP customer order %s placed by %s", order.OrderNumber, order.CustomerEmail))
		if err != nil {
			return err
		}
	}

	if order.IsExpressShipping {
		err := s.insertNotification(ctx, order.ID, etnotify.NotifyTypeExpressShipping, etnotify.RecipientFulfillment,
			fmt.Sprintf("Order %s requires express shipping (%s)", order.OrderNumber, order.ShippingMethod))
		if err != nil {
			return err
		}
	}

	return nil
}

// generateAlerts 按订单特征生成告警（需人工确认）
func (s *NotifyService) generateAlerts(ctx context.Context, order *model.OrderSnapshot) error {
	if order.PriorityLevel == 1 {
		err := s.insertAlert(ctx, order.ID, etnotify.AlertTypeUrgentPriority,
			fmt.Sprintf("Order %s flagged URGENT (score %d)", order.OrderNumber, order.PriorityScore))
		if err != nil {
			return err
		}
	}

	if order.TotalAmount >= highValueAlertThreshold {
		err := s.insertAlert(ctx, order.ID, etnotify.AlertTypeHighValueOrder,
			fmt.Sprintf("Order %s total $%.2f exceeds high-value threshold", order.OrderNumber, order.TotalAmount))
		if err != nil {
			return err
		}
	}

	if order.IsVIPCustomer {
		err := s.insertAlert(ctx, order.ID, etnotify.AlertTypeVIPOrder,
			fmt.Sprintf("VIP order %s requires attention", order.OrderNumber))
		if err != nil {
			return err
		}
	}

	if order.IsExpressShipping && order.PriorityLevel <= 2 {
		err := s.insertAlert(ctx, order.ID, etnotify.AlertTypeExpressPriority,
			fmt.Sprintf("Express order %s at priority level %d", order.OrderNumber, order.PriorityLevel))
		if err != nil {
			return err
		}
	}

	return nil
}

// handleUpdate 处理 update 事件：对比前后快照派生通知
func (s *NotifyService) handleUpdate(ctx context.Context, previous, current *model.OrderSnapshot) error {
	// 无前置快照时无法对比，按特征重新通知意义不大，直接跳过
	if previous == nil {
		s.logger.Warnf(ctx, "[NotifyService] update event without previous snapshot: order_id=%s", current.ID)
		return nil
	}

	// 优先级提升（数值变小更紧急）
	if current.PriorityLevel < previous.PriorityLevel {
		err := s.insertNotification(ctx, current.ID, etnotify.NotifyTypePriorityIncreased, etnotify.RecipientFulfillment,
			fmt.Sprintf("Order %s priority increased from level %d to %d", current.OrderNumber, previous.PriorityLevel, current.PriorityLevel))
		if err != nil {
			return err
		}

		// 提升到 1 级时重新评估告警
		if current.PriorityLevel == 1 {
			if err := s.generateAlerts(ctx, current); err != nil {
				return err
			}
		}
	}

	// 状态变化
	if current.Status != previous.Status {
		err := s.insertNotification(ctx, current.ID, etnotify.NotifyTypeStatusChange, etnotify.RecipientAdmin,
			fmt.Sprintf("Order %s status changed from %s to %s", current.OrderNumber, previous.Status, current.Status))
		if err != nil {
			return err
		}
	}

	return nil
}

// insertNotification 写入一条通知
func (s *NotifyService) insertNotification(ctx context.Context, orderID, notifyType string, recipient etnotify.RecipientType, message string) error {
	n := &etnotify.Notification{
		ID:            uuid.New().String(),
		OrderID:       orderID,
		Type:          notifyType,
		RecipientType: recipient,
		Message:       message,
		CreatedAt:     time.Now(),
	}
	if err := s.notificationRepo.Insert(ctx, n); err != nil {
		return fmt.Errorf("insert notification failed: %w", err)
	}
	return nil
}

// insertAlert 写入一条告警
func (s *NotifyService) insertAlert(ctx context.Context, orderID, alertType, message string) error {
	a := &etnotify.Alert{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Type:      alertType,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.alertRepo.Insert(ctx, a); err != nil {
		return fmt.Errorf("insert alert failed: %w", err)
	}
	return nil
}

// broadcast 向看板频道广播刷新提示
func (s *NotifyService) broadcast(ctx context.Context, eventType string, order *model.OrderSnapshot) {
	if s.broadcaster == nil {
		return
	}

	envelope := &model.DashboardEnvelope{
		Type:      "order_" + eventType,
		Order:     order,
		Timestamp: time.Now().Unix(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		s.logger.Errorf(ctx, "[NotifyService] marshal envelope failed: %v", err)
		return
	}

	if err := s.broadcaster.Publish(ctx, s.channel, payload); err != nil {
		s.logger.Errorf(ctx, "[NotifyService] broadcast failed: channel=%s, error=%v", s.channel, err)
	}
}

// ListUnread 查询某受众的未读通知，受众为空时不过滤
func (s *NotifyService) ListUnread(ctx context.Context, recipientType etnotify.RecipientType) ([]*etnotify.Notification, error) {
	return s.notificationRepo.ListUnread(ctx, recipientType)
}

// MarkRead 批量标记通知已读
func (s *NotifyService) MarkRead(ctx context.Context, ids []string) (int64, error) {
	return s.notificationRepo.MarkRead(ctx, ids)
}

// ListUnacknowledged 查询未确认告警
func (s *NotifyService) ListUnacknowledged(ctx context.Context) ([]*etnotify.Alert, error) {
	return s.alertRepo.ListUnacknowledged(ctx)
}

// Acknowledge 批量确认告警
func (s *NotifyService) Acknowledge(ctx context.Context, ids []string, acknowledgedBy string) (int64, error) {
	return s.alertRepo.Acknowledge(ctx, ids, acknowledgedBy)
}

// Stats 通知/告警聚合统计
type Stats struct {
	UnreadByRecipient    map[string]int64 `json:"unread_by_recipient"`
	UnacknowledgedByType map[string]int64 `json:"unacknowledged_by_type"`
	TotalUnread          int64            `json:"total_unread"`
	TotalUnacknowledged  int64            `json:"total_unacknowledged"`
}

// GetStats 统计未读通知与未确认告警
func (s *NotifyService) GetStats(ctx context.Context) (*Stats, error) {
	unread, err := s.notificationRepo.CountUnreadByRecipient(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread failed: %w", err)
	}
	unacked, err := s.alertRepo.CountUnacknowledgedByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unacknowledged failed: %w", err)
	}

	stats := &Stats{
		UnreadByRecipient:    unread,
		UnacknowledgedByType: unacked,
	}
	for _, c := range unread {
		stats.TotalUnread += c
	}
	for _, c := range unacked {
		stats.TotalUnacknowledged += c
	}
	return stats, nil
}
