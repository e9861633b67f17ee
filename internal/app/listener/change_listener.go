package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/atomic"

	"opne/internal/app/domains/model"
	"opne/internal/app/infra/mq/lmstfy"
	"opne/internal/app/pkg/logger"
)

// EventHandler 事件处理接口（通知与告警派生）
type EventHandler interface {
	HandleOrderEvent(ctx context.Context, event *model.OrderChangeEvent) error
}

// ChangeListener 订单变更监听器
// 职责：
// 1. 从事件队列消费订单变更消息（insert/update）
// 2. 解析消息并交给通知服务派生通知/告警
// 3. 确认消息（ACK）；处理失败不确认，靠 TTR 重投递（at-least-once）
type ChangeListener struct {
	lmstfyClient *lmstfy.Client
	handler      EventHandler
	queueName    string
	logger       logger.Logger
	closing      *atomic.Bool

	// 消费配置
	timeout      time.Duration // 拉取消息超时
	ttr          time.Duration // Time-To-Run
	pollInterval time.Duration // 出错后的轮询间隔
}

// Config 监听器配置
type Config struct {
	QueueName    string
	Timeout      time.Duration
	TTR          time.Duration
	PollInterval time.Duration
}

// NewChangeListener 创建变更监听器实例
func NewChangeListener(
	lmstfyClient *lmstfy.Client,
	handler EventHandler,
	cfg *Config,
	log logger.Logger,
) *ChangeListener {
	return &ChangeListener{
		lmstfyClient: lmstfyClient,
		handler:      handler,
		queueName:    cfg.QueueName,
		timeout:      cfg.Timeout,
		ttr:          cfg.TTR,
		pollInterval: cfg.PollInterval,
		closing:      atomic.NewBool(false),
		logger:       log,
	}
}

// Start 启动消费循环
// 按消息依次经历 观察 → 派发 → 回到空闲，同一订单的事件按提交顺序到达
func (l *ChangeListener) Start(ctx context.Context) error {
	l.logger.Infof(ctx, "[ChangeListener] started: queue=%s, timeout=%v, ttr=%v",
		l.queueName, l.timeout, l.ttr)

	for {
		select {
		case <-ctx.Done():
			l.logger.Infof(ctx, "[ChangeListener] stopped")
			return ctx.Err()
		default:
			if l.closing.Load() {
				l.logger.Infof(ctx, "[ChangeListener] closing, no more consumption")
				return nil
			}
			if err := l.consumeOne(ctx); err != nil {
				l.logger.Errorf(ctx, "[ChangeListener] consume failed: %v", err)
				time.Sleep(l.pollInterval)
			}
		}
	}
}

// Shutdown 停止拉取新消息（当前消息处理完后退出）
func (l *ChangeListener) Shutdown() {
	l.closing.CAS(false, true)
}

// consumeOne 消费一条消息
func (l *ChangeListener) consumeOne(ctx context.Context) error {
	// 1. 从队列拉取消息
	msg, err := l.lmstfyClient.Consume(l.queueName, l.timeout, l.ttr)
	if err != nil {
		return fmt.Errorf("consume message failed: %w", err)
	}

	if msg == nil {
		// 超时没有消息，继续等待
		return nil
	}

	l.logger.Debugf(ctx, "[ChangeListener] received message: job_id=%s", msg.JobID)

	// 2. 解析变更事件
	event, err := l.parseMessage(msg.Data)
	if err != nil {
		l.logger.Errorf(ctx, "[ChangeListener] parse message failed: job_id=%s, error=%v", msg.JobID, err)
		// 解析失败直接 ACK，避免毒消息死循环
		_ = l.lmstfyClient.Ack(l.queueName, msg.JobID)
		return err
	}

	// 3. 注入链路字段后派发
	evtCtx := context.WithValue(ctx, "trace_id", event.RequestID)
	evtCtx = context.WithValue(evtCtx, "order_id", event.Current.ID)
	evtCtx = context.WithValue(evtCtx, "event_type", event.Event)

	if err := l.handler.HandleOrderEvent(evtCtx, event); err != nil {
		l.logger.Errorf(evtCtx, "[ChangeListener] handle event failed: job_id=%s, error=%v", msg.JobID, err)
		// 处理失败不 ACK，等 TTR 到期后重投递
		return err
	}

	// 4. 确认消息
	if err := l.lmstfyClient.Ack(l.queueName, msg.JobID); err != nil {
		l.logger.Errorf(evtCtx, "[ChangeListener] ack failed: job_id=%s, error=%v", msg.JobID, err)
		return err
	}

	l.logger.Infof(evtCtx, "[ChangeListener] event processed: job_id=%s, event=%s, order=%s",
		msg.JobID, event.Event, event.Current.OrderNumber)

	return nil
}

// parseMessage 解析消息数据并校验必填字段
func (l *ChangeListener) parseMessage(data []byte) (*model.OrderChangeEvent, error) {
	var event model.OrderChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("unmarshal order event failed: %w", err)
	}

	if event.Event != model.EventInsert && event.Event != model.EventUpdate {
		return nil, fmt.Errorf("unknown event type: %q", event.Event)
	}
	if event.Current == nil || event.Current.ID == "" {
		return nil, fmt.Errorf("current snapshot is required")
	}

	return &event, nil
}
