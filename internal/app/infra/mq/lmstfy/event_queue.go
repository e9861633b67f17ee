package lmstfy

import (
	"context"
	"encoding/json"
	"fmt"

	"opne/internal/app/domains/model"
)

// EventQueue 订单变更事件队列
// 生命周期管理器发布，变更监听器消费；TTR 重投递给出 at-least-once 语义
type EventQueue struct {
	cli   *Client
	queue string
}

// NewEventQueue 创建事件队列实例
func NewEventQueue(cli *Client, queue string) *EventQueue {
	return &EventQueue{
		cli:   cli,
		queue: queue,
	}
}

// PublishOrderEvent 发布订单变更事件
func (q *EventQueue) PublishOrderEvent(ctx context.Context, event *model.OrderChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event failed: %w", err)
	}

	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := q.cli.Publish(q.queue, data, 0, 0); err != nil {
		return fmt.Errorf("publish order event failed: %w", err)
	}
	return nil
}
