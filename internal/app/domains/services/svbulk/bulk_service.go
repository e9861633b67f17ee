package svbulk

import (
	"context"
	"fmt"

	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/services/svorder"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/logger"
)

// 返回给调用方的错误样本上限，限制响应体大小
const maxErrorSamples = 10

// 支持的批量动作
const (
	ActionUpdateStatus   = "update_status"
	ActionUpdatePriority = "update_priority"
	ActionRecalculate    = "recalculate_priorities"
)

// Payload 批量动作参数
type Payload struct {
	Status        string
	PriorityLevel int
	ChangedBy     string
}

// Result 批量操作结果
type Result struct {
	Total      int      `json:"total"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
}

// BulkService 批量操作协调器
// 逐个调用生命周期服务，单条失败计数并继续，不整体中断
type BulkService struct {
	orderService *svorder.OrderService
	logger       logger.Logger
}

// NewBulkService 创建批量操作服务实例
func NewBulkService(orderService *svorder.OrderService, log logger.Logger) *BulkService {
	return &BulkService{
		orderService: orderService,
		logger:       log,
	}
}

// Apply 执行批量操作
// 参数校验失败在任何变更之前拒绝；
// update_status / update_priority 顺序遍历 orderIDs，update_priority 固定置人工覆盖；
// recalculate_priorities 忽略 orderIDs，委托全量重算
func (s *BulkService) Apply(ctx context.Context, action string, orderIDs []string, payload *Payload) (*Result, error) {
	if payload == nil {
		payload = &Payload{}
	}

	switch action {
	case ActionUpdateStatus:
		if len(orderIDs) == 0 {
			return nil, fmt.Errorf("%w: order_ids is required for update_status", errorx.ErrValidation)
		}
		if payload.Status == "" {
			return nil, fmt.Errorf("%w: status is required for update_status", errorx.ErrValidation)
		}
		if !etorder.ValidStatus(payload.Status) {
			return nil, fmt.Errorf("%w: %q", errorx.ErrInvalidStatus, payload.Status)
		}
		return s.applyEach(ctx, orderIDs, func(ctx context.Context, orderID string) error {
			_, err := s.orderService.UpdateStatus(ctx, orderID, etorder.Status(payload.Status), payload.ChangedBy, "bulk update")
			return err
		}), nil

	case ActionUpdatePriority:
		if len(orderIDs) == 0 {
			return nil, fmt.Errorf("%w: order_ids is required for update_priority", errorx.ErrValidation)
		}
		if payload.PriorityLevel < 1 || payload.PriorityLevel > 5 {
			return nil, fmt.Errorf("%w: priority_level is required for update_priority", errorx.ErrValidation)
		}
		return s.applyEach(ctx, orderIDs, func(ctx context.Context, orderID string) error {
			// 批量设置视为人工干预，置覆盖标记
			_, err := s.orderService.UpdatePriority(ctx, orderID, payload.PriorityLevel, true)
			return err
		}), nil

	case ActionRecalculate:
		updated, failed, err := s.orderService.RecalculateAll(ctx)
		if err != nil {
			return nil, err
		}
		return summarize(updated+failed, updated, failed, nil), nil

	default:
		return nil, fmt.Errorf("%w: %q", errorx.ErrUnknownAction, action)
	}
}

// applyEach 顺序执行单订单操作，失败计数并继续
func (s *BulkService) applyEach(ctx context.Context, orderIDs []string, op func(ctx context.Context, orderID string) error) *Result {
	var successful, failed int
	var errSamples []string

	for _, orderID := range orderIDs {
		// 调用方取消时停止后续变更，已生效的不回滚
		select {
		case <-ctx.Done():
			s.logger.Warnf(ctx, "[BulkService] cancelled: successful=%d, failed=%d", successful, failed)
			return summarize(successful+failed, successful, failed, errSamples)
		default:
		}

		if err := op(ctx, orderID); err != nil {
			failed++
			if len(errSamples) < maxErrorSamples {
				errSamples = append(errSamples, fmt.Sprintf("%s: %s", orderID, err.Error()))
			}
			continue
		}
		successful++
	}

	return summarize(successful+failed, successful, failed, errSamples)
}

// summarize 汇总批量结果
func summarize(total, successful, failed int, errSamples []string) *Result {
	return &Result{
		Total:      total,
		Successful: successful,
		Failed:     failed,
		Errors:     errSamples,
		Success:    failed == 0,
		Message:    fmt.Sprintf("%d successful, %d failed", successful, failed),
	}
}
