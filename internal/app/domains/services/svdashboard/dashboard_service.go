package svdashboard

import (
	"context"
	"fmt"
	"time"

	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/priority"
	"opne/internal/app/domains/repo/rpcustomer"
	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/pkg/logger"
)

// CustomerBrief 看板展示用的最小客户字段
type CustomerBrief struct {
	Name        string `json:"name"`
	LoyaltyTier string `json:"loyalty_tier"`
	IsVIP       bool   `json:"is_vip"`
}

// Row 看板行：订单 + 客户摘要 + 计算字段
type Row struct {
	Order              *etorder.Order `json:"order"`
	Customer           *CustomerBrief `json:"customer,omitempty"`
	PriorityLabel      string         `json:"priority_label"`
	HoursSincePlacedAt float64        `json:"hours_since_placed_at"`
}

// Page 看板结果页
type Page struct {
	Rows  []*Row `json:"rows"`
	Total int64  `json:"total"` // 总匹配数，与分页参数无关
}

// DashboardService 看板查询服务
// 过滤/排序/分页走仓储，客户摘要与计算字段在内存补齐
type DashboardService struct {
	orderRepo    rporder.OrderRepository
	customerRepo rpcustomer.CustomerRepository
	logger       logger.Logger
}

// NewDashboardService 创建看板查询服务实例
func NewDashboardService(
	orderRepo rporder.OrderRepository,
	customerRepo rpcustomer.CustomerRepository,
	log logger.Logger,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		logger:       log,
	}
}

// Query 看板查询
func (s *DashboardService) Query(ctx context.Context, filter *rporder.QueryFilter) (*Page, error) {
	if filter == nil {
		filter = &rporder.QueryFilter{}
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}

	orders, total, err := s.orderRepo.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query orders failed: %w", err)
	}

	// 批量拉取客户摘要，客户查询失败不阻断看板
	customerIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID != nil {
			customerIDs = append(customerIDs, *o.CustomerID)
		}
	}
	customers, err := s.customerRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		s.logger.Warnf(ctx, "[Dashboard] load customers failed: %v", err)
		customers = nil
	}

	now := time.Now()
	rows := make([]*Row, 0, len(orders))
	for _, o := range orders {
		row := &Row{
			Order:              o,
			PriorityLabel:      priority.LevelToLabel(o.PriorityLevel),
			HoursSincePlacedAt: now.Sub(o.PlacedAt).Hours(),
		}
		if o.CustomerID != nil {
			if c, ok := customers[*o.CustomerID]; ok {
				row.Customer = &CustomerBrief{
					Name:        c.Name,
					LoyaltyTier: c.LoyaltyTier,
					IsVIP:       c.IsVIP,
				}
			}
		}
		rows = append(rows, row)
	}

	return &Page{
		Rows:  rows,
		Total: total,
	}, nil
}
