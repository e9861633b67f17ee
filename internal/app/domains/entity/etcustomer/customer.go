package etcustomer

import "time"

// Customer 客户只读模型
// 由外部协作方维护，本子系统仅在下单时读取用于订单富化
type Customer struct {
	ID          int64
	Name        string
	Email       string
	TotalSpent  float64
	OrderCount  int
	LoyaltyTier string
	IsVIP       bool
	CreatedAt   time.Time
}

// IsRepeat 是否复购客户（历史订单数 > 1）
func (c *Customer) IsRepeat() bool {
	return c.OrderCount > 1
}
