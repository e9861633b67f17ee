package etorder

import "time"

// StatusHistory 状态流转历史（追加写入，本子系统不修改不删除）
type StatusHistory struct {
	ID             string
	OrderID        string
	PreviousStatus Status
	NewStatus      Status
	ChangedBy      string
	Reason         string
	PriorityBefore int
	PriorityAfter  int
	CreatedAt      time.Time
}
