package request

// AcknowledgeRequest 确认告警请求
type AcknowledgeRequest struct {
	AlertIDs       []string `json:"alert_ids" binding:"required,min=1"`
	AcknowledgedBy string   `json:"acknowledged_by" binding:"required" example:"ops-console"`
}
