package dashboard

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/pkg/ginx"
)

// List 看板订单列表接口
// GET /api/v1/dashboard/orders
// 支持过滤：status, priority_level, shipping_method, high_value, vip, search
// 支持排序：sort_by + sort_dir；默认 priority_level ASC, priority_score DESC, placed_at ASC
func (h *DashboardHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	page, err := h.dashboardService.Query(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[ERROR] dashboard query failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, page)
}

// parseFilter 从查询参数构造过滤条件
func parseFilter(c *gin.Context) (*rporder.QueryFilter, error) {
	filter := &rporder.QueryFilter{
		Statuses:        splitParam(c.Query("status")),
		ShippingMethods: splitParam(c.Query("shipping_method")),
		Search:          c.Query("search"),
		SortBy:          c.Query("sort_by"),
		SortDir:         c.Query("sort_dir"),
	}

	for _, s := range splitParam(c.Query("priority_level")) {
		level, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		filter.PriorityLevels = append(filter.PriorityLevels, level)
	}

	filter.HighValueOnly = c.Query("high_value") == "true"
	filter.VIPOnly = c.Query("vip") == "true"

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
		filter.Offset = offset
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		}
		filter.Limit = limit
	}

	return filter, nil
}

// splitParam 拆分逗号分隔的多值参数
func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
