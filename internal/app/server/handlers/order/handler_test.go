package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opne/internal/app/domains/entity/etcustomer"
	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/entity/etrule"
	"opne/internal/app/domains/model"
	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/domains/services/svbulk"
	"opne/internal/app/domains/services/svorder"
	"opne/internal/app/pkg/errorx"
	"opne/internal/app/pkg/ginx"
	"opne/internal/app/pkg/logger"
)

type fakeOrderRepo struct {
	store map[string]*etorder.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *etorder.Order) error {
	r.store[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	order, ok := r.store[orderID]
	if !ok {
		return nil, errorx.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	if _, ok := r.store[orderID]; !ok {
		return errorx.ErrOrderNotFound
	}
	return nil
}

func (r *fakeOrderRepo) ListByStatus(ctx context.Context, statuses []etorder.Status, manualOverride bool) ([]*etorder.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateFieldsWithHistory(ctx context.Context, orderID string, fields map[string]interface{}, history *etorder.StatusHistory) error {
	if _, ok := r.store[orderID]; !ok {
		return errorx.ErrOrderNotFound
	}
	return nil
}

func (r *fakeOrderRepo) UpdatePriorityComputation(ctx context.Context, orderID string, score, level int, fulfillmentPriority string, tags []string) error {
	return nil
}

func (r *fakeOrderRepo) AppendStatusHistory(ctx context.Context, history *etorder.StatusHistory) error {
	return nil
}

func (r *fakeOrderRepo) Query(ctx context.Context, filter *rporder.QueryFilter) ([]*etorder.Order, int64, error) {
	return nil, 0, nil
}

type fakeRuleRepo struct{}

func (fakeRuleRepo) ListActive(ctx context.Context) ([]*etrule.Rule, error) { return nil, nil }

type fakeCustomerRepo struct{}

func (fakeCustomerRepo) GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	return nil, errorx.ErrCustomerNotFound
}

func (fakeCustomerRepo) GetByIDs(ctx context.Context, customerIDs []int64) (map[int64]*etcustomer.Customer, error) {
	return nil, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishOrderEvent(ctx context.Context, event *model.OrderChangeEvent) error {
	return nil
}

func setupRouter() (*gin.Engine, *fakeOrderRepo) {
	gin.SetMode(gin.TestMode)

	repo := &fakeOrderRepo{store: make(map[string]*etorder.Order)}
	orderService := svorder.NewOrderService(repo, fakeRuleRepo{}, fakeCustomerRepo{}, nopPublisher{}, logger.NopLogger{})
	bulkService := svbulk.NewBulkService(orderService, logger.NopLogger{})
	handler := NewOrderHandler(orderService, bulkService)

	r := gin.New()
	r.POST("/api/v1/orders", handler.Create)
	r.POST("/api/v1/orders/bulk", handler.Bulk)
	r.GET("/api/v1/orders/:id", handler.Get)
	r.PUT("/api/v1/orders/:id/status", handler.UpdateStatus)
	r.PUT("/api/v1/orders/:id/priority", handler.UpdatePriority)
	return r, repo
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_email": "alice@example.com",
		"subtotal":       100,
		"total_amount":   100,
		"items": []map[string]interface{}{
			{"product_name": "Widget", "quantity": 1, "unit_price": 100},
		},
	}
}

func TestCreateHandler(t *testing.T) {
	r, repo := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/orders", createBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Meta.Code)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(3), data["priority_level"])
	assert.Equal(t, "NORMAL", data["priority_label"])
	assert.Len(t, repo.store, 1)
}

func TestCreateHandlerValidation(t *testing.T) {
	r, repo := setupRouter()

	body := createBody()
	delete(body, "customer_email")
	w := doJSON(r, http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Meta.Message)
	assert.NotEmpty(t, resp.Meta.Details)
	assert.Empty(t, repo.store)
}

func TestGetHandlerNotFound(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodGet, "/api/v1/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatusHandler(t *testing.T) {
	r, repo := setupRouter()
	w := doJSON(r, http.MethodPost, "/api/v1/orders", createBody())
	require.Equal(t, http.StatusOK, w.Code)

	var orderID string
	for id := range repo.store {
		orderID = id
	}

	w = doJSON(r, http.MethodPut, "/api/v1/orders/"+orderID+"/status", map[string]interface{}{
		"status":     "confirmed",
		"changed_by": "ops",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// binding oneof 拦截非法状态
	w = doJSON(r, http.MethodPut, "/api/v1/orders/"+orderID+"/status", map[string]interface{}{
		"status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePriorityHandlerValidation(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodPut, "/api/v1/orders/any/priority", map[string]interface{}{
		"priority_level": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkHandlerUnknownAction(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/orders/bulk", map[string]interface{}{
		"action":    "nuke",
		"order_ids": []string{"a"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkHandlerPartialFailure(t *testing.T) {
	r, repo := setupRouter()
	w := doJSON(r, http.MethodPost, "/api/v1/orders", createBody())
	require.Equal(t, http.StatusOK, w.Code)

	var orderID string
	for id := range repo.store {
		orderID = id
	}

	w = doJSON(r, http.MethodPost, "/api/v1/orders/bulk", map[string]interface{}{
		"action":    "update_status",
		"order_ids": []string{orderID, "missing"},
		"payload":   map[string]interface{}{"status": "confirmed"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["successful"])
	assert.Equal(t, float64(1), data["failed"])
	assert.Equal(t, false, data["success"])
}

func TestBulkHandlerRecalculateWithoutOrderIDs(t *testing.T) {
	r, _ := setupRouter()
	w := doJSON(r, http.MethodPost, "/api/v1/orders", createBody())
	require.Equal(t, http.StatusOK, w.Code)

	// recalculate_priorities 不携带 order_ids 也能通过
	w = doJSON(r, http.MethodPost, "/api/v1/orders/bulk", map[string]interface{}{
		"action":    "recalculate_priorities",
		"order_ids": []string{},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, true, data["success"])
}

func TestBulkHandlerUpdateStatusRequiresOrderIDs(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/api/v1/orders/bulk", map[string]interface{}{
		"action":  "update_status",
		"payload": map[string]interface{}{"status": "confirmed"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
