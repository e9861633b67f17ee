package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opne/internal/app/domains/entity/etnotify"
	"opne/internal/app/domains/services/svnotify"
	"opne/internal/app/pkg/ginx"
	"opne/internal/app/pkg/logger"
)

type fakeNotificationRepo struct {
	store []*etnotify.Notification
}

func (r *fakeNotificationRepo) Insert(ctx context.Context, notification *etnotify.Notification) error {
	r.store = append(r.store, notification)
	return nil
}

func (r *fakeNotificationRepo) ListUnread(ctx context.Context, recipientType etnotify.RecipientType) ([]*etnotify.Notification, error) {
	var result []*etnotify.Notification
	for _, n := range r.store {
		if n.IsRead {
			continue
		}
		if recipientType != "" && n.RecipientType != recipientType {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, ids []string) (int64, error) {
	var count int64
	for _, n := range r.store {
		for _, id := range ids {
			if n.ID == id && !n.IsRead {
				n.IsRead = true
				count++
			}
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) CountUnreadByRecipient(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, n := range r.store {
		if !n.IsRead {
			counts[string(n.RecipientType)]++
		}
	}
	return counts, nil
}

type fakeAlertRepo struct {
	store []*etnotify.Alert
}

func (r *fakeAlertRepo) Insert(ctx context.Context, alert *etnotify.Alert) error {
	r.store = append(r.store, alert)
	return nil
}

func (r *fakeAlertRepo) ListUnacknowledged(ctx context.Context) ([]*etnotify.Alert, error) {
	var result []*etnotify.Alert
	for _, a := range r.store {
		if !a.IsAcknowledged {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAlertRepo) Acknowledge(ctx context.Context, ids []string, acknowledgedBy string) (int64, error) {
	return 0, nil
}

func (r *fakeAlertRepo) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeAlertRepo) CountUnacknowledgedByType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

type nopBroadcaster struct{}

func (nopBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return nil
}

func setupRouter(repo *fakeNotificationRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := svnotify.NewNotifyService(repo, &fakeAlertRepo{}, nopBroadcaster{}, "priority_dashboard", logger.NopLogger{})
	handler := NewNotificationHandler(svc)

	r := gin.New()
	r.GET("/api/v1/notifications", handler.List)
	return r
}

func seedNotifications() *fakeNotificationRepo {
	return &fakeNotificationRepo{store: []*etnotify.Notification{
		{ID: "n1", OrderID: "o1", Type: "priority_assigned", RecipientType: etnotify.RecipientAdmin, Message: "urgent order"},
		{ID: "n2", OrderID: "o2", Type: "status_change", RecipientType: etnotify.RecipientFulfillment, Message: "order shipped"},
		{ID: "n3", OrderID: "o3", Type: "status_change", RecipientType: etnotify.RecipientAdmin, Message: "order cancelled", IsRead: true},
	}}
}

func listNotifications(t *testing.T, r *gin.Engine, query string) (*httptest.ResponseRecorder, *ginx.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp ginx.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, &resp
}

func TestListHandlerByRecipient(t *testing.T) {
	r := setupRouter(seedNotifications())

	w, resp := listNotifications(t, r, "?recipient_type=admin")

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "n1", data[0].(map[string]interface{})["id"])
}

func TestListHandlerAllRecipients(t *testing.T) {
	r := setupRouter(seedNotifications())

	// 不带 recipient_type 返回全部受众的未读通知
	w, resp := listNotifications(t, r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.([]interface{})
	assert.Len(t, data, 2)
}

func TestListHandlerInvalidRecipient(t *testing.T) {
	r := setupRouter(seedNotifications())

	w, resp := listNotifications(t, r, "?recipient_type=everyone")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp.Meta.Message, "recipient_type")
}
