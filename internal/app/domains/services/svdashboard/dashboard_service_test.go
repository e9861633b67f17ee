package svdashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opne/internal/app/domains/entity/etcustomer"
	"opne/internal/app/domains/entity/etorder"
	"opne/internal/app/domains/repo/rporder"
	"opne/internal/app/pkg/logger"
)

type fakeOrderRepo struct {
	orders     []*etorder.Order
	total      int64
	lastFilter *rporder.QueryFilter
	err        error
}

func (r *fakeOrderRepo) Query(ctx context.Context, filter *rporder.QueryFilter) ([]*etorder.Order, int64, error) {
	r.lastFilter = filter
	return r.orders, r.total, r.err
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *etorder.Order) error { return nil }
func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) UpdateFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	return nil
}
func (r *fakeOrderRepo) ListByStatus(ctx context.Context, statuses []etorder.Status, manualOverride bool) ([]*etorder.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) UpdateFieldsWithHistory(ctx context.Context, orderID string, fields map[string]interface{}, history *etorder.StatusHistory) error {
	return nil
}
func (r *fakeOrderRepo) UpdatePriorityComputation(ctx context.Context, orderID string, score, level int, fulfillmentPriority string, tags []string) error {
	return nil
}
func (r *fakeOrderRepo) AppendStatusHistory(ctx context.Context, history *etorder.StatusHistory) error {
	return nil
}

type fakeCustomerRepo struct {
	customers map[int64]*etcustomer.Customer
	err       error
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) GetByIDs(ctx context.Context, customerIDs []int64) (map[int64]*etcustomer.Customer, error) {
	return r.customers, r.err
}

func setup() (*DashboardService, *fakeOrderRepo, *fakeCustomerRepo) {
	orderRepo := &fakeOrderRepo{}
	customerRepo := &fakeCustomerRepo{customers: make(map[int64]*etcustomer.Customer)}
	svc := NewDashboardService(orderRepo, customerRepo, logger.NopLogger{})
	return svc, orderRepo, customerRepo
}

func TestQueryDefaultsLimit(t *testing.T) {
	svc, orderRepo, _ := setup()

	_, err := svc.Query(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 50, orderRepo.lastFilter.Limit)

	_, err = svc.Query(context.Background(), &rporder.QueryFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 50, orderRepo.lastFilter.Limit)

	_, err = svc.Query(context.Background(), &rporder.QueryFilter{Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 25, orderRepo.lastFilter.Limit)
}

func TestQueryEnrichesRows(t *testing.T) {
	svc, orderRepo, customerRepo := setup()

	customerID := int64(7)
	orderRepo.orders = []*etorder.Order{
		{
			ID:            "order-1",
			CustomerID:    &customerID,
			PriorityLevel: 1,
			PlacedAt:      time.Now().Add(-2 * time.Hour),
		},
		{
			ID:            "order-2",
			PriorityLevel: 3,
			PlacedAt:      time.Now(),
		},
	}
	orderRepo.total = 12
	customerRepo.customers[customerID] = &etcustomer.Customer{
		ID: customerID, Name: "Alice", LoyaltyTier: "gold", IsVIP: true,
	}

	page, err := svc.Query(context.Background(), &rporder.QueryFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	require.Len(t, page.Rows, 2)

	first := page.Rows[0]
	assert.Equal(t, "URGENT", first.PriorityLabel)
	assert.InDelta(t, 2.0, first.HoursSincePlacedAt, 0.1)
	require.NotNil(t, first.Customer)
	assert.Equal(t, "Alice", first.Customer.Name)
	assert.Equal(t, "gold", first.Customer.LoyaltyTier)
	assert.True(t, first.Customer.IsVIP)

	// 游客订单没有客户摘要
	second := page.Rows[1]
	assert.Equal(t, "NORMAL", second.PriorityLabel)
	assert.Nil(t, second.Customer)
}

func TestQueryCustomerLookupFailureNonFatal(t *testing.T) {
	svc, orderRepo, customerRepo := setup()

	customerID := int64(7)
	orderRepo.orders = []*etorder.Order{
		{ID: "order-1", CustomerID: &customerID, PriorityLevel: 2, PlacedAt: time.Now()},
	}
	orderRepo.total = 1
	customerRepo.err = errors.New("customer db down")

	page, err := svc.Query(context.Background(), &rporder.QueryFilter{})

	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Nil(t, page.Rows[0].Customer)
}

func TestQueryRepoFailure(t *testing.T) {
	svc, orderRepo, _ := setup()
	orderRepo.err = errors.New("db down")

	_, err := svc.Query(context.Background(), nil)
	require.Error(t, err)
}
