package etorder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items() []*OrderItem {
	return []*OrderItem{
		{ID: "item-1", ProductName: "Widget", Quantity: 1, UnitPrice: 10, LineTotal: 10},
	}
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder("id-1", "ORD-1", "alice@example.com", items())

	require.NoError(t, err)
	assert.Equal(t, StatusPending, order.Status)
	assert.False(t, order.PlacedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestNewOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		number  string
		email   string
		items   []*OrderItem
		wantErr error
	}{
		{"missing id", "", "ORD-1", "a@b.c", items(), ErrInvalidOrderID},
		{"missing number", "id", "", "a@b.c", items(), ErrInvalidOrderNumber},
		{"missing email", "id", "ORD-1", "", items(), ErrInvalidEmail},
		{"no items", "id", "ORD-1", "a@b.c", nil, ErrEmptyItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrder(tt.id, tt.number, tt.email, tt.items)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"} {
		assert.Truef(t, ValidStatus(s), "status=%s", s)
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending"))
}

func TestApplyStatusTimestamp(t *testing.T) {
	order, _ := NewOrder("id-1", "ORD-1", "a@b.c", items())
	now := time.Now()

	order.ApplyStatusTimestamp(StatusConfirmed, now)
	require.NotNil(t, order.ConfirmedAt)
	assert.Equal(t, now, *order.ConfirmedAt)

	order.ApplyStatusTimestamp(StatusShipped, now)
	require.NotNil(t, order.ShippedAt)

	order.ApplyStatusTimestamp(StatusDelivered, now)
	require.NotNil(t, order.DeliveredAt)

	// cancelled/processing 不打时间戳
	fresh, _ := NewOrder("id-2", "ORD-2", "a@b.c", items())
	fresh.ApplyStatusTimestamp(StatusCancelled, now)
	assert.Nil(t, fresh.ConfirmedAt)
	assert.Nil(t, fresh.ShippedAt)
	assert.Nil(t, fresh.DeliveredAt)
}

func TestActiveStatuses(t *testing.T) {
	active := ActiveStatuses()
	assert.Equal(t, []Status{StatusPending, StatusConfirmed, StatusProcessing}, active)
}
