package order

import (
	"testing"

	ordererrors "go-kafe/internal/order/errors"

	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     error
	}{
		{StatusReceived, StatusPreparing, nil},
		{StatusReceived, StatusReady, nil},
		{StatusReceived, StatusDelivered, nil},
		{StatusPreparing, StatusReady, nil},
		{StatusReady, StatusDelivered, nil},
		{StatusReady, StatusPreparing, ordererrors.ErrInvalidStatusTransition},
		{StatusPreparing, StatusReceived, ordererrors.ErrInvalidStatusTransition},
		{StatusReceived, StatusCancelled, nil},
		{StatusReady, StatusCancelled, nil},
		{StatusDelivered, StatusCancelled, ordererrors.ErrOrderClosed},
		{StatusCancelled, StatusReceived, ordererrors.ErrOrderClosed},
		{StatusDelivered, StatusDelivered, nil},
		{StatusReady, "eaten", ordererrors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			err := CheckTransition(tt.from, tt.to)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTotalFor(t *testing.T) {
	items := []OrderItem{
		{ID: "a", Name: "Latte", Price: 22000, Quantity: 2},
		{ID: "b", Name: "Croissant", Price: 18000, Quantity: 1},
	}
	code := 123

	assert.Equal(t, int64(62000), Subtotal(items))
	assert.Equal(t, int64(62000), TotalFor(items, PaymentCash, nil))
	assert.Equal(t, int64(62123), TotalFor(items, PaymentQRIS, &code))
	// a stray code on a cash order is ignored
	assert.Equal(t, int64(62000), TotalFor(items, PaymentCash, &code))
}

func TestNewUniqueCode_Range(t *testing.T) {
	for i := 0; i < 5000; i++ {
		c := NewUniqueCode()
		assert.GreaterOrEqual(t, c, 100)
		assert.Less(t, c, 999)
	}
}

func TestMergeItems(t *testing.T) {
	a, b := "0b6f1b7e-6a49-4a0c-9c61-1f7b7d3f1a01", "0b6f1b7e-6a49-4a0c-9c61-1f7b7d3f1a02"

	wanted, ids, err := mergeItems([]CheckoutItem{{MenuID: a, Quantity: 1}, {MenuID: b, Quantity: 2}, {MenuID: a, Quantity: 3}})

	assert.NoError(t, err)
	assert.Equal(t, []string{a, b}, ids)
	assert.Equal(t, 4, wanted[a])
	assert.Equal(t, 2, wanted[b])

	_, _, err = mergeItems(nil)
	assert.ErrorIs(t, err, ordererrors.ErrEmptyOrder)

	_, _, err = mergeItems([]CheckoutItem{{MenuID: a, Quantity: 0}})
	assert.ErrorIs(t, err, ordererrors.ErrInvalidQuantity)
}
