package order

import (
	"math/rand/v2"

	ordererrors "go-kafe/internal/order/errors"
)

// Unique codes are drawn from [uniqueCodeMin, uniqueCodeMax).
const (
	uniqueCodeMin = 100
	uniqueCodeMax = 999
)

var statusRank = map[string]int{
	StatusReceived:  0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusDelivered: 3,
}

func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

func Terminal(s string) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CheckTransition reports whether an order in from may move to to. Moving
// to the current status is allowed and means nothing changes.
func CheckTransition(from, to string) error {
	if !ValidStatus(to) {
		return ordererrors.ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	if Terminal(from) {
		return ordererrors.ErrOrderClosed
	}
	if to == StatusCancelled {
		return nil
	}
	if statusRank[to] < statusRank[from] {
		return ordererrors.ErrInvalidStatusTransition
	}
	return nil
}

func Subtotal(items []OrderItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price * int64(it.Quantity)
	}
	return sum
}

// TotalFor is the amount the customer pays. QRIS orders add the unique
// code so two orders with the same subtotal can be told apart on the bank
// statement.
func TotalFor(items []OrderItem, method string, uniqueCode *int) int64 {
	total := Subtotal(items)
	if method == PaymentQRIS && uniqueCode != nil {
		total += int64(*uniqueCode)
	}
	return total
}

// NewUniqueCode draws a code in [100, 999). It carries no security meaning.
func NewUniqueCode() int {
	return uniqueCodeMin + rand.IntN(uniqueCodeMax-uniqueCodeMin)
}
