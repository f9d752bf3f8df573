package live

import (
	"context"
	"strings"
	"time"
)

const (
	ChannelMenus  = "menus"
	ChannelTables = "tables"
	ChannelOrders = "orders"

	orderChannelPrefix = "order:"
)

// OrderChannel is the per order channel the customer status page follows.
func OrderChannel(orderID string) string {
	return orderChannelPrefix + orderID
}

// ValidChannel reports whether ch is a channel clients may subscribe to.
func ValidChannel(ch string) bool {
	switch ch {
	case ChannelMenus, ChannelTables, ChannelOrders:
		return true
	}
	id, ok := strings.CutPrefix(ch, orderChannelPrefix)
	return ok && id != ""
}

type Event struct {
	Type string    `json:"type"`
	ID   string    `json:"id,omitempty"`
	Data any       `json:"data,omitempty"`
	At   time.Time `json:"at"`
}

//go:generate mockgen -source=event.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, tenantID, channel string, ev Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, Event) error { return nil }
