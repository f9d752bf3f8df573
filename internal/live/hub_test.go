package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHubBroadcastNoConnections(t *testing.T) {
	hub := NewHub(zap.NewNop())

	assert.Equal(t, 0, hub.Broadcast("t1", ChannelMenus, []byte(`{}`)))
	assert.Equal(t, 0, hub.ConnectionCount("t1", ChannelMenus))
}

func TestHubRemoveNonexistent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.remove(roomKey("t1", ChannelOrders), &conn{})
}

func TestHubServe_DeliversOnlyToMatchingRoom(t *testing.T) {
	hub := NewHub(zap.NewNop())
	pub := NewLocalPublisher(hub)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, r.URL.Query().Get("tenant"), r.URL.Query().Get("channel"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.Dial(ctx, wsURL+"?tenant=t1&channel=orders", nil)
	assert.NoError(t, err)
	defer ws.CloseNow()

	assert.Eventually(t, func() bool {
		return hub.ConnectionCount("t1", ChannelOrders) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// other tenant, same channel: must not reach t1
	assert.NoError(t, pub.Publish(ctx, "t2", ChannelOrders, Event{Type: "order.created", ID: "o-x"}))
	assert.NoError(t, pub.Publish(ctx, "t1", ChannelOrders, Event{Type: "order.created", ID: "o-1"}))

	_, data, err := ws.Read(ctx)
	assert.NoError(t, err)

	var ev Event
	assert.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, "order.created", ev.Type)
	assert.Equal(t, "o-1", ev.ID)
	assert.False(t, ev.At.IsZero())

	ws.Close(websocket.StatusNormalClosure, "")
	assert.Eventually(t, func() bool {
		return hub.ConnectionCount("t1", ChannelOrders) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestParseRedisChannel(t *testing.T) {
	tenant, channel, ok := ParseRedisChannel(RedisChannel("t1", OrderChannel("o-9")))
	assert.True(t, ok)
	assert.Equal(t, "t1", tenant)
	assert.Equal(t, "order:o-9", channel)

	_, _, ok = ParseRedisChannel("other:t1:menus")
	assert.False(t, ok)
	_, _, ok = ParseRedisChannel("live:t1")
	assert.False(t, ok)
	_, _, ok = ParseRedisChannel("live::menus")
	assert.False(t, ok)
}

func TestValidChannel(t *testing.T) {
	assert.True(t, ValidChannel(ChannelMenus))
	assert.True(t, ValidChannel(ChannelTables))
	assert.True(t, ValidChannel(ChannelOrders))
	assert.True(t, ValidChannel("order:abc"))
	assert.False(t, ValidChannel("order:"))
	assert.False(t, ValidChannel("payments"))
}
