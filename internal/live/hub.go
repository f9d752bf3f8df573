package live

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	redisPrefix  = "live:"
)

type conn struct {
	ws   *websocket.Conn
	send chan []byte
}

// Hub keeps websocket subscribers grouped by tenant and channel.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*conn]struct{}
	logger *zap.Logger
}

func NewHub(logger ...*zap.Logger) *Hub {
	l := zap.L().Named("live.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("live.hub")
	}
	return &Hub{
		rooms:  make(map[string]map[*conn]struct{}),
		logger: l,
	}
}

func roomKey(tenantID, channel string) string {
	return tenantID + "|" + channel
}

// Serve upgrades the request and streams room messages until the client
// goes away. It blocks for the life of the connection.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, tenantID, channel string) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // origin checks are done by the CORS layer
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", zap.Error(err))
		return
	}

	c := &conn{ws: ws, send: make(chan []byte, sendBuffer)}
	key := roomKey(tenantID, channel)
	h.add(key, c)
	defer h.remove(key, c)

	h.logger.Debug("websocket connected",
		zap.String("tenant_id", tenantID),
		zap.String("channel", channel),
		zap.String("remote", r.RemoteAddr),
	)

	// clients only listen; CloseRead drains control frames for us
	ctx := ws.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			_ = ws.Close(websocket.StatusNormalClosure, "")
			return
		case msg := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := ws.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.logger.Debug("websocket write failed", zap.Error(err))
				_ = ws.Close(websocket.StatusInternalError, "write failed")
				return
			}
		}
	}
}

// Broadcast queues msg for every subscriber of the room. Subscribers
// whose buffer is full miss the message.
func (h *Hub) Broadcast(tenantID, channel string, msg []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.rooms[roomKey(tenantID, channel)] {
		select {
		case c.send <- msg:
			delivered++
		default:
			h.logger.Debug("live subscriber buffer full, dropping message",
				zap.String("tenant_id", tenantID),
				zap.String("channel", channel),
			)
		}
	}
	return delivered
}

func (h *Hub) ConnectionCount(tenantID, channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomKey(tenantID, channel)])
}

// RunRedisRelay forwards messages published by any instance through
// RedisPublisher to the local subscribers. It returns when ctx ends.
func (h *Hub) RunRedisRelay(ctx context.Context, rdb *redis.Client) {
	sub := rdb.PSubscribe(ctx, redisPrefix+"*")
	defer sub.Close()

	h.logger.Info("live redis relay started")
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("live redis relay stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			tenantID, channel, ok := ParseRedisChannel(msg.Channel)
			if !ok {
				h.logger.Warn("live relay ignored channel", zap.String("channel", msg.Channel))
				continue
			}
			h.Broadcast(tenantID, channel, []byte(msg.Payload))
		}
	}
}

func RedisChannel(tenantID, channel string) string {
	return redisPrefix + tenantID + ":" + channel
}

// ParseRedisChannel splits live:<tenant>:<channel>. The channel part may
// itself contain ':' (order:<id>).
func ParseRedisChannel(name string) (tenantID, channel string, ok bool) {
	rest, found := strings.CutPrefix(name, redisPrefix)
	if !found {
		return "", "", false
	}
	tenantID, channel, found = strings.Cut(rest, ":")
	if !found || tenantID == "" || channel == "" {
		return "", "", false
	}
	return tenantID, channel, true
}

func (h *Hub) add(key string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[key]
	if !ok {
		room = make(map[*conn]struct{})
		h.rooms[key] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) remove(key string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[key]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, key)
	}
}
