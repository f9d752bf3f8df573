// Package diagnostics is the out-of-band channel for access rule
// rejections. Users only ever see a generic error; developers get the
// path, operation and payload here.
package diagnostics

import (
	"context"
	"sync"
	"time"

	"go-kafe/internal/shared/contextutil"

	"go.uber.org/zap"
)

type PermissionDenied struct {
	Path       string         `json:"path"`
	Operation  string         `json:"operation"`
	Payload    map[string]any `json:"payload,omitempty"`
	Reason     string         `json:"reason"`
	RequestID  string         `json:"request_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Sink is what producers of PermissionDenied events depend on.
type Sink interface {
	Emit(ctx context.Context, ev PermissionDenied)
}

// Emitter fans PermissionDenied events out to subscribers. Slow
// subscribers drop events instead of blocking the request path.
type Emitter struct {
	mu     sync.RWMutex
	subs   map[int]chan PermissionDenied
	nextID int
	buffer int
	logger *zap.Logger
}

func NewEmitter(logger ...*zap.Logger) *Emitter {
	l := zap.L().Named("diagnostics")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("diagnostics")
	}
	return &Emitter{
		subs:   make(map[int]chan PermissionDenied),
		buffer: 16,
		logger: l,
	}
}

func (e *Emitter) Emit(ctx context.Context, ev PermissionDenied) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if ev.RequestID == "" {
		ev.RequestID = contextutil.GetRequestID(ctx)
	}

	e.logger.Warn("permission denied",
		zap.String("path", ev.Path),
		zap.String("operation", ev.Operation),
		zap.String("reason", ev.Reason),
		zap.String("request_id", ev.RequestID),
		zap.Any("payload", ev.Payload),
	)

	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a listener. cancel closes the channel.
func (e *Emitter) Subscribe() (<-chan PermissionDenied, func()) {
	ch := make(chan PermissionDenied, e.buffer)

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = ch
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, id)
			e.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}
