package diagnostics_test

import (
	"context"
	"testing"

	"go-kafe/internal/diagnostics"
	"go-kafe/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestEmitter_DeliversToSubscribers(t *testing.T) {
	e := diagnostics.NewEmitter(zap.NewNop())
	ch, cancel := e.Subscribe()
	defer cancel()

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	e.Emit(ctx, diagnostics.PermissionDenied{
		Path:      "super_admins",
		Operation: "create",
		Reason:    "bootstrap already used",
	})

	ev := <-ch
	assert.Equal(t, "super_admins", ev.Path)
	assert.Equal(t, "create", ev.Operation)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestEmitter_CancelStopsDelivery(t *testing.T) {
	e := diagnostics.NewEmitter(zap.NewNop())
	ch, cancel := e.Subscribe()
	cancel()
	cancel()

	e.Emit(context.Background(), diagnostics.PermissionDenied{Path: "x"})

	_, open := <-ch
	assert.False(t, open)
}

func TestEmitter_FullSubscriberDoesNotBlock(t *testing.T) {
	e := diagnostics.NewEmitter(zap.NewNop())
	_, cancel := e.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		e.Emit(context.Background(), diagnostics.PermissionDenied{Path: "orders"})
	}
}
