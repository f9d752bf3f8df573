package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-kafe/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// EventRecorder appends lifecycle events to the order audit log.
type EventRecorder interface {
	RecordLifecycleEvent(ctx context.Context, ev events.OrderLifecycleEvent) (bool, error)
}

// Back-off between attempts to store one event. A commit moves the
// partition offset past every earlier message, so a failed event is
// retried in place before the next one is fetched.
var (
	retryBackoff    = 500 * time.Millisecond
	maxRetryBackoff = 30 * time.Second
)

// ConsumeOrderLifecycle writes every order lifecycle event to the audit
// log until ctx ends. A message is committed only after its row is
// stored; replays are skipped by event id.
func ConsumeOrderLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder EventRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.order_lifecycle")
	log.Info("order lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order lifecycle consumer stopped")
				return
			}
			log.Error("fetch order lifecycle message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, recorder, log, msg)
	}
}

func handleMessage(ctx context.Context, reader MessageReader, recorder EventRecorder, log *zap.Logger, msg kafkago.Message) {
	var event events.OrderLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode order lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	written, ok := recordWithRetry(ctx, recorder, log, event)
	if !ok {
		// ctx ended; the uncommitted message is redelivered on restart
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit order lifecycle message failed", zap.Error(err))
		return
	}

	if !written {
		log.Debug("order event already recorded, skipping",
			zap.String("event_id", event.EventID),
		)
		return
	}
	log.Info("order event recorded",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("order_id", event.OrderID),
		zap.String("request_id", event.RequestID),
	)
}

func recordWithRetry(
	ctx context.Context,
	recorder EventRecorder,
	log *zap.Logger,
	event events.OrderLifecycleEvent,
) (bool, bool) {
	wait := retryBackoff
	for attempt := 1; ; attempt++ {
		written, err := recorder.RecordLifecycleEvent(ctx, event)
		if err == nil {
			return written, true
		}
		log.Error("record order event failed",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false, false
		case <-timer.C:
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}
