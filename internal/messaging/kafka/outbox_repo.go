// Package kafka holds the transactional outbox that feeds the order
// lifecycle topic. Rows are written in the same transaction as the order
// change and relayed later by the worker.
package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-kafe/internal/events"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows ran out of attempts and need an operator.
	OutboxStatusDead = "dead"

	AggregateOrder = "order"
)

const (
	// retryStep * attempts is the wait before the next try, up to
	// maxBackoffSteps steps.
	retryStep       = 15 * time.Second
	maxBackoffSteps = 10
	maxAttempts     = 20
)

var ErrInvalidEvent = errors.New("invalid outbox event")

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

// NewOrderEvent builds a pending row for the order lifecycle topic. The
// row id doubles as the event id consumers deduplicate on.
func NewOrderEvent(eventID, requestID, orderID, eventType string, payload []byte) OutboxEvent {
	return OutboxEvent{
		ID:            eventID,
		RequestID:     requestID,
		AggregateType: AggregateOrder,
		AggregateID:   orderID,
		EventType:     eventType,
		Topic:         events.OrderLifecycleTopic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	}
}

func (e OutboxEvent) Validate() error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: id is required", ErrInvalidEvent)
	case e.AggregateID == "":
		return fmt.Errorf("%w: aggregate id is required", ErrInvalidEvent)
	case e.Topic == "":
		return fmt.Errorf("%w: topic is required", ErrInvalidEvent)
	case len(e.Payload) == 0:
		return fmt.Errorf("%w: payload is required", ErrInvalidEvent)
	}
	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed, OutboxStatusDead:
		return nil
	}
	return fmt.Errorf("%w: unknown status %q", ErrInvalidEvent, e.Status)
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

const (
	insertEventSQL = `
INSERT INTO outbox_events (id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// Due rows only; failed rows come back once their back-off has passed.
	selectDueSQL = `
SELECT id::text, request_id, aggregate_type, aggregate_id::text, event_type, topic, payload, status,
	retry_count, COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2) AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3`

	markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	markFailedSQL = `
UPDATE outbox_events
SET status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + LEAST(retry_count + 1, $6) * ($7 * INTERVAL '1 second'),
	updated_at = NOW()
WHERE id = $1`
)

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// WithTx makes Create join tx. Relay updates always use the pool.
func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	var err error
	args := []any{
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	}
	if r.tx != nil {
		_, err = r.tx.ExecContext(ctx, insertEventSQL, args...)
	} else {
		_, err = r.db.ExecContext(ctx, insertEventSQL, args...)
	}
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, selectDueSQL, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, e)
	}
	return due, rows.Err()
}

func scanEvent(rows *sql.Rows) (OutboxEvent, error) {
	var e OutboxEvent
	err := rows.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID, &e.EventType,
		&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
	)
	return e, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

// MarkFailed schedules another attempt, or parks the row as dead once it
// has failed maxAttempts times.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.db.ExecContext(ctx, markFailedSQL,
		id, OutboxStatusFailed, reason, maxAttempts, OutboxStatusDead,
		maxBackoffSteps, int(retryStep/time.Second),
	)
	return err
}
