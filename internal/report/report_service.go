package report

import (
	"context"
	"slices"
	"time"

	reporterrors "go-kafe/internal/report/errors"

	"go.uber.org/zap"
)

const (
	TodayPageSize = 10

	DirectionNext = "next"
	DirectionPrev = "prev"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Location() *time.Location
	Summary(ctx context.Context, tenantID string, p Period) (SummaryResponse, error)
	TodayPage(ctx context.Context, tenantID, cursor, direction string) (Page, error)
}

type service struct {
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, loc *time.Location, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.L()
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &service{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: logger.Named("report.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Location() *time.Location {
	return s.loc
}

func (s *service) Summary(ctx context.Context, tenantID string, p Period) (SummaryResponse, error) {
	rows, err := s.repo.FindBetween(ctx, tenantID, p.Start, p.End)
	if err != nil {
		s.logger.Error("load report orders failed",
			zap.String("tenant_id", tenantID),
			zap.String("period", p.Label),
			zap.Error(err),
		)
		return SummaryResponse{}, reporterrors.ErrReportLoadFailed.WithCause(err)
	}

	var revenue int64
	for _, r := range rows {
		revenue += r.TotalAmount
	}

	return SummaryResponse{
		Period:            p.Label,
		Kind:              p.Kind,
		Start:             p.Start,
		End:               p.End,
		TotalRevenue:      revenue,
		TotalTransactions: len(rows),
		Orders:            mapToLines(rows),
	}, nil
}

func (s *service) TodayPage(ctx context.Context, tenantID, cursor, direction string) (Page, error) {
	if direction == "" {
		direction = DirectionNext
	}
	if direction != DirectionNext && direction != DirectionPrev {
		return Page{}, reporterrors.ErrInvalidCursor
	}

	today := DayOf(s.now(), s.loc)
	q := PageQuery{
		TenantID: tenantID,
		Start:    today.Start,
		End:      today.End,
		Limit:    TodayPageSize + 1,
	}

	var from *Cursor
	if cursor != "" {
		c, err := DecodeCursor(cursor)
		if err != nil {
			return Page{}, err
		}
		from = &c
	} else if direction == DirectionPrev {
		return Page{}, reporterrors.ErrInvalidCursor
	}

	backward := direction == DirectionPrev
	if backward {
		q.Before = from
	} else {
		q.After = from
	}

	rows, err := s.repo.FindPage(ctx, q)
	if err != nil {
		s.logger.Error("load today page failed",
			zap.String("tenant_id", tenantID),
			zap.String("direction", direction),
			zap.Error(err),
		)
		return Page{}, reporterrors.ErrReportLoadFailed.WithCause(err)
	}

	more := len(rows) > TodayPageSize
	if more {
		rows = rows[:TodayPageSize]
	}
	if backward {
		slices.Reverse(rows)
	}

	page := Page{Orders: mapToLines(rows)}
	if len(rows) == 0 {
		return page, nil
	}

	first := EncodeCursor(Cursor{CreatedAt: rows[0].CreatedAt, ID: rows[0].ID})
	last := EncodeCursor(Cursor{CreatedAt: rows[len(rows)-1].CreatedAt, ID: rows[len(rows)-1].ID})

	switch {
	case backward:
		// Came from a newer page, so an older one exists.
		page.NextCursor = last
		if more {
			page.PrevCursor = first
		}
	default:
		if more {
			page.NextCursor = last
		}
		if from != nil {
			page.PrevCursor = first
		}
	}
	return page, nil
}
