package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-kafe/internal/report"
	reporterrors "go-kafe/internal/report/errors"
	reportMock "go-kafe/internal/report/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	service report.Service
	repo    *reportMock.MockRepository
	now     time.Time
	loc     *time.Location
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := reportMock.NewMockRepository(ctrl)
	loc := jakarta(t)
	now := time.Date(2026, 3, 5, 21, 0, 0, 0, loc)
	return &serviceDeps{
		service: report.NewService(repo, loc, zap.NewNop(), report.WithClock(func() time.Time { return now })),
		repo:    repo,
		now:     now,
		loc:     loc,
	}
}

// rows returns n orders created a minute apart, newest first.
func rows(n int, newest time.Time) []report.OrderRow {
	out := make([]report.OrderRow, n)
	for i := range out {
		out[i] = report.OrderRow{
			ID:          uuid.New(),
			OrderNumber: int64(n - i),
			TotalAmount: 10_000,
			CreatedAt:   newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestReportService_Summary(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	t.Run("reduces orders in the period", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := report.DayOf(deps.now, deps.loc)
		found := []report.OrderRow{
			{ID: uuid.New(), TotalAmount: 25_123, Status: "delivered"},
			{ID: uuid.New(), TotalAmount: 18_000, Status: "cancelled"},
		}
		deps.repo.EXPECT().FindBetween(ctx, tenantID, p.Start, p.End).Return(found, nil)

		resp, err := deps.service.Summary(ctx, tenantID, p)

		require.NoError(t, err)
		assert.Equal(t, int64(43_123), resp.TotalRevenue)
		assert.Equal(t, 2, resp.TotalTransactions)
		assert.Equal(t, "2026-03-05", resp.Period)
		assert.Len(t, resp.Orders, 2)
	})

	t.Run("empty period", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := report.MonthOf(deps.now, deps.loc)
		deps.repo.EXPECT().FindBetween(ctx, tenantID, p.Start, p.End).Return(nil, nil)

		resp, err := deps.service.Summary(ctx, tenantID, p)

		require.NoError(t, err)
		assert.Zero(t, resp.TotalRevenue)
		assert.Zero(t, resp.TotalTransactions)
		assert.NotNil(t, resp.Orders)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := report.DayOf(deps.now, deps.loc)
		deps.repo.EXPECT().FindBetween(ctx, tenantID, p.Start, p.End).Return(nil, errors.New("db down"))

		_, err := deps.service.Summary(ctx, tenantID, p)

		assert.ErrorIs(t, err, reporterrors.ErrReportLoadFailed)
	})
}

func TestReportService_TodayPage(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.NewString()

	t.Run("first page looks one row ahead", func(t *testing.T) {
		deps := setupServiceTest(t)
		today := report.DayOf(deps.now, deps.loc)
		found := rows(report.TodayPageSize+1, deps.now)
		deps.repo.EXPECT().FindPage(ctx, report.PageQuery{
			TenantID: tenantID,
			Start:    today.Start,
			End:      today.End,
			Limit:    report.TodayPageSize + 1,
		}).Return(found, nil)

		page, err := deps.service.TodayPage(ctx, tenantID, "", "")

		require.NoError(t, err)
		assert.Len(t, page.Orders, report.TodayPageSize)
		assert.Empty(t, page.PrevCursor)
		require.NotEmpty(t, page.NextCursor)

		next, err := report.DecodeCursor(page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, found[report.TodayPageSize-1].ID, next.ID)
	})

	t.Run("last page has no next cursor", func(t *testing.T) {
		deps := setupServiceTest(t)
		found := rows(3, deps.now)
		after := report.Cursor{CreatedAt: deps.now.Add(time.Minute), ID: uuid.New()}
		deps.repo.EXPECT().FindPage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q report.PageQuery) ([]report.OrderRow, error) {
				require.NotNil(t, q.After)
				assert.Nil(t, q.Before)
				assert.Equal(t, after.ID, q.After.ID)
				return found, nil
			})

		page, err := deps.service.TodayPage(ctx, tenantID, report.EncodeCursor(after), report.DirectionNext)

		require.NoError(t, err)
		assert.Len(t, page.Orders, 3)
		assert.Empty(t, page.NextCursor)
		assert.NotEmpty(t, page.PrevCursor)
	})

	t.Run("prev restores newest first order", func(t *testing.T) {
		deps := setupServiceTest(t)
		newestFirst := rows(report.TodayPageSize+1, deps.now)
		// The store returns oldest first when walking backwards.
		oldestFirst := make([]report.OrderRow, len(newestFirst))
		for i, r := range newestFirst {
			oldestFirst[len(newestFirst)-1-i] = r
		}
		before := report.Cursor{CreatedAt: deps.now.Add(-time.Hour), ID: uuid.New()}
		deps.repo.EXPECT().FindPage(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, q report.PageQuery) ([]report.OrderRow, error) {
				require.NotNil(t, q.Before)
				assert.Nil(t, q.After)
				return oldestFirst, nil
			})

		page, err := deps.service.TodayPage(ctx, tenantID, report.EncodeCursor(before), report.DirectionPrev)

		require.NoError(t, err)
		require.Len(t, page.Orders, report.TodayPageSize)
		assert.True(t, page.Orders[0].CreatedAt.After(page.Orders[1].CreatedAt))
		assert.Equal(t, newestFirst[1].ID, page.Orders[0].ID)
		assert.NotEmpty(t, page.PrevCursor)
		assert.NotEmpty(t, page.NextCursor)
	})

	t.Run("prev needs a cursor", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.TodayPage(ctx, tenantID, "", report.DirectionPrev)

		assert.ErrorIs(t, err, reporterrors.ErrInvalidCursor)
	})

	t.Run("garbled cursor", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.TodayPage(ctx, tenantID, "%%%", report.DirectionNext)

		assert.ErrorIs(t, err, reporterrors.ErrInvalidCursor)
	})
}
