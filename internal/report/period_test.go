package report_test

import (
	"testing"
	"time"

	"go-kafe/internal/report"
	reporterrors "go-kafe/internal/report/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	return time.FixedZone("WIB", 7*60*60)
}

func TestParsePeriod(t *testing.T) {
	loc := jakarta(t)

	t.Run("day covers the whole local day", func(t *testing.T) {
		p, err := report.ParsePeriod("2026-03-05", "", loc)

		require.NoError(t, err)
		assert.Equal(t, report.KindDay, p.Kind)
		assert.Equal(t, "2026-03-05", p.Label)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, loc), p.Start)
		assert.Equal(t, time.Date(2026, 3, 5, 23, 59, 59, 999999000, loc), p.End)
	})

	t.Run("month ends on its last day", func(t *testing.T) {
		p, err := report.ParsePeriod("", "2024-02", loc)

		require.NoError(t, err)
		assert.Equal(t, report.KindMonth, p.Kind)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), p.Start)
		assert.Equal(t, 29, p.End.Day())
		assert.True(t, p.End.Before(time.Date(2024, 3, 1, 0, 0, 0, 0, loc)))
	})

	for name, in := range map[string][2]string{
		"neither":   {"", ""},
		"both":      {"2026-03-05", "2026-03"},
		"bad date":  {"05-03-2026", ""},
		"bad month": {"", "2026-13"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := report.ParsePeriod(in[0], in[1], loc)
			assert.ErrorIs(t, err, reporterrors.ErrInvalidPeriod)
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	c := report.Cursor{CreatedAt: time.Date(2026, 3, 5, 8, 30, 0, 123000, time.UTC), ID: [16]byte{1}}

	got, err := report.DecodeCursor(report.EncodeCursor(c))

	require.NoError(t, err)
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, c.ID, got.ID)

	_, err = report.DecodeCursor("not base64!")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidCursor)
	_, err = report.DecodeCursor("e30")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidCursor)
}
