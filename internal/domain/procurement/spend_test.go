package procurement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_Window(t *testing.T) {
	m, err := ParseMonth("2026-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-02", m.String())

	from, to := m.Window(time.UTC)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), to)

	lastInstant := time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC)
	assert.True(t, !lastInstant.Before(from) && lastInstant.Before(to))
}

func TestMonth_WindowInZone(t *testing.T) {
	loc := time.FixedZone("IST", 2*60*60)
	from, to := Month{Year: 2026, Month: time.January}.Window(loc)

	assert.Equal(t, time.Date(2025, 12, 31, 22, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 31, 22, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.UTC, from.Location())
}

func TestMonthOf(t *testing.T) {
	loc := time.FixedZone("IST", 2*60*60)
	instant := time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, Month{Year: 2026, Month: time.January}, MonthOf(instant, time.UTC))
	assert.Equal(t, Month{Year: 2026, Month: time.February}, MonthOf(instant, loc))
}

func TestParseMonth_Invalid(t *testing.T) {
	_, err := ParseMonth("2026/02")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewMonthlySpend(t *testing.T) {
	m := Month{Year: 2026, Month: time.March}

	at := NewMonthlySpend(uuid.New(), m, decimal.NewFromInt(100000), 3, DefaultSpendThreshold)
	assert.True(t, at.ExceedsThreshold)

	below := NewMonthlySpend(uuid.New(), m, decimal.NewFromFloat(99999.99), 3, DefaultSpendThreshold)
	assert.False(t, below.ExceedsThreshold)

	assert.Contains(t, at.Annotation(), "2026-03")
	assert.Contains(t, at.Annotation(), "100000.00")
}
