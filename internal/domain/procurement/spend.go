package procurement

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSpendThreshold is the monthly per-supplier spend that triggers the
// exceeded flag
var DefaultSpendThreshold = decimal.NewFromInt(100000)

// Month identifies a calendar month
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month t falls in when read in loc
func MonthOf(t time.Time, loc *time.Location) Month {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return Month{Year: local.Year(), Month: local.Month()}
}

// ParseMonth parses YYYY-MM
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, validationError("Month must be formatted as YYYY-MM")
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// String renders YYYY-MM
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Window returns [first instant of the month, first instant of the next
// month) in loc, expressed in UTC. The half-open upper bound covers every
// instant of the last day.
func (m Month) Window(loc *time.Location) (from, to time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}

// MonthlySpend is a supplier's approved spend for one month
type MonthlySpend struct {
	SupplierID       uuid.UUID
	Month            Month
	Total            decimal.Decimal
	OrderCount       int64
	Threshold        decimal.Decimal
	ExceedsThreshold bool
}

// NewMonthlySpend evaluates total against threshold
func NewMonthlySpend(supplierID uuid.UUID, month Month, total decimal.Decimal, count int64, threshold decimal.Decimal) MonthlySpend {
	return MonthlySpend{
		SupplierID:       supplierID,
		Month:            month,
		Total:            total,
		OrderCount:       count,
		Threshold:        threshold,
		ExceedsThreshold: total.GreaterThanOrEqual(threshold),
	}
}

// Annotation is the remark appended to an order submitted while its
// supplier is over threshold
func (s MonthlySpend) Annotation() string {
	return fmt.Sprintf("[Spend alert] Supplier approved spend for %s is %s, at or above the monthly threshold of %s",
		s.Month, s.Total.StringFixed(2), s.Threshold.StringFixed(2))
}
