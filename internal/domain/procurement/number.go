package procurement

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PONumberPrefix returns the per-day prefix, e.g. "PO-20260315-"
func PONumberPrefix(day time.Time) string {
	return "PO-" + day.UTC().Format("20060102") + "-"
}

// FormatPONumber renders PO-YYYYMMDD-XXXX
func FormatPONumber(day time.Time, sequence int) string {
	return fmt.Sprintf("%s%04d", PONumberPrefix(day), sequence)
}

// NextPONumber derives the number following the latest one issued on day.
// An empty or foreign latest restarts the sequence at 1.
func NextPONumber(day time.Time, latest string) string {
	prefix := PONumberPrefix(day)
	seq := 1
	if rest, ok := strings.CutPrefix(latest, prefix); ok {
		if n, err := strconv.Atoi(rest); err == nil {
			seq = n + 1
		}
	}
	return FormatPONumber(day, seq)
}
