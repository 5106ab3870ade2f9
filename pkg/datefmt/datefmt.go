// Package datefmt formats timestamps with strftime-style specs, the date
// utility a chart host exposes for time-mode axes.
//
// Timestamps are rendered in UTC, as chart libraries do for time axes unless
// told otherwise:
//
//	datefmt.Format(datefmt.FromMillis(1709294400000), "%Y-%m-%d %H:%M")
//	// "2024-03-01 12:00"
package datefmt

import (
	"math"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultSpec is used by time-mode axes that configure no format of their own.
const DefaultSpec = "%Y-%m-%d %H:%M:%S"

// Func formats t according to spec.
type Func func(t time.Time, spec string) string

// Format renders t in UTC using the strftime spec. An empty spec falls back to
// DefaultSpec.
func Format(t time.Time, spec string) string {
	if spec == "" {
		spec = DefaultSpec
	}
	return strftime.Format(spec, t.UTC())
}

// FromMillis converts epoch milliseconds to a UTC time. Fractional
// milliseconds are truncated; non-finite input yields the zero Unix time.
func FromMillis(ms float64) time.Time {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Unix(0, 0).UTC()
	}
	return time.UnixMilli(int64(ms)).UTC()
}
