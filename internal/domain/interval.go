package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open time interval [Start, End): the start instant is
// included, the end instant is not. Every overlap decision in the system
// routes through Overlaps; intervals that merely touch do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval from its bounds. It does not validate; call
// Valid before trusting the result.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Valid reports whether the interval is non-empty, i.e. Start < End strictly.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open intervals share at least one
// instant: aStart < bEnd AND bStart < aEnd. An interval ending exactly when
// the other starts does not count.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// String renders the interval as "[start, end)" in RFC 3339.
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}
