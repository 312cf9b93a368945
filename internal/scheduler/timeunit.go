package scheduler

import (
	"fmt"
	"strings"
)

// TimeUnit expresses delays and periods in units other than ticks.
type TimeUnit int

const (
	Ticks TimeUnit = iota
	Milliseconds
	Seconds
	Minutes
)

// ToTicks converts n units to ticks. Millisecond values are truncated to
// whole ticks.
func (u TimeUnit) ToTicks(n int) int {
	switch u {
	case Milliseconds:
		return n / 50
	case Seconds:
		return n * 20
	case Minutes:
		return n * 20 * 60
	default:
		return n
	}
}

func (u TimeUnit) String() string {
	switch u {
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	default:
		return "ticks"
	}
}

// ParseTimeUnit accepts the short names returned by String and their long
// forms. An empty string means Ticks.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "t", "tick", "ticks":
		return Ticks, nil
	case "ms", "millis", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "seconds":
		return Seconds, nil
	case "m", "min", "minutes":
		return Minutes, nil
	default:
		return Ticks, fmt.Errorf("unknown time unit %q", s)
	}
}
