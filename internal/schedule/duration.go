package schedule

import (
	"fmt"
	"time"
)

// EstimateDuration describes end-begin in the largest whole unit, e.g.
// "About 2 hours". It returns "" for anything under a minute, for negative
// spans and when either timestamp is invalid.
func EstimateDuration(begin, end time.Time) string {
	if begin.IsZero() || end.IsZero() {
		return ""
	}

	d := end.Sub(begin)
	days := int64(d / (24 * time.Hour))
	hours := int64(d / time.Hour)
	minutes := int64(d / time.Minute)

	switch {
	case days > 0:
		return about(days, "day")
	case hours > 0:
		return about(hours, "hour")
	case minutes > 0:
		return about(minutes, "minute")
	}
	return ""
}

func about(n int64, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("About %d %s", n, unit)
}
