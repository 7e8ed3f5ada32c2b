package camp

import (
	"fmt"
	"time"
)

// clockLayouts are the accepted clock-time formats, tried in order.
var clockLayouts = []string{"3:04 PM", "3:04PM", "15:04", "3 PM", "3PM"}

// ParseClockTime parses a clock string such as "9:30 AM" or "14:05" into
// minutes since midnight.
func ParseClockTime(s string) (int, error) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognized clock time %q", s)
}

// FormatMinutes renders minutes since midnight as a 12-hour clock string,
// e.g. 570 → "9:30 AM". Values wrap modulo 24 hours.
func FormatMinutes(min int) string {
	min = ((min % 1440) + 1440) % 1440
	h, m := min/60, min%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

// FormatRange renders a [start,end) window as "9:30 AM-10:15 AM".
func FormatRange(startMin, endMin int) string {
	return FormatMinutes(startMin) + "-" + FormatMinutes(endMin)
}

// Overlaps reports whether two half-open intervals [start1,end1) and
// [start2,end2) intersect. This exact check is used everywhere overlap
// matters: back-to-back slots sharing a boundary do not overlap.
func Overlaps(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// Contains reports whether [innerStart,innerEnd) lies fully within
// [outerStart,outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd int) bool {
	return outerStart <= innerStart && innerEnd <= outerEnd
}

// ValidDate reports whether s is a well-formed ISO calendar date
// (YYYY-MM-DD).
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil && len(s) == 10
}
