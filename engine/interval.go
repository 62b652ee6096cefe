package engine

import (
	"fmt"
	"sort"
	"time"
)

const (
	// DayStart and DayEnd bound a day in minutes since midnight.
	DayStart = 0
	DayEnd   = 24 * 60

	// SlotStep is the candidate-start granularity in minutes. Service
	// durations come in 15-minute multiples, so slots do too.
	SlotStep = 15
)

// Interval is a half-open range [Start, End) of minutes since midnight.
// All times are naive local clock values; no timezone conversion happens
// anywhere in the engine.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Empty reports whether the interval contains no time at all.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether other lies fully inside iv.
func (iv Interval) Contains(other Interval) bool {
	return other.Start >= iv.Start && other.End <= iv.End
}

// Clamp restricts the interval to [DayStart, DayEnd).
func (iv Interval) Clamp() Interval {
	if iv.Start < DayStart {
		iv.Start = DayStart
	}
	if iv.End > DayEnd {
		iv.End = DayEnd
	}
	return iv
}

// Intersect returns the overlap of a and b; the result is empty when
// they do not overlap.
func Intersect(a, b Interval) Interval {
	out := Interval{Start: max(a.Start, b.Start), End: min(a.End, b.End)}
	if out.Empty() {
		return Interval{}
	}
	return out
}

// Merge sorts intervals and coalesces overlapping or touching ones.
// Empty intervals are dropped.
func Merge(intervals []Interval) []Interval {
	var in []Interval
	for _, iv := range intervals {
		if !iv.Empty() {
			in = append(in, iv)
		}
	}
	if len(in) == 0 {
		return nil
	}

	sort.Slice(in, func(i, j int) bool { return in[i].Start < in[j].Start })

	out := []Interval{in[0]}
	for _, iv := range in[1:] {
		last := &out[len(out)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// Subtract removes every overlapping removal from base and returns the
// remaining fragments in order. Removals outside base are no-ops.
func Subtract(base Interval, removals []Interval) []Interval {
	if base.Empty() {
		return nil
	}

	var out []Interval
	cursor := base.Start
	for _, r := range Merge(removals) {
		if !base.Overlaps(r) {
			continue
		}
		if r.Start > cursor {
			out = append(out, Interval{Start: cursor, End: r.Start})
		}
		if r.End > cursor {
			cursor = r.End
		}
	}
	if cursor < base.End {
		out = append(out, Interval{Start: cursor, End: base.End})
	}
	return out
}

// SubtractAll applies Subtract to each base interval.
func SubtractAll(bases, removals []Interval) []Interval {
	var out []Interval
	for _, base := range bases {
		out = append(out, Subtract(base, removals)...)
	}
	return out
}

// ParseClock converts a strict "HH:MM" 24h string to minutes since
// midnight. "24:00" is accepted as end-of-day.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	total := hour*60 + minute
	if hour < 0 || total > DayEnd {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	return total, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date in local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
