package scheduling

import "time"

// Interval is an appointment's occupied slot. Invariant: Start < End.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether two half-open intervals [a.Start, a.End) and
// [b.Start, b.End) intersect. Touching endpoints do not count as overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// HasConflict reports whether the proposed interval overlaps any of the
// existing ones. Cancelled or deleted appointments must be filtered out by
// the caller; this check has no status awareness.
func HasConflict(proposed Interval, existing []Interval) bool {
	for _, e := range existing {
		if Overlaps(proposed, e) {
			return true
		}
	}
	return false
}
