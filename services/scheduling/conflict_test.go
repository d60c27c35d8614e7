package scheduling

import (
	"testing"
	"time"
)

func interval(t *testing.T, startHour, startMin, endHour, endMin int) Interval {
	t.Helper()
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", interval(t, 10, 0, 11, 0), interval(t, 12, 0, 13, 0), false},
		{"touching endpoints", interval(t, 10, 0, 11, 0), interval(t, 11, 0, 12, 0), false},
		{"contained", interval(t, 10, 0, 11, 0), interval(t, 10, 30, 10, 45), true},
		{"partial", interval(t, 10, 0, 11, 0), interval(t, 10, 30, 11, 30), true},
		{"identical", interval(t, 10, 0, 11, 0), interval(t, 10, 0, 11, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.a, c.b); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(c.b, c.a); got != c.want {
				t.Fatalf("Overlaps reversed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []Interval{
		interval(t, 8, 30, 9, 15),
		interval(t, 14, 0, 15, 0),
	}
	if !HasConflict(interval(t, 9, 0, 9, 30), existing) {
		t.Fatal("expected overlap with the 08:30-09:15 appointment")
	}
	if HasConflict(interval(t, 9, 15, 9, 45), existing) {
		t.Fatal("expected touching intervals not to conflict")
	}
	if HasConflict(interval(t, 9, 0, 9, 30), nil) {
		t.Fatal("expected no conflict against an empty agenda")
	}
}
