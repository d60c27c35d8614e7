package scheduling

import (
	"testing"
	"time"
)

func rejectionCode(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	rej := AsRejection(err)
	if rej == nil {
		t.Fatalf("expected a RejectionError, got %T: %v", err, err)
	}
	return rej.Code
}

func TestCheckFeasibilityAccepts(t *testing.T) {
	// Monday 09:00-09:30, checked on the previous Sunday.
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 9, 0, 9, 30)

	err := CheckFeasibility(proposed, now, weekdayHours, nil, nil)
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestCheckFeasibilityOrder(t *testing.T) {
	// A slot that is in the past AND on a blocked date AND outside working
	// hours must report the past slot: the first failing check wins.
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 5, 0, 5, 30) // 2024-06-10 05:00, before now and before opening
	blocked := []BlockedDate{{Date: "2024-06-10"}}

	err := CheckFeasibility(proposed, now, weekdayHours, blocked, nil)
	if code := rejectionCode(t, err); code != CodePastSlot {
		t.Fatalf("expected %s, got %s", CodePastSlot, code)
	}
}

func TestCheckFeasibilityBlockedDate(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 9, 0, 9, 30)
	blocked := []BlockedDate{{Date: "2024-06-10", Reason: "manutenção"}}

	err := CheckFeasibility(proposed, now, weekdayHours, blocked, nil)
	if code := rejectionCode(t, err); code != CodeDateBlocked {
		t.Fatalf("expected %s, got %s", CodeDateBlocked, code)
	}
}

func TestCheckFeasibilityOutsideWorkingHours(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 19, 0, 19, 30)

	err := CheckFeasibility(proposed, now, weekdayHours, nil, nil)
	if code := rejectionCode(t, err); code != CodeOutsideWorkingHours {
		t.Fatalf("expected %s, got %s", CodeOutsideWorkingHours, code)
	}
}

func TestCheckFeasibilityStartOnlyWindowCheck(t *testing.T) {
	// Starts one minute before closing and ends after hours: accepted,
	// because only the start instant is validated.
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 17, 59, 18, 29)

	if err := CheckFeasibility(proposed, now, weekdayHours, nil, nil); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestCheckFeasibilitySlotOccupied(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 9, 0, 9, 30)
	existing := []Interval{interval(t, 8, 30, 9, 15)}

	err := CheckFeasibility(proposed, now, weekdayHours, nil, existing)
	if code := rejectionCode(t, err); code != CodeSlotOccupied {
		t.Fatalf("expected %s, got %s", CodeSlotOccupied, code)
	}
}

func TestCheckFeasibilityTouchingSlotAccepted(t *testing.T) {
	now := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)
	proposed := interval(t, 9, 0, 9, 30)
	existing := []Interval{interval(t, 9, 30, 10, 0)}

	if err := CheckFeasibility(proposed, now, weekdayHours, nil, existing); err != nil {
		t.Fatalf("expected accept for touching slots, got %v", err)
	}
}
