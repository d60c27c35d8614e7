package scheduling

import "time"

// CheckFeasibility decides whether a proposed slot can be booked. The checks
// run in a fixed order and the first failure wins, so the caller always sees
// the most fundamental problem first:
//
//  1. the start is in the past
//  2. the start date is blocked
//  3. the start falls outside working hours
//  4. the slot overlaps an existing appointment
//
// Only the start instant is validated against working hours; a slot that
// begins inside the window and runs past closing time is accepted. That
// mirrors the agenda pages' behavior and is kept deliberately until the
// domain owners decide otherwise.
func CheckFeasibility(proposed Interval, now time.Time, wh WorkingHours, blocked []BlockedDate, existing []Interval) error {
	if proposed.Start.Before(now) {
		return &RejectionError{Code: CodePastSlot, Message: "não é possível agendar no passado"}
	}
	if IsDateBlocked(proposed.Start.Format(DateLayout), blocked) {
		return &RejectionError{Code: CodeDateBlocked, Message: "essa data está bloqueada"}
	}
	if !IsWithinWorkingHours(proposed.Start, wh) {
		return &RejectionError{Code: CodeOutsideWorkingHours, Message: "fora do horário de trabalho do estabelecimento"}
	}
	if HasConflict(proposed, existing) {
		return &RejectionError{Code: CodeSlotOccupied, Message: "horário já ocupado"}
	}
	return nil
}
