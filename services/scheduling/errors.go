package scheduling

import "fmt"

// Rejection codes, one per feasibility check.
const (
	CodePastSlot            = "pastSlot"
	CodeDateBlocked         = "dateBlocked"
	CodeOutsideWorkingHours = "outsideWorkingHours"
	CodeSlotOccupied        = "slotOccupied"
)

// RejectionError is a feasibility rejection: expected, user-correctable and
// surfaced directly to the caller.
type RejectionError struct {
	Code    string
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsRejection returns the RejectionError inside err, or nil when err is not
// a feasibility rejection.
func AsRejection(err error) *RejectionError {
	if rej, ok := err.(*RejectionError); ok {
		return rej
	}
	return nil
}
