// Package scheduling holds the pure feasibility rules behind every agenda:
// working hours, blocked dates and slot conflicts. Nothing in here touches
// the database; callers load the establishment state and pass it in.
package scheduling

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format stored on blocked dates.
const DateLayout = "2006-01-02"

// WorkingHours encodes an establishment's recurring weekly availability:
// the active weekdays plus a daily [StartTime, EndTime) window. Times are
// "HH:MM" strings, the shape the profile document stores.
type WorkingHours struct {
	DaysOfWeek []time.Weekday `bson:"daysOfWeek" json:"daysOfWeek"`
	StartTime  string         `bson:"startTime" json:"startTime"`
	EndTime    string         `bson:"endTime" json:"endTime"`
}

// IsZero reports whether no working hours have been configured.
func (wh WorkingHours) IsZero() bool {
	return len(wh.DaysOfWeek) == 0 && wh.StartTime == "" && wh.EndTime == ""
}

// BlockedDate is a full-day exclusion overriding working hours.
type BlockedDate struct {
	Date   string `bson:"date" json:"date"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// minuteOfDay parses an "HH:MM" string into minutes from midnight.
// Malformed values yield -1, which never matches a real instant.
func minuteOfDay(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return -1
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return -1
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return -1
	}
	return hours*60 + minutes
}

// IsWithinWorkingHours reports whether t falls on an active weekday with a
// time-of-day inside [StartTime, EndTime). The start is inclusive and the end
// exclusive: a proposal exactly at closing time is rejected. Unconfigured
// working hours are treated as never available.
func IsWithinWorkingHours(t time.Time, wh WorkingHours) bool {
	if wh.IsZero() {
		return false
	}
	active := false
	for _, d := range wh.DaysOfWeek {
		if t.Weekday() == d {
			active = true
			break
		}
	}
	if !active {
		return false
	}
	start := minuteOfDay(wh.StartTime)
	end := minuteOfDay(wh.EndTime)
	if start < 0 || end < 0 {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= start && minute < end
}

// IsDateBlocked reports whether date ("YYYY-MM-DD") matches any blocked date.
func IsDateBlocked(date string, blocked []BlockedDate) bool {
	for _, b := range blocked {
		if b.Date == date {
			return true
		}
	}
	return false
}
