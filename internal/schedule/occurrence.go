package schedule

import (
	"fmt"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
)

// NextOccurrence computes the calendar date that follows the given occurrence
// under a recurrence label: daily steps one day, weekly seven, monthly one
// calendar month with the day-of-month clamped to the shorter target month
// (Jan 31 -> Feb 28). The wall-clock time of a reminder never changes between
// occurrences, so only the date is returned. For "none" there is no next
// occurrence and ok is false.
//
// This is deliberately decoupled from Resolver: the resolver treats
// recurrence as a label and never expands it.
func NextOccurrence(recurrence, date string, loc *time.Location) (next string, ok bool, err error) {
	d, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return "", false, fmt.Errorf("malformed date %q: %w", date, err)
	}

	switch recurrence {
	case domain.RecurrenceNone:
		return "", false, nil
	case domain.RecurrenceDaily:
		d = d.AddDate(0, 0, 1)
	case domain.RecurrenceWeekly:
		d = d.AddDate(0, 0, 7)
	case domain.RecurrenceMonthly:
		d = addMonthClamped(d)
	default:
		return "", false, fmt.Errorf("unknown recurrence %q", recurrence)
	}
	return d.Format(dateLayout), true, nil
}

// addMonthClamped advances one calendar month without the AddDate overflow
// normalisation (Jan 31 + 1 month must not land in March).
func addMonthClamped(d time.Time) time.Time {
	firstOfNext := time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, d.Location())
}
