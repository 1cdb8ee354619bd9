package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Resolver selects the next due reminder. All civil date/time comparison
// happens in the reference timezone, never the server's local zone, and the
// same-day cutoff is pushed forward by a small grace buffer so a reminder the
// display device is still polling for does not vanish the second it becomes due.
type Resolver struct {
	loc    *time.Location
	buffer time.Duration
}

func NewResolver(loc *time.Location, buffer time.Duration) *Resolver {
	return &Resolver{loc: loc, buffer: buffer}
}

// Next returns the first not-yet-passed reminder ordered by (date, time), or
// nil when none qualifies. It never mutates the snapshot it is handed.
// A stored record whose date or time does not parse is an internal error, not
// a panic: intake validation should have made it impossible.
func (r *Resolver) Next(reminders []domain.Reminder, now time.Time) (*domain.Reminder, error) {
	if len(reminders) == 0 {
		return nil, nil
	}

	local := now.In(r.loc)
	today := local.Format(dateLayout)
	nowKey := today + " " + local.Format(clockLayout)
	bufferedNow := local.Add(r.buffer).Format(clockLayout)

	var candidates []domain.Reminder
	for _, rm := range reminders {
		if err := checkSchedule(rm); err != nil {
			return nil, err
		}
		// Full-datetime comparison first: a reminder already behind the
		// current instant is out regardless of how its date label compares.
		if rm.DueKey() < nowKey {
			continue
		}
		if rm.Date == today && rm.Time < bufferedNow {
			continue
		}
		candidates = append(candidates, rm)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	// Stable sort keeps the repository listing order as the tiebreak, so
	// identical slots resolve the same way on every poll.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DueKey() < candidates[j].DueKey()
	})
	return &candidates[0], nil
}

// checkSchedule rejects records whose date/time strings fall outside the
// fixed-width ISO fragment shape the lexicographic comparisons rely on.
// time.Parse alone is too lenient: it accepts "9:00", which would sort after
// "14:00" as a string.
func checkSchedule(rm domain.Reminder) error {
	if _, err := time.Parse(dateLayout, rm.Date); err != nil || len(rm.Date) != len(dateLayout) {
		return fmt.Errorf("reminder %s: malformed date %q: %w", rm.ReminderID, rm.Date, domain.ErrBadRequest)
	}
	if _, err := time.Parse(clockLayout, rm.Time); err != nil || len(rm.Time) != len(clockLayout) {
		return fmt.Errorf("reminder %s: malformed time %q: %w", rm.ReminderID, rm.Time, domain.ErrBadRequest)
	}
	return nil
}
