package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
)

// The four fixed texts of the display contract. The device renders these
// verbatim; changing a byte here changes what families see on the screen.
const (
	TextNoReminders = "No reminders set yet!"
	TextNoUpcoming  = "No upcoming reminders!"
	TextError       = "Error loading reminders"
)

// ScreenText renders the full display surface for a reminder snapshot: it
// resolves the next reminder and formats it, and is the error boundary for
// the device — every failure collapses into TextError, never an error return.
// The underlying detail is for the caller's operator log (see NextScreen).
func (r *Resolver) ScreenText(reminders []domain.Reminder, now time.Time) string {
	text, _ := r.NextScreen(reminders, now)
	return text
}

// NextScreen is ScreenText plus the suppressed internal error, so the HTTP
// layer can log what the device never sees.
func (r *Resolver) NextScreen(reminders []domain.Reminder, now time.Time) (string, error) {
	if len(reminders) == 0 {
		return TextNoReminders, nil
	}
	next, err := r.Next(reminders, now)
	if err != nil {
		return TextError, err
	}
	if next == nil {
		return TextNoUpcoming, nil
	}
	when, err := r.formatWhen(next.Date, next.Time)
	if err != nil {
		return TextError, err
	}
	return fmt.Sprintf("When: %s\nPlan: %s\nFrom your family: %s", when, next.Title, next.Message), nil
}

// formatWhen renders "WED, 01/15, 9:00 AM": three-letter uppercase weekday in
// the reference timezone, zero-padded month/day without year, 12-hour clock
// with no leading zero on the hour and midnight/noon shown as 12.
func (r *Resolver) formatWhen(date, clock string) (string, error) {
	d, err := time.ParseInLocation(dateLayout, date, r.loc)
	if err != nil {
		return "", fmt.Errorf("malformed date %q: %w", date, err)
	}
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return "", fmt.Errorf("malformed time %q", clock)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("malformed time %q", clock)
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	dow := strings.ToUpper(d.Format("Mon"))
	return fmt.Sprintf("%s, %s, %d:%s %s", dow, d.Format("01/02"), hour12, mm, suffix), nil
}
