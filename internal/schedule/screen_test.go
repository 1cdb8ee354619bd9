package schedule

import (
	"testing"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenText_NoRemindersSet(t *testing.T) {
	r := NewResolver(refLoc(t), 5*time.Minute)

	assert.Equal(t, "No reminders set yet!", r.ScreenText(nil, time.Now()))
	assert.Equal(t, "No reminders set yet!", r.ScreenText([]domain.Reminder{}, time.Now()))
}

func TestScreenText_NoUpcoming(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)

	text := r.ScreenText([]domain.Reminder{rm("a", "2025-01-14", "09:00")}, now)

	assert.Equal(t, "No upcoming reminders!", text)
}

func TestScreenText_FormatsNextReminder(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)
	reminders := []domain.Reminder{
		rm("morning", "2025-01-15", "09:00"),
		rm("afternoon", "2025-01-15", "14:00"),
	}

	text := r.ScreenText(reminders, now)

	assert.Equal(t, "When: WED, 01/15, 9:00 AM\nPlan: Take meds\nFrom your family: The blue ones on the counter", text)
}

func TestScreenText_TwelveHourEdges(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)

	cases := []struct {
		clock string
		want  string
	}{
		{"00:00", "12:00 AM"}, // midnight
		{"12:00", "12:00 PM"}, // noon
		{"00:30", "12:30 AM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		{"09:00", "9:00 AM"},
	}
	for _, tc := range cases {
		text := r.ScreenText([]domain.Reminder{rm("a", "2025-01-16", tc.clock)}, now)
		assert.Contains(t, text, tc.want, "clock %s", tc.clock)
	}
}

func TestScreenText_WeekdayInReferenceTimezone(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)

	// 2025-01-18 is a Saturday.
	text := r.ScreenText([]domain.Reminder{rm("a", "2025-01-18", "10:00")}, now)

	assert.Contains(t, text, "When: SAT, 01/18, 10:00 AM")
}

func TestScreenText_Idempotent(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)
	reminders := []domain.Reminder{rm("a", "2025-01-15", "09:00")}

	first := r.ScreenText(reminders, now)
	second := r.ScreenText(reminders, now)

	assert.Equal(t, first, second)
}

func TestScreenText_NoTrailingNewline(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)

	text := r.ScreenText([]domain.Reminder{rm("a", "2025-01-15", "09:00")}, now)

	assert.NotEmpty(t, text)
	assert.NotEqual(t, byte('\n'), text[len(text)-1])
}

func TestNextScreen_MalformedRecordBecomesErrorText(t *testing.T) {
	loc := refLoc(t)
	r := NewResolver(loc, 5*time.Minute)
	now := time.Date(2025, 1, 15, 8, 0, 0, 0, loc)

	text, err := r.NextScreen([]domain.Reminder{rm("a", "not-a-date", "09:00")}, now)

	require.Error(t, err)
	assert.Equal(t, "Error loading reminders", text)
}
