package timesheet

import (
	"fmt"
	"time"

	"github.com/prismworks/timesheet-console/internal/models"
)

// DaysPerWeek is the grid's column count.
const DaysPerWeek = 7

// Week is a Monday..Sunday span. A timesheet's identity is pinned to one.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the ISO week containing t: start is the Monday on or
// before t (a Monday maps to itself), end the following Sunday. Both are
// truncated to calendar dates.
func WeekOf(t time.Time) Week {
	day := truncateToDate(t)
	// Weekday is Sunday-based; shift so Monday == 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Week{
		Start: start,
		End:   start.AddDate(0, 0, DaysPerWeek-1),
	}
}

// ParseWeek rebuilds a Week from stored calendar-date strings.
func ParseWeek(startDate, endDate string) (Week, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return Week{}, fmt.Errorf("parse week start %q: %w", startDate, err)
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return Week{}, fmt.Errorf("parse week end %q: %w", endDate, err)
	}
	return Week{Start: start, End: end}, nil
}

// IsZero reports whether no week has been selected yet.
func (w Week) IsZero() bool {
	return w.Start.IsZero()
}

// Days enumerates all seven calendar days of the week, inclusive.
func (w Week) Days() []time.Time {
	days := make([]time.Time, 0, DaysPerWeek)
	for d := 0; d < DaysPerWeek; d++ {
		days = append(days, w.Start.AddDate(0, 0, d))
	}
	return days
}

// StartDate is the week start as a calendar-date string.
func (w Week) StartDate() string {
	return w.Start.Format(models.DateLayout)
}

// EndDate is the week end as a calendar-date string.
func (w Week) EndDate() string {
	return w.End.Format(models.DateLayout)
}

// Contains reports whether the calendar day key falls inside the week.
func (w Week) Contains(dayKey string) bool {
	for _, d := range w.Days() {
		if DayKey(d) == dayKey {
			return true
		}
	}
	return false
}

// DayKey is the unique per-calendar-day string used to key grid cells.
func DayKey(t time.Time) string {
	return t.Format(models.DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
