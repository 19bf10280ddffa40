package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf_MidWeek(t *testing.T) {
	// Wednesday 2024-06-05 belongs to the week of Monday 2024-06-03.
	w := WeekOf(date(2024, time.June, 5))
	require.Equal(t, "2024-06-03", w.StartDate())
	require.Equal(t, "2024-06-09", w.EndDate())
}

func TestWeekOf_MondayMapsToItself(t *testing.T) {
	w := WeekOf(date(2024, time.June, 3))
	require.Equal(t, "2024-06-03", w.StartDate())
	require.Equal(t, "2024-06-09", w.EndDate())
}

func TestWeekOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	w := WeekOf(date(2024, time.June, 9))
	require.Equal(t, "2024-06-03", w.StartDate())
	require.Equal(t, "2024-06-09", w.EndDate())
}

func TestWeekOf_EveryDayOfWeekSharesTheSameSpan(t *testing.T) {
	monday := date(2024, time.June, 3)
	for d := 0; d < DaysPerWeek; d++ {
		w := WeekOf(monday.AddDate(0, 0, d))
		require.Equal(t, "2024-06-03", w.StartDate())
		require.Equal(t, "2024-06-09", w.EndDate())
	}
}

func TestWeekOf_CrossesMonthBoundary(t *testing.T) {
	// Saturday 2024-03-02 falls in the week starting Monday 2024-02-26.
	w := WeekOf(date(2024, time.March, 2))
	require.Equal(t, "2024-02-26", w.StartDate())
	require.Equal(t, "2024-03-03", w.EndDate())
}

func TestWeekOf_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, time.June, 5, 23, 59, 59, 0, time.UTC)
	w := WeekOf(late)
	require.Equal(t, "2024-06-03", w.StartDate())
}

func TestWeekDays(t *testing.T) {
	w := WeekOf(date(2024, time.June, 3))
	days := w.Days()
	require.Len(t, days, DaysPerWeek)
	require.Equal(t, "2024-06-03", DayKey(days[0]))
	require.Equal(t, "2024-06-09", DayKey(days[6]))
	for _, d := range days {
		require.True(t, w.Contains(DayKey(d)))
	}
	require.False(t, w.Contains("2024-06-10"))
	require.False(t, w.Contains("2024-06-02"))
}

func TestParseWeek(t *testing.T) {
	w, err := ParseWeek("2024-06-03", "2024-06-09")
	require.NoError(t, err)
	require.Equal(t, "2024-06-03", w.StartDate())
	require.Equal(t, "2024-06-09", w.EndDate())

	_, err = ParseWeek("06/03/2024", "2024-06-09")
	require.Error(t, err)
}
