package update

import (
	"fmt"
	"time"

	"myplanner/internal/views"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekDays returns the seven dates of the current week, Monday first. A Sunday
// "today" belongs to the week that started six days earlier.
func weekDays(today time.Time) []time.Time {
	diff := 1 - int(today.Weekday())
	if today.Weekday() == time.Sunday {
		diff = -6
	}
	start := today.AddDate(0, 0, diff)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// weekData builds the weekly calendar strip. The per-day indicators are
// presentational placeholders; the strip does not bind to the task store.
func (m Model) weekData() views.WeekData {
	today := m.clock()
	days := weekDays(today)
	out := views.WeekData{
		MonthLabel: fmt.Sprintf("%s %d", today.Month(), today.Year()),
		Days:       make([]views.WeekDayData, 0, len(days)),
	}
	for i, day := range days {
		out.Days = append(out.Days, views.WeekDayData{
			Label:      weekdayLabels[i],
			Day:        day.Day(),
			IsToday:    sameDate(day, today),
			Indicators: placeholderIndicators(i),
		})
	}
	return out
}

func placeholderIndicators(index int) []string {
	switch index {
	case 1:
		return []string{"[RED]"}
	case 3:
		return []string{"[YELLOW]", "[GREEN]"}
	case 5:
		return []string{"[GREEN]"}
	default:
		return nil
	}
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
