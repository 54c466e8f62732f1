package view

import "time"

// MiniCalDay is one selectable day of the sidebar mini calendar.
type MiniCalDay struct {
	Date       time.Time
	InMonth    bool
	IsToday    bool
	IsSelected bool
}

type MiniCal struct {
	// Title is the "January 2024" heading.
	Title string
	Weeks [][]MiniCalDay
}

// MiniCalendar builds the sidebar month picker around the selected date.
// It carries no events, just date flags.
func MiniCalendar(selected time.Time) MiniCal {
	return miniCalendarAt(selected, time.Now())
}

func miniCalendarAt(selected, now time.Time) MiniCal {
	monthStart := StartOfMonth(selected)

	mc := MiniCal{Title: selected.Format("January 2006")}

	day := StartOfWeek(monthStart)
	end := StartOfWeek(EndOfMonth(selected)).AddDate(0, 0, 6)

	var week []MiniCalDay
	for !day.After(end) {
		week = append(week, MiniCalDay{
			Date:       day,
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    SameDay(day, now.In(day.Location())),
			IsSelected: SameDay(day, selected),
		})
		if len(week) == 7 {
			mc.Weeks = append(mc.Weeks, week)
			week = nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return mc
}
