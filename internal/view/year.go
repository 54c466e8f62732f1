package view

import (
	"time"

	"webcal/internal/models"
)

// MaxDotsPerDay caps the color dots a year-view day shows; any events
// beyond that collapse into a single grey overflow dot.
const MaxDotsPerDay = 3

// YearColumns is the number of mini-month columns the year view renders.
const YearColumns = 4

type MiniDay struct {
	Date    time.Time
	InMonth bool

	// IsToday is only set on in-month days; the padded edges never
	// highlight.
	IsToday bool

	// Dots holds up to MaxDotsPerDay event colors, in-month days only.
	Dots     []string
	Overflow bool

	// Events lists the full set behind the dots, for click targets.
	Events []models.Event
}

type MiniMonth struct {
	Month time.Month
	Name  string
	Weeks [][]MiniDay
}

// Year builds twelve Sunday-padded mini month grids for the anchor's year.
func Year(events []models.Event, anchor time.Time) []MiniMonth {
	return yearAt(events, anchor, time.Now())
}

func yearAt(events []models.Event, anchor, now time.Time) []MiniMonth {
	months := make([]MiniMonth, 0, 12)
	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(anchor.Year(), m, 1, 0, 0, 0, 0, anchor.Location())
		months = append(months, miniMonth(events, monthStart, now))
	}
	return months
}

func miniMonth(events []models.Event, monthStart, now time.Time) MiniMonth {
	mm := MiniMonth{
		Month: monthStart.Month(),
		Name:  monthStart.Format("January"),
	}

	day := StartOfWeek(monthStart)
	end := StartOfWeek(monthStart.AddDate(0, 1, -1)).AddDate(0, 0, 6)

	var week []MiniDay
	for !day.After(end) {
		week = append(week, miniDay(events, day, monthStart, now))
		if len(week) == 7 {
			mm.Weeks = append(mm.Weeks, week)
			week = nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return mm
}

func miniDay(events []models.Event, day, monthStart, now time.Time) MiniDay {
	d := MiniDay{
		Date:    day,
		InMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
	}
	if !d.InMonth {
		return d
	}

	d.IsToday = SameDay(day, now.In(day.Location()))
	d.Events = eventsOn(events, day)

	for i, e := range d.Events {
		if i == MaxDotsPerDay {
			d.Overflow = true
			break
		}
		d.Dots = append(d.Dots, e.Color)
	}
	return d
}

// MiniWeekdayHeader is the single-letter header used by the year view and
// the sidebar mini calendar.
var MiniWeekdayHeader = []string{"S", "M", "T", "W", "T", "F", "S"}
