// Package view computes calendar grid layouts from an event list and an
// anchor date. Every function here is pure: the event list is never
// mutated, and geometry comes out as plain numbers for whatever renders it.
package view

import (
	"time"

	"webcal/internal/models"
)

// SameDay reports whether a and b fall on the same calendar date. Both
// times are read in the location they carry, matching the "today by local
// calendar date, not instant equality" rule.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// eventsOn filters to events whose start date matches day, keeping the
// store's ordering. Multi-day spill-over is intentionally not handled: an
// event appears only on its start day.
func eventsOn(events []models.Event, day time.Time) []models.Event {
	var matched []models.Event
	for _, e := range events {
		if SameDay(e.StartTime.In(day.Location()), day) {
			matched = append(matched, e)
		}
	}
	return matched
}
