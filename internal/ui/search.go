package ui

import (
	"strings"
	"time"

	"webcal/internal/models"
)

// Search filters events by case-insensitive substring match on title and
// description. A blank query matches nothing.
func Search(events []models.Event, query string) []models.Event {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []models.Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), query) ||
			strings.Contains(strings.ToLower(e.Description), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// TodayEvents picks the events starting on today's local calendar date,
// for the sidebar list.
func TodayEvents(events []models.Event, now time.Time) []models.Event {
	var matched []models.Event
	for _, e := range events {
		if sameDay(e.StartTime.In(now.Location()), now) {
			matched = append(matched, e)
		}
	}
	return matched
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
