package view

import (
	"time"

	"webcal/internal/models"
)

// WeekColumn is one day column of the week timeline.
type WeekColumn struct {
	Day     time.Time
	IsToday bool
	Blocks  []EventBlock
}

// Week lays out a Sunday-through-Saturday strip of 24-hour columns around
// the anchor date.
func Week(events []models.Event, anchor time.Time) []WeekColumn {
	return weekAt(events, anchor, time.Now())
}

func weekAt(events []models.Event, anchor, now time.Time) []WeekColumn {
	start := StartOfWeek(anchor)

	cols := make([]WeekColumn, 7)
	for i := range cols {
		day := start.AddDate(0, 0, i)
		cols[i] = WeekColumn{
			Day:     day,
			IsToday: SameDay(day, now.In(day.Location())),
			Blocks:  Timeline(events, day),
		}
	}
	return cols
}
