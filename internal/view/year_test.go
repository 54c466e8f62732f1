package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webcal/internal/models"
)

func TestYear_TwelveMonths(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	months := yearAt(nil, anchor, anchor)

	require.Len(t, months, 12)
	assert.Equal(t, "January", months[0].Name)
	assert.Equal(t, "December", months[11].Name)
	for _, mm := range months {
		for _, week := range mm.Weeks {
			assert.Len(t, week, 7)
		}
	}
}

func TestYear_DotsCappedWithOverflow(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	colors := []string{"#4599df", "#c3291c", "#616161", "#397E49"}
	var events []models.Event
	for _, c := range colors {
		events = append(events, models.Event{
			Title:     "Dot",
			StartTime: day.Add(9 * time.Hour),
			EndTime:   day.Add(10 * time.Hour),
			Color:     c,
		})
	}

	months := yearAt(events, day, day)

	cell := findMiniDay(t, months[0], day)
	assert.Equal(t, colors[:3], cell.Dots)
	assert.True(t, cell.Overflow)
	assert.Len(t, cell.Events, 4)
}

func TestYear_NoDotsOnAdjacentMonthDays(t *testing.T) {
	// Dec 31 2023 pads the front of January 2024's grid.
	day := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	events := []models.Event{{
		Title:     "Padding day event",
		StartTime: day.Add(9 * time.Hour),
		EndTime:   day.Add(10 * time.Hour),
		Color:     "#4599df",
	}}

	months := yearAt(events, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), day)

	cell := findMiniDay(t, months[0], day)
	assert.False(t, cell.InMonth)
	assert.Empty(t, cell.Dots)
	assert.False(t, cell.IsToday)
}

func TestYear_TodayOnlyInMonth(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	months := yearAt(nil, now, now)

	cell := findMiniDay(t, months[0], now)
	assert.True(t, cell.IsToday)
}

func TestMiniCalendar_Flags(t *testing.T) {
	selected := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	mc := miniCalendarAt(selected, now)

	assert.Equal(t, "January 2024", mc.Title)
	require.NotEmpty(t, mc.Weeks)

	var sawToday, sawSelected bool
	for _, week := range mc.Weeks {
		require.Len(t, week, 7)
		for _, d := range week {
			if d.IsToday {
				sawToday = true
				assert.Equal(t, 15, d.Date.Day())
			}
			if d.IsSelected {
				sawSelected = true
				assert.Equal(t, 20, d.Date.Day())
			}
		}
	}
	assert.True(t, sawToday)
	assert.True(t, sawSelected)
}

func findMiniDay(t *testing.T, mm MiniMonth, day time.Time) MiniDay {
	t.Helper()
	for _, week := range mm.Weeks {
		for _, d := range week {
			if SameDay(d.Date, day) {
				return d
			}
		}
	}
	t.Fatalf("no mini day for %v", day)
	return MiniDay{}
}
