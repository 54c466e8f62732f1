package view

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webcal/internal/models"
)

func eventOn(title string, day time.Time) models.Event {
	return models.Event{
		Title:     title,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
	}
}

func TestMonth_WholeWeeksCoverMonth(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		anchor := time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC)
		grid := monthAt(nil, anchor, 700, anchor)

		cells := 0
		for _, week := range grid.Weeks {
			require.Len(t, week, 7)
			cells += len(week)
		}
		assert.Zero(t, cells%7, "month %v", month)

		first := grid.Weeks[0][0]
		last := grid.Weeks[len(grid.Weeks)-1][6]
		assert.Equal(t, time.Sunday, first.Date.Weekday())
		assert.Equal(t, time.Saturday, last.Date.Weekday())
		assert.False(t, first.Date.After(StartOfMonth(anchor)))
		assert.False(t, last.Date.Before(EndOfMonth(anchor)))
	}
}

func TestMonth_RowHeightFillsViewport(t *testing.T) {
	// March 2024 spans five Sunday-started weeks.
	anchor := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	grid := monthAt(nil, anchor, 700, anchor)

	require.Len(t, grid.Weeks, 5)
	assert.InDelta(t, 140.0, grid.RowHeight, 0.001)
}

func TestMonth_OverflowDaysDimmed(t *testing.T) {
	// June 2024 starts on a Saturday, so the first row is mostly May.
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	grid := monthAt(nil, anchor, 700, anchor)

	firstRow := grid.Weeks[0]
	assert.False(t, firstRow[0].InMonth) // May 26
	assert.True(t, firstRow[6].InMonth)  // Jun 1
}

func TestMonth_FirstOfMonthLabel(t *testing.T) {
	anchor := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	grid := monthAt(nil, anchor, 700, anchor)

	var labels []string
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Date.Day() == 1 || cell.Date.Day() == 2 {
				labels = append(labels, cell.Label)
			}
		}
	}
	assert.Contains(t, labels, "Jun 1")
	assert.Contains(t, labels, "2")
}

func TestMonth_EventCapAndMore(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	var events []models.Event
	for i := 0; i < 5; i++ {
		events = append(events, eventOn(fmt.Sprintf("Event %d", i), day))
	}

	grid := monthAt(events, day, 700, day)

	cell := findCell(t, grid, day)
	assert.Len(t, cell.Events, MaxEventsPerCell)
	assert.Equal(t, 2, cell.More)
	// The cap keeps the store's ordering from the front.
	assert.Equal(t, "Event 0", cell.Events[0].Title)
}

func TestMonth_TodayAndSelectedIndependent(t *testing.T) {
	selected := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	grid := monthAt(nil, selected, 700, now)

	today := findCell(t, grid, now)
	assert.True(t, today.IsToday)
	assert.False(t, today.IsSelected)

	sel := findCell(t, grid, selected)
	assert.False(t, sel.IsToday)
	assert.True(t, sel.IsSelected)
}

func TestMonth_TodayAndSelectedCanOverlap(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	grid := monthAt(nil, day, 700, day.Add(14*time.Hour))

	cell := findCell(t, grid, day)
	assert.True(t, cell.IsToday)
	assert.True(t, cell.IsSelected)
}

func TestMonth_DoesNotMutateEvents(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		eventOn("B", day),
		eventOn("A", day),
	}

	_ = monthAt(events, day, 700, day)

	assert.Equal(t, "B", events[0].Title)
	assert.Equal(t, "A", events[1].Title)
}

func findCell(t *testing.T, grid MonthGrid, day time.Time) DayCell {
	t.Helper()
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if SameDay(cell.Date, day) {
				return cell
			}
		}
	}
	t.Fatalf("no cell for %v", day)
	return DayCell{}
}
