package view

import (
	"strconv"
	"time"

	"webcal/internal/models"
)

// MaxEventsPerCell caps how many events a month cell lists before folding
// the rest into a "+N more" indicator.
const MaxEventsPerCell = 3

type DayCell struct {
	Date time.Time

	// InMonth is false for the dimmed overflow days of adjacent months.
	InMonth bool

	// IsToday and IsSelected are independent and may both be set.
	IsToday    bool
	IsSelected bool

	// Label is the day number, or "Jan 1" style on the first of a month.
	Label string

	// Events holds at most MaxEventsPerCell events; More counts the rest.
	Events []models.Event
	More   int
}

type MonthGrid struct {
	Anchor time.Time
	Weeks  [][]DayCell

	// RowHeight divides the viewport evenly so the grid fills it without
	// scrolling on its own.
	RowHeight float64
}

// Month builds the month grid for the anchor date: whole weeks from the
// first Sunday on or before the 1st through the last Saturday on or after
// the month's end, so adjacent-month days pad the edges.
func Month(events []models.Event, anchor time.Time, viewportHeight float64) MonthGrid {
	return monthAt(events, anchor, viewportHeight, time.Now())
}

func monthAt(events []models.Event, anchor time.Time, viewportHeight float64, now time.Time) MonthGrid {
	monthStart := StartOfMonth(anchor)
	gridStart := StartOfWeek(monthStart)
	gridEnd := StartOfWeek(EndOfMonth(anchor)).AddDate(0, 0, 6)

	numDays := int(gridEnd.Sub(gridStart).Hours()/24+0.5) + 1
	numWeeks := numDays / 7

	grid := MonthGrid{
		Anchor:    anchor,
		RowHeight: viewportHeight / float64(numWeeks),
	}

	day := gridStart
	for w := 0; w < numWeeks; w++ {
		row := make([]DayCell, 7)
		for i := range row {
			row[i] = cellFor(events, day, monthStart, anchor, now)
			day = day.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, row)
	}
	return grid
}

func cellFor(events []models.Event, day, monthStart, selected, now time.Time) DayCell {
	dayEvents := eventsOn(events, day)

	cell := DayCell{
		Date:       day,
		InMonth:    day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
		IsToday:    SameDay(day, now.In(day.Location())),
		IsSelected: SameDay(day, selected),
		Label:      strconv.Itoa(day.Day()),
	}
	if day.Day() == 1 {
		cell.Label = day.Format("Jan 2")
	}

	if len(dayEvents) > MaxEventsPerCell {
		cell.Events = dayEvents[:MaxEventsPerCell]
		cell.More = len(dayEvents) - MaxEventsPerCell
	} else {
		cell.Events = dayEvents
	}
	return cell
}

// WeekdayHeader is the column header row of the month grid.
var WeekdayHeader = []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
