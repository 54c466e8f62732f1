package view

import (
	"fmt"
	"time"

	"webcal/internal/models"
)

const (
	// PixelsPerHour fixes the vertical scale of the day and week timelines.
	PixelsPerHour = 60

	// DayHeight is the full 24-hour column height.
	DayHeight = 24 * PixelsPerHour

	// MinEventHeight keeps very short events clickable.
	MinEventHeight = 30
)

// EventBlock places one event on a 24-hour column.
type EventBlock struct {
	Event models.Event

	// Top and Height are pixel offsets from midnight.
	Top    float64
	Height float64

	AllDay    bool
	TimeLabel string
}

// Timeline lays out the events of the anchor's calendar day on a vertical
// 24-hour column. Events keep the order the store returned them in.
func Timeline(events []models.Event, anchor time.Time) []EventBlock {
	var blocks []EventBlock
	for _, e := range eventsOn(events, anchor) {
		blocks = append(blocks, blockFor(e, anchor.Location()))
	}
	return blocks
}

func blockFor(e models.Event, loc *time.Location) EventBlock {
	if e.AllDay {
		return EventBlock{Event: e, Top: 0, Height: DayHeight, AllDay: true, TimeLabel: "All day"}
	}

	start := e.StartTime.In(loc)
	end := e.EndTime.In(loc)

	top := (float64(start.Hour()) + float64(start.Minute())/60) * PixelsPerHour

	// Duration from wall-clock time only; an end on a later date does not
	// stretch the block past what its time-of-day says.
	minutes := (float64(end.Hour())+float64(end.Minute())/60)*60 -
		(float64(start.Hour())+float64(start.Minute())/60)*60
	height := minutes
	if height < MinEventHeight {
		height = MinEventHeight
	}

	return EventBlock{
		Event:     e,
		Top:       top,
		Height:    height,
		TimeLabel: ClockLabel(start) + " - " + ClockLabel(end),
	}
}

// HourLabel renders the gutter label for an hour row: "12 AM", "3 PM", ...
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// ClockLabel renders a time as "10:00 AM".
func ClockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}

// SlotDate returns the instant a click on the given hour row stands for,
// used to pre-fill the creation form.
func SlotDate(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}
