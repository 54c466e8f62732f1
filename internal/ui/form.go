package ui

import (
	"errors"
	"fmt"
	"time"

	"webcal/internal/client"
	"webcal/internal/models"
)

// Palette is the fixed set of color swatches the form offers.
var Palette = []string{
	"#4599df", "#c3291c", "#D88277", "#e25d33", "#832DA4",
	"#616161", "#7C86C6", "#4351AF", "#397E49", "#5EB47E", "#EEC14C",
}

// FormDefaultColor is the swatch a new event starts on.
const FormDefaultColor = "#4599df"

// Form is the state of the event edit modal. One form produces one
// canonical record, for create and update alike.
type Form struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Color       string

	// ShowDescription reveals the description field; it stays hidden
	// until the event has one or the user asks for it.
	ShowDescription bool

	existing *models.Event
}

// NewCreateForm prepares a form for a new event on the given date. A date
// with no time-of-day (a month/year cell click) defaults to 09:00; a
// timed slot click keeps its hour. The end defaults to one hour later.
func NewCreateForm(selected time.Time) *Form {
	start := selected
	if start.Hour() == 0 && start.Minute() == 0 {
		y, m, d := start.Date()
		start = time.Date(y, m, d, 9, 0, 0, 0, start.Location())
	}

	return &Form{
		Start: start,
		End:   start.Add(time.Hour),
		Color: FormDefaultColor,
	}
}

// NewEditForm prepares a form pre-filled from an existing event.
func NewEditForm(e models.Event) *Form {
	color := e.Color
	if color == "" {
		color = FormDefaultColor
	}
	return &Form{
		Title:           e.Title,
		Description:     e.Description,
		Start:           e.StartTime,
		End:             e.EndTime,
		AllDay:          e.AllDay,
		Color:           color,
		ShowDescription: e.Description != "",
		existing:        &e,
	}
}

func (f *Form) IsEdit() bool { return f.existing != nil }

// CanDelete gates the delete action: only an existing event can be
// deleted, and the caller must still confirm.
func (f *Form) CanDelete() bool { return f.existing != nil }

// EventID returns the id of the event being edited, or "".
func (f *Form) EventID() string {
	if f.existing == nil {
		return ""
	}
	return f.existing.ID.Hex()
}

// SetAllDay toggles the flag. The midnight snapping happens at submit
// time, so flipping the toggle back and forth loses nothing until save.
func (f *Form) SetAllDay(on bool) { f.AllDay = on }

// PickStartDate moves the start to a new calendar date, keeping the
// time-of-day and shifting the end to preserve the duration.
func (f *Form) PickStartDate(date time.Time) {
	duration := f.End.Sub(f.Start)

	y, m, d := date.Date()
	f.Start = time.Date(y, m, d, f.Start.Hour(), f.Start.Minute(), 0, 0, f.Start.Location())
	f.End = f.Start.Add(duration)
}

// SetStartClock sets the start time-of-day on the current start date.
func (f *Form) SetStartClock(hour, minute int) {
	y, m, d := f.Start.Date()
	f.Start = time.Date(y, m, d, hour, minute, 0, 0, f.Start.Location())
}

// SetEndClock sets the end time-of-day. An unset end borrows the start's
// date first.
func (f *Form) SetEndClock(hour, minute int) {
	base := f.End
	if base.IsZero() {
		base = f.Start
	}
	y, m, d := base.Date()
	f.End = time.Date(y, m, d, hour, minute, 0, 0, base.Location())
}

// Submit validates the form and builds the canonical record. All-day
// events are snapped to midnight through the following midnight,
// discarding any picked time-of-day. Instants go out in UTC.
func (f *Form) Submit() (*client.EventInput, error) {
	if f.Title == "" {
		return nil, errors.New("Please enter a title")
	}
	if f.Start.IsZero() {
		return nil, errors.New("Invalid start time")
	}
	if f.End.IsZero() {
		return nil, errors.New("Invalid end time")
	}

	start, end := f.Start, f.End
	if f.AllDay {
		y, m, d := start.Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, start.Location())
		end = start.AddDate(0, 0, 1)
	}

	return &client.EventInput{
		Title:       f.Title,
		Description: f.Description,
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		AllDay:      f.AllDay,
		Color:       f.Color,
	}, nil
}

// ClockOption is one entry of the 15-minute time dropdown.
type ClockOption struct {
	Label  string
	Hour   int
	Minute int
}

// TimeOptions lists the full day in 15-minute steps: "12:00am" ... "11:45pm".
func TimeOptions() []ClockOption {
	opts := make([]ClockOption, 0, 24*4)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 15 {
			ampm := "am"
			display := hour
			switch {
			case hour == 0:
				display = 12
			case hour == 12:
				ampm = "pm"
			case hour > 12:
				display = hour - 12
				ampm = "pm"
			}
			opts = append(opts, ClockOption{
				Label:  fmt.Sprintf("%d:%02d%s", display, minute, ampm),
				Hour:   hour,
				Minute: minute,
			})
		}
	}
	return opts
}
