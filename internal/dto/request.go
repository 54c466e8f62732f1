package dto

import (
	"errors"
	"fmt"
	"time"

	"webcal/internal/models"
)

// EventRequest is the wire shape for create/update. Clients send the time
// and flag fields in either snake_case or camelCase; both are accepted and
// resolved by Normalize. Snake_case wins when both are present.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`

	StartTime      string `json:"start_time"`
	StartTimeCamel string `json:"startTime"`
	EndTime        string `json:"end_time"`
	EndTimeCamel   string `json:"endTime"`

	AllDay      *bool `json:"all_day"`
	AllDayCamel *bool `json:"allDay"`
}

// Normalize resolves the dual naming, parses instants, and applies
// defaults, producing the single canonical event shape. The returned event
// carries no ID and no timestamps; those are owned by the store.
func (r *EventRequest) Normalize() (*models.Event, error) {
	if r.Title == "" {
		return nil, errors.New("title is required")
	}

	start, err := parseInstant(firstNonEmpty(r.StartTime, r.StartTimeCamel), "start_time")
	if err != nil {
		return nil, err
	}
	end, err := parseInstant(firstNonEmpty(r.EndTime, r.EndTimeCamel), "end_time")
	if err != nil {
		return nil, err
	}

	allDay := false
	if r.AllDay != nil {
		allDay = *r.AllDay
	} else if r.AllDayCamel != nil {
		allDay = *r.AllDayCamel
	}

	color := r.Color
	if color == "" {
		color = models.DefaultColor
	}

	return &models.Event{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   start,
		EndTime:     end,
		AllDay:      allDay,
		Color:       color,
	}, nil
}

func parseInstant(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s is not a valid instant: %q", field, raw)
	}
	return t.UTC(), nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
