// Package ui holds the calendar application state and the logic behind it:
// the event list and how mutations reconcile into it, view selection and
// date navigation, the edit form, and the month page-turn machine. It is
// deliberately free of rendering concerns.
package ui

import (
	"context"
	"time"

	"webcal/internal/client"
	"webcal/internal/models"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewYear  ViewMode = "year"
)

// EventAPI is the slice of the store client the app state needs.
// *client.Client satisfies it.
type EventAPI interface {
	GetEvents(ctx context.Context, rng *client.Range) ([]models.Event, error)
	CreateEvent(ctx context.Context, in *client.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, in *client.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// App is the single-session application state. All methods run on the
// caller's goroutine; responses are applied in whatever order they
// resolve, with no out-of-order protection.
type App struct {
	api EventAPI

	Events        []models.Event
	SelectedDate  time.Time
	View          ViewMode
	ShowModal     bool
	SelectedEvent *models.Event
	Loading       bool

	// Notice is the last blocking notification; empty when there is none.
	Notice string

	now func() time.Time
}

func NewApp(api EventAPI) *App {
	a := &App{api: api, View: ViewMonth, now: time.Now}
	a.SelectedDate = a.now()
	return a
}

// Load fetches the full event list once. On failure the list stays empty
// and a blocking notice is raised; there is no retry.
func (a *App) Load(ctx context.Context) {
	a.Loading = true
	defer func() { a.Loading = false }()

	events, err := a.api.GetEvents(ctx, nil)
	if err != nil {
		a.Events = nil
		a.Notice = "Failed to load events"
		return
	}
	a.Events = events
}

// SetView switches the active view. Purely local; no fetch.
func (a *App) SetView(v ViewMode) { a.View = v }

// Previous moves the anchor back one step of the active view's
// granularity. The year view snaps to January 1st.
func (a *App) Previous() {
	switch a.View {
	case ViewDay:
		a.SelectedDate = a.SelectedDate.AddDate(0, 0, -1)
	case ViewWeek:
		a.SelectedDate = a.SelectedDate.AddDate(0, 0, -7)
	case ViewYear:
		a.SelectedDate = time.Date(a.SelectedDate.Year()-1, time.January, 1, 0, 0, 0, 0, a.SelectedDate.Location())
	default:
		a.SelectedDate = addMonths(a.SelectedDate, -1)
	}
}

// Next moves the anchor forward one step of the active view's granularity.
func (a *App) Next() {
	switch a.View {
	case ViewDay:
		a.SelectedDate = a.SelectedDate.AddDate(0, 0, 1)
	case ViewWeek:
		a.SelectedDate = a.SelectedDate.AddDate(0, 0, 7)
	case ViewYear:
		a.SelectedDate = time.Date(a.SelectedDate.Year()+1, time.January, 1, 0, 0, 0, 0, a.SelectedDate.Location())
	default:
		a.SelectedDate = addMonths(a.SelectedDate, 1)
	}
}

func (a *App) Today() { a.SelectedDate = a.now() }

// TurnMonth jumps the anchor to the first of the adjacent month; the month
// page-turn machine calls this during its advancing phase.
func (a *App) TurnMonth(direction int) {
	y, m, _ := a.SelectedDate.Date()
	a.SelectedDate = time.Date(y, m+time.Month(direction), 1, 0, 0, 0, 0, a.SelectedDate.Location())
}

// Title returns the header heading for the active view.
func (a *App) Title() string {
	switch a.View {
	case ViewWeek:
		return startOfWeek(a.SelectedDate).Format("Jan 2, 2006")
	case ViewDay:
		return a.SelectedDate.Format("Monday, Jan 2, 2006")
	case ViewYear:
		return a.SelectedDate.Format("2006")
	default:
		return a.SelectedDate.Format("January 2006")
	}
}

// ClickDate handles a click on empty grid space: select the date and open
// the creation form pre-filled with it.
func (a *App) ClickDate(date time.Time) {
	a.SelectedDate = date
	a.SelectedEvent = nil
	a.ShowModal = true
}

// ClickEvent opens an existing event for editing. Callers must not also
// fire ClickDate for the underlying cell.
func (a *App) ClickEvent(e models.Event) {
	a.SelectedEvent = &e
	a.ShowModal = true
}

func (a *App) CloseModal() {
	a.ShowModal = false
	a.SelectedEvent = nil
}

// Form opens the edit form for the current modal target: the selected
// event if one is set, otherwise a creation form for the selected date.
func (a *App) Form() *Form {
	if a.SelectedEvent != nil {
		return NewEditForm(*a.SelectedEvent)
	}
	return NewCreateForm(a.SelectedDate)
}

// Save submits the form's record, creating or updating depending on
// whether an existing event was being edited. The modal closes regardless
// of the outcome; failures only raise a blocking notice.
func (a *App) Save(ctx context.Context, in *client.EventInput) {
	defer a.CloseModal()

	if a.SelectedEvent != nil {
		updated, err := a.api.UpdateEvent(ctx, a.SelectedEvent.ID.Hex(), in)
		if err != nil {
			a.Notice = "Failed to update event"
			return
		}
		a.Events = ApplyMutation(a.Events, *updated, OpUpdate)
		return
	}

	created, err := a.api.CreateEvent(ctx, in)
	if err != nil {
		a.Notice = "Failed to create event"
		return
	}
	a.Events = ApplyMutation(a.Events, *created, OpCreate)
}

// Delete removes the event being edited. Confirmation is the form's job.
func (a *App) Delete(ctx context.Context) {
	if a.SelectedEvent == nil {
		return
	}
	defer a.CloseModal()

	target := *a.SelectedEvent
	if err := a.api.DeleteEvent(ctx, target.ID.Hex()); err != nil {
		a.Notice = "Failed to delete event"
		return
	}
	a.Events = ApplyMutation(a.Events, target, OpDelete)
}

// DismissNotice clears the blocking notification.
func (a *App) DismissNotice() { a.Notice = "" }

// addMonths shifts by whole months, clamping the day so e.g. Jan 31 - 1
// month lands on Dec 31 but Mar 31 - 1 month lands on Feb 28/29.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return first.AddDate(0, 0, d-1)
}

func startOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
