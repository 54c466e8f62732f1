package ui

import "time"

// The month view turns a large scroll gesture into a page turn:
// idle -> fading-out -> advancing -> fading-in -> idle. Modelling it as an
// explicit machine keeps the transition testable without scroll hardware;
// the renderer drives the phases with timers and calls TurnMonth during
// the advancing step.

type PagePhase int

const (
	PhaseIdle PagePhase = iota
	PhaseFadingOut
	PhaseAdvancing
	PhaseFadingIn
)

const (
	// ScrollThreshold is the scroll delta, in pixels, that triggers a
	// page turn.
	ScrollThreshold = 100

	// FadeDuration is how long each fade phase lasts.
	FadeDuration = 200 * time.Millisecond

	// SettleDuration is the pause between advancing the month and fading
	// back in, during which the scroll position resets.
	SettleDuration = 50 * time.Millisecond
)

type PageTurn struct {
	phase         PagePhase
	direction     int
	lastScrollTop float64
}

func (p *PageTurn) Phase() PagePhase { return p.phase }

// Direction is +1 for advancing to the next month, -1 for the previous.
func (p *PageTurn) Direction() int { return p.direction }

// Scroll feeds a new scroll offset into the machine. It reports whether
// this gesture crossed the threshold and started a page turn. Gestures
// arriving while a turn is in progress only update the tracked offset.
func (p *PageTurn) Scroll(top float64) bool {
	delta := top - p.lastScrollTop
	p.lastScrollTop = top

	if p.phase != PhaseIdle {
		return false
	}
	if delta > ScrollThreshold {
		p.phase = PhaseFadingOut
		p.direction = 1
		return true
	}
	if delta < -ScrollThreshold {
		p.phase = PhaseFadingOut
		p.direction = -1
		return true
	}
	return false
}

// FadeOutDone moves fading-out to advancing; the caller turns the month.
func (p *PageTurn) FadeOutDone() {
	if p.phase == PhaseFadingOut {
		p.phase = PhaseAdvancing
	}
}

// Advanced moves advancing to fading-in and resets the tracked scroll
// position, mirroring the renderer snapping its container back to the top.
func (p *PageTurn) Advanced() {
	if p.phase == PhaseAdvancing {
		p.phase = PhaseFadingIn
		p.lastScrollTop = 0
	}
}

// FadeInDone returns the machine to idle.
func (p *PageTurn) FadeInDone() {
	if p.phase == PhaseFadingIn {
		p.phase = PhaseIdle
		p.direction = 0
	}
}
