// Package tracker holds the client-side find-the-targets state machine
// as a pure reducer: an explicit State value advanced by a single Step
// function, so the hit-test logic is testable without any rendering.
package tracker

import "photo-hunt-backend/internal/models"

// Tolerance is the hit-box half-width in displayed pixels. A click
// counts as a hit when it falls inside the 30x30 box centered on the
// target's rescaled position.
const Tolerance = 15.0

// Point is a click position in displayed-image pixel space.
type Point struct {
	X float64
	Y float64
}

// Size is the displayed image size in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Event is an input to Step: either a Click or a SelectTarget.
type Event interface {
	isEvent()
}

// Click records where the player last clicked on the image. It does
// not mutate found-state by itself.
type Click struct {
	At Point
}

// SelectTarget is the player choosing a target name from the menu for
// the most recent click.
type SelectTarget struct {
	Name string
}

func (Click) isEvent()        {}
func (SelectTarget) isEvent() {}

// State is the progress of one play session. Use New to initialize and
// Step to advance; State values are never mutated in place.
type State struct {
	found           map[string]bool
	lastClick       *Point
	completionFired bool
}

// New builds the initial state from a photo's target list, everything
// unfound.
func New(photo *models.Photo) State {
	found := make(map[string]bool, len(photo.Targets))
	for _, t := range photo.Targets {
		found[t.Name] = false
	}
	return State{found: found}
}

// Found reports whether the named target has been found.
func (s State) Found(name string) bool {
	return s.found[name]
}

// Remaining lists the unfound targets in the photo's declared order.
// The selection menu shows exactly these.
func (s State) Remaining(photo *models.Photo) []string {
	var names []string
	for _, t := range photo.Targets {
		if !s.found[t.Name] {
			names = append(names, t.Name)
		}
	}
	return names
}

// Complete reports whether every target has been found.
func (s State) Complete() bool {
	for _, f := range s.found {
		if !f {
			return false
		}
	}
	return true
}

// LastClick returns the most recent click position, or nil before the
// first click.
func (s State) LastClick() *Point {
	return s.lastClick
}

// Step advances the state by one event and reports whether the
// completion event fires now. Completion fires exactly once, on the
// transition to all-targets-found; re-running Step on a completed
// state never fires it again.
func Step(s State, ev Event, photo *models.Photo, display Size) (State, bool) {
	switch e := ev.(type) {
	case Click:
		at := e.At
		s.lastClick = &at
		return s, false

	case SelectTarget:
		if s.lastClick == nil || s.found[e.Name] {
			return s, false
		}
		target := photo.Target(e.Name)
		if target == nil {
			return s, false
		}
		if !Hit(*target, photo, display, *s.lastClick) {
			return s, false
		}

		found := make(map[string]bool, len(s.found))
		for k, v := range s.found {
			found[k] = v
		}
		found[e.Name] = true
		s.found = found

		if s.Complete() && !s.completionFired {
			s.completionFired = true
			return s, true
		}
		return s, false
	}

	return s, false
}

// Hit checks a click against a target. The target's canonical position
// is rescaled from original-image space to the displayed size, each
// axis independently, then the click must land strictly within
// Tolerance of it on both axes.
func Hit(target models.Target, photo *models.Photo, display Size, click Point) bool {
	cx := target.Position.X / float64(photo.Width) * display.Width
	cy := target.Position.Y / float64(photo.Height) * display.Height

	return click.X-Tolerance < cx && cx < click.X+Tolerance &&
		click.Y-Tolerance < cy && cy < click.Y+Tolerance
}
