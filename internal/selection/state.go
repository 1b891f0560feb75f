package selection

import (
	"image"
	"sync"
)

// Phase describes where a State is in its single drag.
type Phase int

const (
	// PhaseIdle is the phase before the first pointer press.
	PhaseIdle Phase = iota
	// PhaseSelecting lasts from pointer press to pointer release.
	PhaseSelecting
	// PhaseFinished means the rect was normalized on release.
	PhaseFinished
	// PhaseCancelled means the selection was abandoned.
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelecting:
		return "selecting"
	case PhaseFinished:
		return "finished"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// State is the selection shared between the overlay that writes it and the
// magnifier that reads it afterwards. The overlay is the only writer; the
// magnifier only ever sees the copy returned by Snapshot.
type State struct {
	mu    sync.Mutex
	rect  Rect
	phase Phase
}

// NewState returns an idle selection.
func NewState() *State {
	return &State{}
}

// Begin starts a drag at p. Both corners are placed on p.
func (s *State) Begin(p image.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseFinished || s.phase == PhaseCancelled {
		return
	}
	s.rect = FromPoints(p, p)
	s.phase = PhaseSelecting
}

// Drag moves the far corner to p. It returns true when the rect changed and
// the preview needs repainting.
func (s *State) Drag(p image.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelecting {
		return false
	}
	if s.rect.Right == p.X && s.rect.Bottom == p.Y {
		return false
	}
	s.rect.Right = p.X
	s.rect.Bottom = p.Y
	return true
}

// Finish ends the drag and normalizes the rect. It returns the normalized
// rect and false if no drag was in progress.
func (s *State) Finish() (Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSelecting {
		return s.rect, false
	}
	s.rect = s.rect.Normalize()
	s.phase = PhaseFinished
	return s.rect, true
}

// Cancel abandons the selection. A finished selection stays finished.
func (s *State) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseFinished {
		return
	}
	s.phase = PhaseCancelled
}

// Selecting reports whether a drag is in progress.
func (s *State) Selecting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseSelecting
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Rect returns the rect as it currently stands, possibly inverted.
func (s *State) Rect() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rect
}

// Snapshot returns the finalized rect. ok is false unless the drag finished
// and the rect exceeds min on both axes.
func (s *State) Snapshot(min int) (r Rect, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFinished {
		return Rect{}, false
	}
	return s.rect, s.rect.Accepted(min)
}
