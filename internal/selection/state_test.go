package selection

import (
	"image"
	"testing"
)

func TestSelectingLifecycle(t *testing.T) {
	s := NewState()
	if s.Selecting() {
		t.Fatalf("selecting before first press")
	}

	s.Begin(image.Pt(100, 100))
	if !s.Selecting() {
		t.Fatalf("expected selecting after press")
	}
	if got := s.Rect(); got != (Rect{100, 100, 100, 100}) {
		t.Fatalf("press should place both corners, got %v", got)
	}

	if !s.Drag(image.Pt(200, 180)) {
		t.Fatalf("expected drag to request a repaint")
	}
	if !s.Selecting() {
		t.Fatalf("expected selecting during drag")
	}

	r, ok := s.Finish()
	if !ok {
		t.Fatalf("finish should succeed during a drag")
	}
	if s.Selecting() {
		t.Fatalf("selecting after release")
	}
	if r != (Rect{100, 100, 200, 180}) {
		t.Fatalf("unexpected rect %v", r)
	}
	if s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v", s.Phase())
	}
}

func TestDragIgnoredWhenIdle(t *testing.T) {
	s := NewState()
	if s.Drag(image.Pt(10, 10)) {
		t.Fatalf("drag without press should not repaint")
	}
	if got := s.Rect(); got != (Rect{}) {
		t.Fatalf("rect changed without press: %v", got)
	}
}

func TestDragKeepsLiveRectUnnormalized(t *testing.T) {
	s := NewState()
	s.Begin(image.Pt(300, 250))
	s.Drag(image.Pt(100, 100))
	if got := s.Rect(); got != (Rect{300, 250, 100, 100}) {
		t.Fatalf("live rect should track the pointer, got %v", got)
	}
	if s.Drag(image.Pt(100, 100)) {
		t.Fatalf("unchanged position should not repaint")
	}
	r, _ := s.Finish()
	if r != (Rect{100, 100, 300, 250}) {
		t.Fatalf("finish should normalize, got %v", r)
	}
}

func TestFinishOnlyOnce(t *testing.T) {
	s := NewState()
	s.Begin(image.Pt(1, 1))
	s.Drag(image.Pt(50, 50))
	if _, ok := s.Finish(); !ok {
		t.Fatalf("first finish should succeed")
	}
	if _, ok := s.Finish(); ok {
		t.Fatalf("second finish should be rejected")
	}
	s.Begin(image.Pt(400, 400))
	if s.Selecting() {
		t.Fatalf("a finished selection cannot restart")
	}
}

func TestCancel(t *testing.T) {
	s := NewState()
	s.Begin(image.Pt(10, 10))
	s.Drag(image.Pt(400, 400))
	s.Cancel()
	if s.Selecting() {
		t.Fatalf("selecting after cancel")
	}
	if _, ok := s.Snapshot(MinSelection); ok {
		t.Fatalf("cancelled selection must not be magnified")
	}
	if s.Phase() != PhaseCancelled {
		t.Fatalf("phase = %v", s.Phase())
	}
}

func TestSnapshot(t *testing.T) {
	cases := []struct {
		name     string
		from, to image.Point
		want     bool
	}{
		{"scenario forward", image.Pt(100, 100), image.Pt(300, 250), true},
		{"scenario reverse", image.Pt(300, 250), image.Pt(100, 100), true},
		{"click", image.Pt(50, 50), image.Pt(50, 50), false},
		{"three by three", image.Pt(50, 50), image.Pt(53, 53), false},
		{"exactly min", image.Pt(50, 50), image.Pt(55, 55), false},
		{"thin", image.Pt(50, 50), image.Pt(400, 54), false},
	}
	for _, tc := range cases {
		s := NewState()
		s.Begin(tc.from)
		s.Drag(tc.to)
		s.Finish()
		r, ok := s.Snapshot(MinSelection)
		if ok != tc.want {
			t.Fatalf("%s: accepted = %v, want %v (rect %v)", tc.name, ok, tc.want, r)
		}
		if ok && r != (Rect{100, 100, 300, 250}) {
			t.Fatalf("%s: unexpected rect %v", tc.name, r)
		}
	}
}
