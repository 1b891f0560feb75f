package selection

import (
	"image"
	"sort"
	"testing"
)

func TestNormalizeAllDragDirections(t *testing.T) {
	want := Rect{Left: 100, Top: 100, Right: 300, Bottom: 250}
	cases := map[string]Rect{
		"down-right": {Left: 100, Top: 100, Right: 300, Bottom: 250},
		"down-left":  {Left: 300, Top: 100, Right: 100, Bottom: 250},
		"up-right":   {Left: 100, Top: 250, Right: 300, Bottom: 100},
		"up-left":    {Left: 300, Top: 250, Right: 100, Bottom: 100},
	}
	for name, in := range cases {
		got := in.Normalize()
		if got != want {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
		if got.Left > got.Right || got.Top > got.Bottom {
			t.Fatalf("%s: not normalized: %v", name, got)
		}
		if !sameValues(in, got) {
			t.Fatalf("%s: coordinate set changed: %v -> %v", name, in, got)
		}
	}
}

func TestNormalizeSwapsAxesIndependently(t *testing.T) {
	in := Rect{Left: 40, Top: 5, Right: 10, Bottom: 90}
	got := in.Normalize()
	if got.Left != 10 || got.Right != 40 {
		t.Fatalf("horizontal swap: got %v", got)
	}
	if got.Top != 5 || got.Bottom != 90 {
		t.Fatalf("vertical pair should be untouched: got %v", got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	r := Rect{Left: -3, Top: 7, Right: -20, Bottom: -1}
	once := r.Normalize()
	if twice := once.Normalize(); twice != once {
		t.Fatalf("normalize not idempotent: %v vs %v", once, twice)
	}
}

func TestAccepted(t *testing.T) {
	cases := []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 0, 0}, false},
		{Rect{10, 10, 13, 13}, false},
		{Rect{10, 10, 15, 40}, false},
		{Rect{10, 10, 40, 15}, false},
		{Rect{10, 10, 16, 16}, true},
		{Rect{100, 100, 300, 250}, true},
		{Rect{300, 250, 100, 100}, true},
	}
	for _, tc := range cases {
		if got := tc.r.Accepted(MinSelection); got != tc.want {
			t.Fatalf("Accepted(%v) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestSizeAndBounds(t *testing.T) {
	r := Rect{Left: 300, Top: 250, Right: 100, Bottom: 100}
	if r.Width() != 200 || r.Height() != 150 {
		t.Fatalf("size: got %dx%d", r.Width(), r.Height())
	}
	if got := r.Origin(); got != image.Pt(100, 100) {
		t.Fatalf("origin: got %v", got)
	}
	if got := r.Bounds(); got != image.Rect(100, 100, 300, 250) {
		t.Fatalf("bounds: got %v", got)
	}
}

func sameValues(a, b Rect) bool {
	av := []int{a.Left, a.Top, a.Right, a.Bottom}
	bv := []int{b.Left, b.Top, b.Right, b.Bottom}
	sort.Ints(av)
	sort.Ints(bv)
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}
