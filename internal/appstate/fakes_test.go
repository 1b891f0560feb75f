package appstate

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/lifecycle"
)

type fakeBuffer struct {
	img      *image.RGBA
	released bool
}

func (b *fakeBuffer) Release()                { b.released = true }
func (b *fakeBuffer) Size() image.Point       { return b.img.Rect.Size() }
func (b *fakeBuffer) Bounds() image.Rectangle { return b.img.Rect }
func (b *fakeBuffer) RGBA() *image.RGBA       { return b.img }

// fakeWindow replays a script of events. Events passed to Send are queued
// behind it. An empty queue reads as the window being closed.
type fakeWindow struct {
	mu        sync.Mutex
	queue     []interface{}
	sent      []interface{}
	uploads   []*image.RGBA
	publishes int
	released  bool
}

func (w *fakeWindow) NextEvent() interface{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	}
	e := w.queue[0]
	w.queue = w.queue[1:]
	return e
}

func (w *fakeWindow) Send(e interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, e)
	w.sent = append(w.sent, e)
}

func (w *fakeWindow) Upload(dp image.Point, src screen.Buffer, sr image.Rectangle) {
	clone := image.NewRGBA(image.Rectangle{Max: sr.Size()})
	draw.Draw(clone, clone.Bounds(), src.RGBA(), sr.Min, draw.Src)
	w.mu.Lock()
	w.uploads = append(w.uploads, clone)
	w.mu.Unlock()
}

func (w *fakeWindow) Publish() screen.PublishResult {
	w.mu.Lock()
	w.publishes++
	w.mu.Unlock()
	return screen.PublishResult{}
}

func (w *fakeWindow) Release() {
	w.mu.Lock()
	w.released = true
	w.mu.Unlock()
}

func (w *fakeWindow) sentCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.sent)
}

func (w *fakeWindow) lastUpload() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.uploads) == 0 {
		return nil
	}
	return w.uploads[len(w.uploads)-1]
}

// fakeScreen hands out windows with one script per window, in creation
// order.
type fakeScreen struct {
	scripts  [][]interface{}
	windows  []*fakeWindow
	opts     []screen.NewWindowOptions
	failNext bool
}

func (s *fakeScreen) NewWindow(opts *screen.NewWindowOptions) (Window, error) {
	if s.failNext {
		return nil, errors.New("no display")
	}
	w := &fakeWindow{}
	if i := len(s.windows); i < len(s.scripts) {
		w.queue = append(w.queue, s.scripts[i]...)
	}
	s.windows = append(s.windows, w)
	s.opts = append(s.opts, *opts)
	return w, nil
}

func (s *fakeScreen) NewBuffer(size image.Point) (screen.Buffer, error) {
	return &fakeBuffer{img: image.NewRGBA(image.Rectangle{Max: size})}, nil
}

// fakeBackend returns solid images trimmed to its bounds, like the real
// backends. Captures fail while failing is set.
type fakeBackend struct {
	mu        sync.Mutex
	bounds    image.Rectangle
	boundsErr error
	fill      color.RGBA
	failing   bool
	captures  []image.Rectangle
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bounds: image.Rect(0, 0, 800, 600), fill: color.RGBA{255, 255, 255, 255}}
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) Bounds() (image.Rectangle, error) {
	return f.bounds, f.boundsErr
}

func (f *fakeBackend) Capture(r image.Rectangle) (*image.RGBA, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.captures = append(f.captures, r)
	if f.failing {
		return nil, errors.New("capture failed")
	}
	r = r.Intersect(f.bounds)
	if r.Empty() {
		return nil, errors.New("region outside display")
	}
	img := image.NewRGBA(image.Rectangle{Max: r.Size()})
	draw.Draw(img, img.Bounds(), image.NewUniform(f.fill), image.Point{}, draw.Src)
	return img, nil
}

func (f *fakeBackend) Close() error { return nil }

func (f *fakeBackend) setFailing(v bool) {
	f.mu.Lock()
	f.failing = v
	f.mu.Unlock()
}

func (f *fakeBackend) setFill(c color.RGBA) {
	f.mu.Lock()
	f.fill = c
	f.mu.Unlock()
}
