package appstate

import (
	"image"
	"log"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// Window is the part of screen.Window the handlers use.
type Window interface {
	NextEvent() interface{}
	Send(event interface{})
	Upload(dp image.Point, src screen.Buffer, sr image.Rectangle)
	Publish() screen.PublishResult
	Release()
}

// Screen creates windows and pixel buffers.
type Screen interface {
	NewWindow(opts *screen.NewWindowOptions) (Window, error)
	NewBuffer(size image.Point) (screen.Buffer, error)
}

type shinyScreen struct {
	s screen.Screen
}

func (s shinyScreen) NewWindow(opts *screen.NewWindowOptions) (Window, error) {
	return s.s.NewWindow(opts)
}

func (s shinyScreen) NewBuffer(size image.Point) (screen.Buffer, error) {
	return s.s.NewBuffer(size)
}

// Status tells the event loop whether to keep dispatching.
type Status int

const (
	Continue Status = iota
	Stop
)

// Handler is one window role. All methods run on the event loop goroutine.
type Handler interface {
	Key(key.Event) Status
	Mouse(mouse.Event) Status
	Paint()
	Tick()
	Resize(size.Event)
	// Close runs exactly once, after the last event, before the window is
	// released.
	Close()
}

// tickEvent is posted by a magnifier's ticker goroutine.
type tickEvent struct{}

// runWindow dispatches w's events to h until h asks to stop or the window
// dies.
func runWindow(w Window, h Handler) {
	defer w.Release()
	defer h.Close()
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case key.Event:
			if h.Key(e) == Stop {
				return
			}
		case mouse.Event:
			if h.Mouse(e) == Stop {
				return
			}
		case size.Event:
			h.Resize(e)
		case paint.Event:
			h.Paint()
		case tickEvent:
			h.Tick()
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func isEscape(e key.Event) bool {
	return e.Code == key.CodeEscape && e.Direction != key.DirRelease
}

// isCtrl matches Ctrl+r (either case) on press.
func isCtrl(e key.Event, r rune, code key.Code) bool {
	if e.Direction == key.DirRelease || e.Modifiers&key.ModControl == 0 {
		return false
	}
	return e.Code == code || e.Rune == r || e.Rune == r-'a'+'A'
}
