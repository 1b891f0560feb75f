package appstate

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shineyzoom/internal/capture"
	"github.com/example/shineyzoom/internal/notify"
	"github.com/example/shineyzoom/internal/render"
	"github.com/example/shineyzoom/internal/selection"
)

// OutputSize is the magnifier client size for a selection: each side is
// multiplied by zoom and truncated, never below one pixel.
func OutputSize(r selection.Rect, zoom float64) image.Point {
	w := int(math.Floor(float64(r.Width()) * zoom))
	h := int(math.Floor(float64(r.Height()) * zoom))
	return image.Pt(max(w, 1), max(h, 1))
}

// Title is the magnifier window title.
func Title(r selection.Rect) string {
	o := r.Origin()
	return fmt.Sprintf("Live Zoom of (%d, %d) - Size %dx%d", o.X, o.Y, r.Width(), r.Height())
}

// magnifier repaints a live, scaled capture of rect on every tick.
type magnifier struct {
	w       Window
	scr     Screen
	backend capture.Backend
	scaler  render.Scaler
	rect    selection.Rect
	size    image.Point

	frame        *image.RGBA
	failing      bool
	paintPending bool

	stopTicker context.CancelFunc
	tickerDone chan struct{}

	copyImage func(image.Image) error
	notifier  *notify.Notifier
	saveDir   string
	now       func() time.Time
}

func (m *magnifier) start(refresh time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.stopTicker = cancel
	m.tickerDone = make(chan struct{})
	go func() {
		defer close(m.tickerDone)
		t := time.NewTicker(refresh)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				m.w.Send(tickEvent{})
			case <-ctx.Done():
				return
			}
		}
	}()
	m.requestPaint()
}

func (m *magnifier) requestPaint() {
	if m.paintPending {
		return
	}
	m.paintPending = true
	m.w.Send(paint.Event{})
}

func (m *magnifier) Key(e key.Event) Status {
	switch {
	case isEscape(e):
		return Stop
	case isCtrl(e, 'c', key.CodeC):
		m.copyFrame()
	case isCtrl(e, 's', key.CodeS):
		m.saveFrame()
	}
	return Continue
}

func (m *magnifier) Mouse(mouse.Event) Status { return Continue }

func (m *magnifier) Tick() { m.requestPaint() }

func (m *magnifier) Resize(e size.Event) {
	if e.WidthPx > 0 && e.HeightPx > 0 {
		m.size = image.Pt(e.WidthPx, e.HeightPx)
	}
}

// capture refreshes m.frame. On failure the previous frame is kept; only
// the first failure of a streak and the recovery are logged.
func (m *magnifier) capture() {
	img, err := m.backend.Capture(m.rect.Bounds())
	if err != nil {
		if !m.failing {
			log.Printf("capture %v: %v", m.rect, err)
			m.failing = true
		}
		return
	}
	if m.failing {
		log.Printf("capture %v: recovered", m.rect)
		m.failing = false
	}
	m.frame = img
}

func (m *magnifier) Paint() {
	m.paintPending = false
	m.capture()

	b, err := m.scr.NewBuffer(m.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	m.renderInto(b.RGBA())
	m.w.Upload(image.Point{}, b, b.Bounds())
	m.w.Publish()
}

func (m *magnifier) renderInto(dst *image.RGBA) {
	if m.frame == nil {
		draw.Draw(dst, dst.Bounds(), image.Black, image.Point{}, draw.Src)
		return
	}
	m.scaler.Scale(dst, dst.Bounds(), m.frame)
}

// snapshot renders the last frame at the current window size.
func (m *magnifier) snapshot() *image.RGBA {
	if m.frame == nil {
		return nil
	}
	img := image.NewRGBA(image.Rectangle{Max: m.size})
	m.renderInto(img)
	return img
}

func (m *magnifier) copyFrame() {
	img := m.snapshot()
	if img == nil {
		log.Print("copy: no frame captured yet")
		return
	}
	if err := m.copyImage(img); err != nil {
		log.Printf("copy: %v", err)
		return
	}
	log.Print("zoomed frame copied to clipboard")
	m.notifier.Copy(fmt.Sprintf("%dx%d zoom", img.Rect.Dx(), img.Rect.Dy()))
}

func (m *magnifier) saveFrame() {
	img := m.snapshot()
	if img == nil {
		log.Print("save: no frame captured yet")
		return
	}
	dir := m.saveDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("shineyzoom-%s.png", m.now().Format("20060102-150405")))
	out, err := os.Create(path)
	if err != nil {
		log.Printf("save: %v", err)
		return
	}
	if err := png.Encode(out, img); err != nil {
		log.Printf("save: %v", err)
		if cerr := out.Close(); cerr != nil {
			log.Printf("save: closing file: %v", cerr)
		}
		return
	}
	if err := out.Close(); err != nil {
		log.Printf("save: closing file: %v", err)
		return
	}
	log.Printf("saved %s", path)
	m.notifier.Save(path)
}

// Close stops the ticker and waits for it so nothing is sent to the window
// after it is released.
func (m *magnifier) Close() {
	if m.stopTicker != nil {
		m.stopTicker()
		<-m.tickerDone
	}
}
