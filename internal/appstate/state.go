// Package appstate wires the selection overlay and the magnifier window
// around one shared selection state.
package appstate

import (
	"fmt"
	"image"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"

	"github.com/example/shineyzoom/internal/capture"
	"github.com/example/shineyzoom/internal/clipboard"
	"github.com/example/shineyzoom/internal/config"
	"github.com/example/shineyzoom/internal/notify"
	"github.com/example/shineyzoom/internal/render"
	"github.com/example/shineyzoom/internal/selection"
	"github.com/example/shineyzoom/internal/theme"
)

// Outcome reports how a run ended.
type Outcome int

const (
	// OutcomeCancelled means Escape or a window close ended the selector.
	OutcomeCancelled Outcome = iota
	// OutcomeTooSmall means the released selection was below the minimum
	// on at least one axis.
	OutcomeTooSmall
	// OutcomeMagnified means a magnifier ran and was closed.
	OutcomeMagnified
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeTooSmall:
		return "selection too small"
	case OutcomeMagnified:
		return "magnified"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// AppState holds everything both windows share.
type AppState struct {
	Config   *config.Config
	Backend  capture.Backend
	Theme    *theme.Theme
	Scaler   render.Scaler
	Notifier *notify.Notifier
	State    *selection.State

	copyImage func(image.Image) error
	now       func() time.Time
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithConfig sets the configuration. The default is config.New().
func WithConfig(cfg *config.Config) Option { return func(a *AppState) { a.Config = cfg } }

// WithTheme sets the overlay colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithScaler sets the magnifier's resampler.
func WithScaler(s render.Scaler) Option { return func(a *AppState) { a.Scaler = s } }

// WithNotifier sets the desktop notifier for copy and save.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(image.Image) error) Option {
	return func(a *AppState) { a.copyImage = fn }
}

// New creates the application state around a capture backend.
func New(backend capture.Backend, opts ...Option) *AppState {
	a := &AppState{
		Backend:   backend,
		State:     selection.NewState(),
		copyImage: clipboard.WriteImage,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Scaler == nil {
		a.Scaler, _ = render.LookupScaler(render.DefaultScaler)
	}
	return a
}

// Run executes both windows on shiny's driver and returns once the last
// one closes.
func (a *AppState) Run() (Outcome, error) {
	var (
		outcome Outcome
		err     error
	)
	driver.Main(func(s screen.Screen) {
		outcome, err = a.Main(shinyScreen{s})
	})
	return outcome, err
}

// Main shows the selector and, for an accepted selection, the magnifier.
// Errors are only returned when a window cannot be set up.
func (a *AppState) Main(s Screen) (Outcome, error) {
	display, err := a.Backend.Bounds()
	if err != nil {
		return OutcomeCancelled, fmt.Errorf("display bounds: %w", err)
	}
	if display.Empty() {
		return OutcomeCancelled, fmt.Errorf("display bounds are empty")
	}

	var desktop image.Image
	if img, err := a.Backend.Capture(display); err != nil {
		log.Printf("overlay backdrop: %v", err)
	} else {
		desktop = img
	}

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  display.Dx(),
		Height: display.Dy(),
		Title:  selectorWindow,
	})
	if err != nil {
		return OutcomeCancelled, fmt.Errorf("selector window: %w", err)
	}
	sel := newSelector(w, s, a.State, a.Theme, display, desktop, uint8(a.Config.OverlayAlpha))
	runWindow(w, sel)

	if a.State.Phase() != selection.PhaseFinished {
		return OutcomeCancelled, nil
	}
	r, ok := a.State.Snapshot(a.Config.MinSelection)
	if !ok {
		log.Printf("selection %v is too small, exiting", a.State.Rect())
		return OutcomeTooSmall, nil
	}

	if err := a.magnify(s, r); err != nil {
		return OutcomeCancelled, fmt.Errorf("magnifier window: %w", err)
	}
	return OutcomeMagnified, nil
}

func (a *AppState) magnify(s Screen, r selection.Rect) error {
	out := OutputSize(r, a.Config.Zoom)
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  out.X,
		Height: out.Y,
		Title:  Title(r),
	})
	if err != nil {
		return err
	}
	m := &magnifier{
		w:         w,
		scr:       s,
		backend:   a.Backend,
		scaler:    a.Scaler,
		rect:      r,
		size:      out,
		copyImage: a.copyImage,
		notifier:  a.Notifier,
		saveDir:   a.Config.SaveDir,
		now:       a.now,
	}
	m.start(a.Config.Refresh)
	runWindow(w, m)
	return nil
}
