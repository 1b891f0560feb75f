package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/example/shineyzoom/internal/theme"
)

const (
	// DefaultZoom is the magnification applied to both axes.
	DefaultZoom = 2.0
	// DefaultRefresh is the delay between magnifier repaints. Shorter
	// intervals give a smoother view at the cost of more capture work.
	DefaultRefresh = 30 * time.Millisecond
	// DefaultMinSelection matches selection.MinSelection.
	DefaultMinSelection = 5
	// DefaultOverlayAlpha dims the desktop to roughly half brightness.
	DefaultOverlayAlpha = 128
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Backends and Scalers list the accepted names for the backend and scaler keys.
var (
	Backends = []string{"auto", "x11", "portal", "gdi", "generic"}
	Scalers  = []string{"catmullrom", "bilinear", "lanczos"}
)

// Notify holds notification settings. Empty strings keep the notifier's
// built-in wording.
type Notify struct {
	Copy     bool
	Save     bool
	Title    string
	CopyText string
	SaveText string
}

// Config holds the application configuration. It is read once at startup
// and never changes while the windows are open.
type Config struct {
	Zoom         float64
	Refresh      time.Duration
	MinSelection int
	OverlayAlpha int
	Backend      string
	Scaler       string
	Theme        string
	SaveDir      string
	LogFile      string
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Zoom:         DefaultZoom,
		Refresh:      DefaultRefresh,
		MinSelection: DefaultMinSelection,
		OverlayAlpha: DefaultOverlayAlpha,
		Backend:      "auto",
		Scaler:       "catmullrom",
		Themes:       make(map[string]*theme.Theme),
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if c.Zoom <= 0 {
		return fmt.Errorf("%w: zoom must be positive, got %v", ErrInvalid, c.Zoom)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("%w: refresh must be positive, got %v", ErrInvalid, c.Refresh)
	}
	if c.MinSelection < 0 {
		return fmt.Errorf("%w: min_selection must not be negative, got %d", ErrInvalid, c.MinSelection)
	}
	if c.OverlayAlpha < 0 || c.OverlayAlpha > 255 {
		return fmt.Errorf("%w: overlay_alpha must be within 0-255, got %d", ErrInvalid, c.OverlayAlpha)
	}
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if !slices.Contains(Scalers, c.Scaler) {
		return fmt.Errorf("%w: unknown scaler %q", ErrInvalid, c.Scaler)
	}
	return nil
}

// ResolveTheme picks the active theme: config sections first, then the
// theme loader, then the default.
func (c *Config) ResolveTheme(l *theme.Loader) (*theme.Theme, error) {
	if t, ok := c.Themes[c.Theme]; ok {
		return t, nil
	}
	if l == nil {
		l = theme.NewLoader()
	}
	return l.Load(c.Theme)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "zoom = %s\n", strconv.FormatFloat(c.Zoom, 'g', -1, 64))
	fmt.Fprintf(&sb, "refresh = %s\n", c.Refresh)
	fmt.Fprintf(&sb, "min_selection = %d\n", c.MinSelection)
	fmt.Fprintf(&sb, "overlay_alpha = %d\n", c.OverlayAlpha)
	fmt.Fprintf(&sb, "backend = %s\n", c.Backend)
	fmt.Fprintf(&sb, "scaler = %s\n", c.Scaler)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.LogFile != "" {
		fmt.Fprintf(&sb, "log_file = %s\n", c.LogFile)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	if c.Notify.Title != "" {
		fmt.Fprintf(&sb, "title = %s\n", c.Notify.Title)
	}
	if c.Notify.CopyText != "" {
		fmt.Fprintf(&sb, "copy_text = %s\n", c.Notify.CopyText)
	}
	if c.Notify.SaveText != "" {
		fmt.Fprintf(&sb, "save_text = %s\n", c.Notify.SaveText)
	}
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Shade: %s\n", theme.FormatColor(t.Shade))
		fmt.Fprintf(&sb, "MarqueeLight: %s\n", theme.FormatColor(t.MarqueeLight))
		fmt.Fprintf(&sb, "MarqueeDark: %s\n", theme.FormatColor(t.MarqueeDark))
		fmt.Fprintf(&sb, "LabelText: %s\n", theme.FormatColor(t.LabelText))
		fmt.Fprintf(&sb, "LabelBackground: %s\n", theme.FormatColor(t.LabelBackground))
		sb.WriteString("\n")
	}

	return sb.String()
}
