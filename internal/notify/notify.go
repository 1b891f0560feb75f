package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/shineyzoom/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave emits a notification when a frame is written to disk.
	EventSave Event = "save"
	// EventCopy emits a notification when a frame is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences describes notification wording. Templates take one %s.
type Preferences struct {
	Title  string
	Events map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "ShineyZoom",
		Events: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to clipboard",
		},
	}
}

// Override replaces the title and templates that are non-empty.
func (p Preferences) Override(title, copyText, saveText string) Preferences {
	out := Preferences{Title: p.Title, Events: make(map[Event]string, len(p.Events))}
	for k, v := range p.Events {
		out.Events[k] = v
	}
	if v := strings.TrimSpace(title); v != "" {
		out.Title = v
	}
	if v := strings.TrimSpace(copyText); v != "" {
		out.Events[EventCopy] = v
	}
	if v := strings.TrimSpace(saveText); v != "" {
		out.Events[EventSave] = v
	}
	return out
}

var send = platform.Notify

// Notifier sends OS-level notifications for enabled events. A nil Notifier
// is valid and sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	return &Notifier{prefs: prefs.Override("", "", ""), enabled: make(map[Event]bool)}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Save reports a written file, using its absolute path and the file itself
// as the icon when the platform supports it.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy reports a clipboard write.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Events[event])
	if template == "" {
		return
	}
	body := template
	if strings.Contains(template, "%s") {
		body = fmt.Sprintf(template, strings.TrimSpace(detail))
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
