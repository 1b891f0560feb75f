package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/shineyzoom/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
}

func captureSends(t *testing.T, err error) *[]sent {
	t.Helper()
	var got []sent
	prev := send
	send = func(title, body string, opts platform.Options) error {
		got = append(got, sent{title, body, opts})
		return err
	}
	t.Cleanup(func() { send = prev })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := captureSends(t, nil)
	n := New(DefaultPreferences())
	n.Copy("frame")
	n.Save("x.png")

	var nilNotifier *Notifier
	nilNotifier.Enable(EventCopy, true)
	nilNotifier.Copy("frame")

	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestCopyAndSave(t *testing.T) {
	got := captureSends(t, nil)
	n := New(DefaultPreferences().Override("Zoomer", "", "Wrote %s"))
	n.Enable(EventCopy, true)
	n.Enable(EventSave, true)

	n.Copy("")
	path := filepath.Join(t.TempDir(), "zoom.png")
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	n.Save(path)

	if len(*got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(*got))
	}
	if (*got)[0] != (sent{"Zoomer", "Copied image to clipboard", platform.Options{}}) {
		t.Fatalf("copy notification = %+v", (*got)[0])
	}
	if (*got)[1].body != "Wrote "+path || (*got)[1].opts.IconPath != path {
		t.Fatalf("save notification = %+v", (*got)[1])
	}
}

func TestSendErrorIsLoggedOnly(t *testing.T) {
	got := captureSends(t, errors.New("no bus"))
	n := New(DefaultPreferences())
	n.Enable(EventCopy, true)
	n.Copy("frame")
	if len(*got) != 1 {
		t.Fatalf("expected one attempt, got %d", len(*got))
	}
}

func TestOverrideDoesNotMutateDefaults(t *testing.T) {
	base := DefaultPreferences()
	_ = base.Override("T", "C %s", "S %s")
	if base.Title != "ShineyZoom" || base.Events[EventCopy] != "Copied %s to clipboard" {
		t.Fatalf("defaults mutated: %+v", base)
	}
}
