//go:build windows

package platform

import (
	"strings"
	"testing"
)

func TestToastScript(t *testing.T) {
	plain := toastScript("Title", "it's saved", "")
	if !strings.Contains(plain, "ToastText02") || strings.Contains(plain, "SetAttribute") {
		t.Fatalf("plain toast script wrong: %s", plain)
	}
	if !strings.Contains(plain, "'it''s saved'") {
		t.Fatalf("body not quoted: %s", plain)
	}
	withIcon := toastScript("Title", "body", `C:\zoom.png`)
	if !strings.Contains(withIcon, "ToastImageAndText02") || !strings.Contains(withIcon, `'C:\zoom.png'`) {
		t.Fatalf("icon toast script wrong: %s", withIcon)
	}
}
