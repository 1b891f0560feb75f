//go:build !(linux || freebsd || openbsd || netbsd || dragonfly) && !windows

package capture

import "fmt"

func openX11() (Backend, error) { return nil, fmt.Errorf("x11: %w", ErrUnsupported) }

func openGDI() (Backend, error) { return nil, fmt.Errorf("gdi: %w", ErrUnsupported) }

func autoKinds() []string { return []string{"generic"} }
