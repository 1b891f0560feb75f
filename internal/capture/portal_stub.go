//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import "fmt"

func openPortal() (Backend, error) {
	return nil, fmt.Errorf("portal: %w", ErrUnsupported)
}
