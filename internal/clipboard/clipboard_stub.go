//go:build !cgo && !windows && !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard image operations require cgo on this platform")

func ensureInit() error { return errUnsupported }

func writePNG([]byte) error { return errUnsupported }
