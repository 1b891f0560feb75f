//go:build cgo || windows

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error

	clipboardInit  = clipboard.Init
	clipboardWrite = clipboard.Write
)

func ensureInit() error {
	initOnce.Do(func() {
		if needsDisplay() && !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		initErr = clipboardInit()
	})
	return initErr
}

func writePNG(data []byte) error {
	clipboardWrite(clipboard.FmtImage, data)
	return nil
}
