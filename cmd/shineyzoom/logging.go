package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// setupLogging mirrors the standard logger into path when it is set. The
// returned func restores stderr-only logging and closes the file.
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		if err := f.Close(); err != nil {
			log.Printf("close log file: %v", err)
		}
	}, nil
}
