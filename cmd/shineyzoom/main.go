// Command shineyzoom lets the user drag a rectangle over the desktop and
// then shows a live, magnified view of it until Escape is pressed.
//
// It takes no arguments. Settings come from ~/.config/shineyzoom/config.rc,
// a .env file and SHINEYZOOM_* environment variables.
package main

import (
	"log"
	"os"

	"github.com/example/shineyzoom/internal/appstate"
	"github.com/example/shineyzoom/internal/capture"
	"github.com/example/shineyzoom/internal/config"
	"github.com/example/shineyzoom/internal/notify"
	"github.com/example/shineyzoom/internal/render"
	"github.com/example/shineyzoom/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.NewLoader(version, configPathOverride).Load()
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		log.Printf("log file: %v", err)
		return 1
	}
	defer closeLog()
	log.Printf("shineyzoom %s", versionString())

	th, err := cfg.ResolveTheme(nil)
	if err != nil {
		log.Printf("warning: failed to load theme '%s': %v. using default.", cfg.Theme, err)
		th = theme.Default()
	}

	scaler, err := render.LookupScaler(cfg.Scaler)
	if err != nil {
		log.Printf("scaler: %v", err)
		return 1
	}

	backend, err := capture.Open(cfg.Backend)
	if err != nil {
		log.Printf("capture: %v", err)
		return 1
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("capture close: %v", err)
		}
	}()
	log.Printf("capture backend: %s", backend.Name())

	notifier := notify.New(notify.DefaultPreferences().Override(cfg.Notify.Title, cfg.Notify.CopyText, cfg.Notify.SaveText))
	notifier.Enable(notify.EventCopy, cfg.Notify.Copy)
	notifier.Enable(notify.EventSave, cfg.Notify.Save)

	app := appstate.New(backend,
		appstate.WithConfig(cfg),
		appstate.WithTheme(th),
		appstate.WithScaler(scaler),
		appstate.WithNotifier(notifier),
	)
	outcome, err := app.Run()
	if err != nil {
		log.Printf("startup: %v", err)
		return 1
	}
	log.Printf("done: %v", outcome)
	return 0
}
