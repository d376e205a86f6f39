// Package launcher is the shared start-up sequence of the lab binaries.
package launcher

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"render-labs/app"
	"render-labs/config"
	"render-labs/core"
	"render-labs/internal/opengl"
	"render-labs/internal/watch"
	"render-labs/platform"
	"render-labs/ui"
)

// Main parses flags, loads settings and runs lab until the window closes
// or the process is interrupted. Start-up failures are fatal.
func Main(kind config.Lab, lab app.Lab) {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath, kind)
	if err != nil {
		core.LogFatal("%v", err)
	}
	if err := core.ConfigureLogging(kind.String(), cfg.Log.Level); err != nil {
		core.LogWarn("log level %q: %v", cfg.Log.Level, err)
	}

	if err := run(&cfg, lab); err != nil {
		core.LogFatal("%s lab: %v", lab.Name(), err)
	}
}

// run owns the window, GL and UI lifetimes. Every resource it creates is
// released before it returns.
func run(cfg *config.Config, lab app.Lab) error {
	window, err := platform.NewWindow(platform.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := opengl.Init(); err != nil {
		return err
	}

	frontend, err := ui.NewContext(window)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	defer frontend.Destroy()

	a := app.New(cfg, window, lab, frontend, opengl.Device{})
	a.BindEvents(window, frontend)

	if cfg.Watch.Enabled {
		w, err := watch.New(cfg.Assets.ShaderDir, ".vert", ".frag")
		if err != nil {
			core.LogWarn("shader hot reload disabled: %v", err)
		} else {
			defer w.Close()
			a.WatchFiles(w.Changes())
			core.LogDebug("watching %s", cfg.Assets.ShaderDir)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}
