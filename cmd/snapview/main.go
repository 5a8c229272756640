package main

import (
	"log"
	"os"
	"runtime"

	"snapview/internal/app"
	"snapview/internal/buildmode"
	"snapview/internal/config"
	"snapview/internal/host/fynehost"
	"snapview/internal/logger"
	"snapview/internal/menu"
	"snapview/internal/shutdown"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
)

const AppVersion = "0.4.0"

// uiShutdown runs the application shutdown on the Fyne thread.
type uiShutdown struct {
	app *app.Application
}

func (u uiShutdown) Shutdown() {
	fyne.DoAndWait(u.app.Shutdown)
}

func main() {
	fs := pflag.NewFlagSet("snapview", pflag.ExitOnError)
	config.Flags(fs)
	assetDir := fs.String("assets", "", "directory that relative window sources resolve against")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("Flag parsing failed: %v", err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger, err := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		Development: cfg.Build.Dev,
	})
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"build":      buildmode.Name(),
		"dev":        cfg.Build.Dev,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
	})

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      cfg.App.ID,
		Name:    cfg.App.Name,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(cfg.App.ID)

	opts := fynehost.Options{AssetDir: *assetDir, Logger: appLogger}
	if cfg.WantsDefaultMenu(runtime.GOOS) {
		opts.DefaultMenu = menu.DefaultMenu()
	}
	h := fynehost.New(fyneApp, opts)

	application, err := app.New(cfg, appLogger, h)
	if err != nil {
		appLogger.Error("Application", err, nil)
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(h)
	shutdownManager.Register(uiShutdown{app: application})
	shutdownManager.Listen()

	h.Run()
	shutdownManager.Stop()

	appLogger.Info("Application", "terminated", nil)
}
