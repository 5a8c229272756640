package app

import (
	"fmt"

	"snapview/internal/config"
	"snapview/internal/host"
	"snapview/internal/logger"
	"snapview/internal/menu"
	"snapview/internal/shell"
	"snapview/internal/window"
)

// Application is the started window shell.
type Application struct {
	host      host.Host
	factory   *shell.Factory
	router    *shell.Router
	strategy  shell.Strategy
	scope     host.Scope
	lifecycle *Lifecycle
	logger    logger.Logger
}

// New runs startup against h: it opens the main window, provisions the File
// menu and subscribes the command router. Any error is fatal.
func New(cfg config.Config, log logger.Logger, h host.Host) (*Application, error) {
	registry, err := window.NewRegistry(cfg.Windows.Templates)
	if err != nil {
		return nil, err
	}
	if _, err := registry.Lookup(window.MainArchetype); err != nil {
		return nil, err
	}

	allocator, err := window.NewAllocator(cfg.Windows.LabelStrategy)
	if err != nil {
		return nil, err
	}

	factory := shell.NewFactory(registry, allocator, h, shell.FactoryOptions{
		Development: cfg.Build.Dev,
		DevURL:      cfg.Build.DevURL,
	}, log)

	if _, err := factory.Open(window.MainArchetype); err != nil {
		return nil, fmt.Errorf("open main window: %w", err)
	}

	strategy, err := shell.Discover(h, window.MainArchetype)
	if err != nil {
		return nil, err
	}
	scope, err := strategy.Attach(h)
	if err != nil {
		return nil, fmt.Errorf("provision menu (%s): %w", strategy.Name(), err)
	}

	router := shell.NewRouter(log)
	router.RouteSpawn(factory, window.MainArchetype)
	router.Route(menu.CloseWindowID, func(ev menu.Event) error {
		if w, ok := h.Window(ev.Window); ok {
			w.Close()
		}
		return nil
	})
	router.Route(menu.ToggleFullScreenID, func(ev menu.Event) error {
		if w, ok := h.Window(ev.Window); ok {
			w.SetFullScreen(!w.FullScreen())
		}
		return nil
	})
	router.Attach(h, scope)

	log.Info("Application", "startup complete", map[string]interface{}{
		"name":      cfg.App.Name,
		"menu_path": strategy.Name(),
		"scope":     scope.String(),
		"dev":       cfg.Build.Dev,
		"templates": registry.Names(),
	})

	return &Application{
		host:      h,
		factory:   factory,
		router:    router,
		strategy:  strategy,
		scope:     scope,
		lifecycle: NewLifecycle(h, log),
		logger:    log,
	}, nil
}

// Scope reports where the command router listens.
func (a *Application) Scope() host.Scope {
	return a.scope
}

// Factory exposes the window factory, e.g. to open extra windows at startup.
func (a *Application) Factory() *shell.Factory {
	return a.factory
}

func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
