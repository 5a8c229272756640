// Package fynehost runs the window shell on top of a Fyne application.
package fynehost

import (
	"fmt"
	"sort"
	"sync"

	"snapview/internal/apperr"
	"snapview/internal/host"
	"snapview/internal/logger"
	"snapview/internal/menu"
	"snapview/internal/window"

	"fyne.io/fyne/v2"
)

type Options struct {
	// DefaultMenu is installed as the application menu before setup runs,
	// mirroring platforms that always present one.
	DefaultMenu *menu.Node
	// AssetDir resolves relative content sources.
	AssetDir string
	Logger   logger.Logger
}

// Host tracks Fyne windows by label and routes their menu commands.
type Host struct {
	app  fyne.App
	opts Options
	log  logger.Logger

	mu          sync.Mutex
	windows     map[string]*Window
	appMenu     *menu.Node
	windowMenus map[string]*menu.Node
	dispatcher  *host.Dispatcher
}

var _ host.Host = (*Host)(nil)

func New(app fyne.App, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Host{
		app:         app,
		opts:        opts,
		log:         log,
		windows:     make(map[string]*Window),
		appMenu:     opts.DefaultMenu,
		windowMenus: make(map[string]*menu.Node),
		dispatcher:  host.NewDispatcher(),
	}
}

func (h *Host) Window(label string) (host.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[label]
	if !ok {
		return nil, false
	}
	return w, true
}

func (h *Host) Labels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	labels := make([]string, 0, len(h.windows))
	for l := range h.windows {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func (h *Host) Menu(label string) *menu.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[label]; !ok {
		return nil
	}
	if m, ok := h.windowMenus[label]; ok {
		return m
	}
	return h.appMenu
}

func (h *Host) SetAppMenu(root *menu.Node) error {
	if err := root.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	targets := make([]*Window, 0, len(h.windows))
	for label, w := range h.windows {
		if _, own := h.windowMenus[label]; !own {
			targets = append(targets, w)
		}
	}
	h.mu.Unlock()

	for _, w := range targets {
		if err := w.applyMenu(root); err != nil {
			return err
		}
	}

	h.mu.Lock()
	h.appMenu = root
	h.mu.Unlock()
	h.log.Debug("FyneHost", "application menu set", map[string]interface{}{
		"windows": len(targets),
	})
	return nil
}

func (h *Host) SetWindowMenu(label string, root *menu.Node) error {
	if err := root.Validate(); err != nil {
		return err
	}

	h.mu.Lock()
	w, ok := h.windows[label]
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: no window %q", apperr.ErrMenuDiscovery, label)
	}
	if err := w.applyMenu(root); err != nil {
		return err
	}

	h.mu.Lock()
	h.windowMenus[label] = root
	h.mu.Unlock()
	return nil
}

func (h *Host) BuildWindow(tpl window.Template) (host.Window, error) {
	h.mu.Lock()
	_, taken := h.windows[tpl.Label]
	appMenu := h.appMenu
	h.mu.Unlock()
	if tpl.Label == "" {
		return nil, fmt.Errorf("%w: empty window label", apperr.ErrWindowConstruction)
	}
	if taken {
		return nil, fmt.Errorf("%w: label %q already in use", apperr.ErrWindowConstruction, tpl.Label)
	}

	source, err := resolveSource(tpl.URL, h.opts.AssetDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrWindowConstruction, err)
	}

	title := tpl.Title
	if title == "" {
		title = tpl.Label
	}
	fw := h.app.NewWindow(title)
	w := &Window{host: h, tpl: tpl, win: fw, shortcuts: make(map[string]fyne.Shortcut)}

	if appMenu != nil {
		if err := w.applyMenu(appMenu); err != nil {
			fw.Close()
			return nil, fmt.Errorf("%w: %w", apperr.ErrWindowConstruction, err)
		}
	}

	fw.SetContent(newContent(title, source))
	if tpl.Width > 0 && tpl.Height > 0 {
		fw.Resize(fyne.NewSize(tpl.Width, tpl.Height))
	}
	fw.SetFixedSize(tpl.Fixed)
	if tpl.Center {
		fw.CenterOnScreen()
	}
	if tpl.Fullscreen {
		fw.SetFullScreen(true)
	}
	fw.SetOnClosed(func() { h.forget(tpl.Label) })

	h.mu.Lock()
	h.windows[tpl.Label] = w
	h.mu.Unlock()

	fw.Show()
	h.log.Debug("FyneHost", "window shown", map[string]interface{}{
		"label":  tpl.Label,
		"source": source.String(),
	})
	return w, nil
}

func (h *Host) Subscribe(scope host.Scope, handler host.Handler) {
	h.dispatcher.Subscribe(scope, handler)
}

// Run enters the Fyne event loop and blocks until the application quits.
func (h *Host) Run() {
	h.app.Run()
}

// Shutdown quits the application from any goroutine.
func (h *Host) Shutdown() {
	fyne.Do(h.app.Quit)
}

func (h *Host) activate(label, id string) {
	n := h.dispatcher.Dispatch(menu.Event{ID: id, Window: label})
	h.log.Debug("FyneHost", "menu command activated", map[string]interface{}{
		"id":       id,
		"window":   label,
		"handlers": n,
	})
}

func (h *Host) forget(label string) {
	h.mu.Lock()
	delete(h.windows, label)
	delete(h.windowMenus, label)
	h.mu.Unlock()
	h.dispatcher.Forget(label)
	h.log.Debug("FyneHost", "window closed", map[string]interface{}{"label": label})
}
