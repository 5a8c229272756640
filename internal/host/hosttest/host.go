// Package hosttest provides an in-memory host for exercising the shell
// without a display.
package hosttest

import (
	"fmt"
	"sync"

	"snapview/internal/apperr"
	"snapview/internal/host"
	"snapview/internal/menu"
	"snapview/internal/window"
)

type Window struct {
	h          *Host
	tpl        window.Template
	fullscreen bool
	closed     bool
}

func (w *Window) Label() string             { return w.tpl.Label }
func (w *Window) Template() window.Template { return w.tpl }
func (w *Window) FullScreen() bool          { return w.fullscreen }
func (w *Window) SetFullScreen(on bool)     { w.fullscreen = on }
func (w *Window) Closed() bool              { return w.closed }

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.h.remove(w.tpl.Label)
}

// Host records windows and menus in memory.
type Host struct {
	// BuildErr, when set, fails every BuildWindow call.
	BuildErr error

	mu          sync.Mutex
	windows     map[string]*Window
	order       []string
	appMenu     *menu.Node
	windowMenus map[string]*menu.Node
	appMenuSets int
	dispatcher  *host.Dispatcher
}

var _ host.Host = (*Host)(nil)

func New() *Host {
	return &Host{
		windows:     make(map[string]*Window),
		windowMenus: make(map[string]*menu.Node),
		dispatcher:  host.NewDispatcher(),
	}
}

// WithDefaultMenu preinstalls an application menu, as a platform would.
func (h *Host) WithDefaultMenu(root *menu.Node) *Host {
	h.appMenu = root
	return h
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
	defer h.mu.Unlock()
	h.appMenu = root
	h.appMenuSets++
	return nil
}

func (h *Host) SetWindowMenu(label string, root *menu.Node) error {
	if err := root.Validate(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.windows[label]; !ok {
		return fmt.Errorf("%w: no window %q", apperr.ErrMenuDiscovery, label)
	}
	h.windowMenus[label] = root
	return nil
}

func (h *Host) BuildWindow(tpl window.Template) (host.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.BuildErr != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrWindowConstruction, h.BuildErr)
	}
	if _, ok := h.windows[tpl.Label]; ok {
		return nil, fmt.Errorf("%w: label %q already in use", apperr.ErrWindowConstruction, tpl.Label)
	}
	w := &Window{h: h, tpl: tpl, fullscreen: tpl.Fullscreen}
	h.windows[tpl.Label] = w
	h.order = append(h.order, tpl.Label)
	return w, nil
}

func (h *Host) Subscribe(scope host.Scope, handler host.Handler) {
	h.dispatcher.Subscribe(scope, handler)
}

// Activate simulates the user picking command id in the given window. It
// reports how many handlers saw the event; commands absent from the
// window's menu are not delivered.
func (h *Host) Activate(label, id string) int {
	m := h.Menu(label)
	if m == nil || m.Find(id) == nil {
		return 0
	}
	return h.dispatcher.Dispatch(menu.Event{ID: id, Window: label})
}

// Labels lists open windows in creation order.
func (h *Host) Labels() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.order))
	for _, l := range h.order {
		if _, ok := h.windows[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

func (h *Host) AppMenu() *menu.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.appMenu
}

func (h *Host) AppMenuSets() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.appMenuSets
}

// WindowMenu returns the menu attached to one window only.
func (h *Host) WindowMenu(label string) *menu.Node {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.windowMenus[label]
}

func (h *Host) remove(label string) {
	h.mu.Lock()
	delete(h.windows, label)
	delete(h.windowMenus, label)
	h.mu.Unlock()
	h.dispatcher.Forget(label)
}
