// Package host describes the GUI runtime the shell drives. The runtime owns
// the native event loop and the process-wide table of windows; the shell
// reaches it only through this interface.
package host

import (
	"snapview/internal/menu"
	"snapview/internal/window"
)

// Window is a live window backed by a native handle.
type Window interface {
	Label() string
	Template() window.Template
	Close()
	FullScreen() bool
	SetFullScreen(bool)
}

// Host is the callback surface of the runtime.
type Host interface {
	// Window returns the open window with the given label.
	Window(label string) (Window, bool)
	// Labels lists the open windows.
	Labels() []string
	// Menu returns the menu currently attached to the window, or nil.
	Menu(label string) *menu.Node
	// SetAppMenu attaches root to every open and future window.
	SetAppMenu(root *menu.Node) error
	// SetWindowMenu attaches root to one window only.
	SetWindowMenu(label string, root *menu.Node) error
	// BuildWindow constructs and shows a window from a finalized template.
	BuildWindow(tpl window.Template) (Window, error)
	// Subscribe registers a menu-event handler at the given scope.
	Subscribe(scope Scope, handler Handler)
}

// Handler receives menu events on the UI thread.
type Handler func(menu.Event)

// Scope selects which menu events a handler receives. The zero value is
// application scope.
type Scope struct {
	Window string
}

var AppScope = Scope{}

func WindowScope(label string) Scope {
	return Scope{Window: label}
}

func (s Scope) IsApp() bool {
	return s.Window == ""
}

func (s Scope) String() string {
	if s.IsApp() {
		return "application"
	}
	return "window:" + s.Window
}
