package shell

import (
	"fmt"

	"snapview/internal/apperr"
	"snapview/internal/host"
	"snapview/internal/menu"
)

// Strategy attaches the "New Window" command to a menu tree and reports the
// scope its handler must be subscribed at.
type Strategy interface {
	Attach(h host.Host) (host.Scope, error)
	Name() string
}

// ExistingMenu inserts the command into the File submenu of a menu the
// runtime already installed, then republishes it application wide.
type ExistingMenu struct {
	Root *menu.Node
}

// NoMenu builds a File menu from scratch and attaches it to one window.
type NoMenu struct {
	Window string
}

// Discover inspects the main window once at setup and picks a strategy.
func Discover(h host.Host, mainLabel string) (Strategy, error) {
	if _, ok := h.Window(mainLabel); !ok {
		return nil, fmt.Errorf("%w: main window %q not found", apperr.ErrMenuDiscovery, mainLabel)
	}
	if root := h.Menu(mainLabel); root != nil {
		return ExistingMenu{Root: root}, nil
	}
	return NoMenu{Window: mainLabel}, nil
}

func (ExistingMenu) Name() string { return "existing-menu" }

// Attach edits a copy of Root; the host's menu is untouched unless the
// edited copy is accepted.
func (s ExistingMenu) Attach(h host.Host) (host.Scope, error) {
	root := s.Root.Clone()
	if root.Find(menu.NewWindowID) != nil {
		return host.Scope{}, fmt.Errorf("%w: menu already has a %q command", apperr.ErrMenuDiscovery, menu.NewWindowID)
	}
	file, err := root.FindSubmenu(menu.FileMenuID, menu.FileMenuText)
	if err != nil {
		return host.Scope{}, err
	}
	if err := file.Insert(menu.NewWindowItem(), 0); err != nil {
		return host.Scope{}, err
	}
	if err := h.SetAppMenu(root); err != nil {
		return host.Scope{}, fmt.Errorf("publish application menu: %w", err)
	}
	return host.AppScope, nil
}

func (NoMenu) Name() string { return "no-menu" }

func (s NoMenu) Attach(h host.Host) (host.Scope, error) {
	if err := h.SetWindowMenu(s.Window, menu.NewFileMenu()); err != nil {
		return host.Scope{}, fmt.Errorf("attach menu to window %q: %w", s.Window, err)
	}
	return host.WindowScope(s.Window), nil
}
