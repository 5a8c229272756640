package fynehost

import (
	"fmt"

	"snapview/internal/apperr"
	"snapview/internal/menu"

	"fyne.io/fyne/v2"
)

// builtMenu is a menu tree rendered for one window.
type builtMenu struct {
	main      *fyne.MainMenu
	shortcuts map[string]fyne.Shortcut
}

// buildMainMenu renders root into fyne menus. Every command calls activate
// with its identifier.
func buildMainMenu(root *menu.Node, activate func(id string)) (*builtMenu, error) {
	b := &builtMenu{shortcuts: make(map[string]fyne.Shortcut)}

	var menus []*fyne.Menu
	for _, c := range root.Children {
		if c.Kind != menu.KindSubmenu {
			continue
		}
		m, err := b.submenu(c, activate)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	b.main = fyne.NewMainMenu(menus...)
	return b, nil
}

func (b *builtMenu) submenu(n *menu.Node, activate func(id string)) (*fyne.Menu, error) {
	items := make([]*fyne.MenuItem, 0, len(n.Children))
	for _, c := range n.Children {
		switch c.Kind {
		case menu.KindSeparator:
			items = append(items, fyne.NewMenuItemSeparator())
		case menu.KindSubmenu:
			child, err := b.submenu(c, activate)
			if err != nil {
				return nil, err
			}
			item := fyne.NewMenuItem(c.Text, nil)
			item.ChildMenu = child
			items = append(items, item)
		case menu.KindItem:
			item, err := b.item(c, activate)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return fyne.NewMenu(n.Text, items...), nil
}

func (b *builtMenu) item(n *menu.Node, activate func(id string)) (*fyne.MenuItem, error) {
	id := n.ID
	item := fyne.NewMenuItem(n.Text, func() { activate(id) })
	item.Disabled = n.Disabled

	sc, err := ParseAccelerator(n.Accelerator)
	if err != nil {
		return nil, fmt.Errorf("%w: command %q: %w", apperr.ErrMenuDiscovery, id, err)
	}
	// Accelerators live on the window canvas, never on item.Shortcut.
	if sc != nil && !n.Disabled {
		b.shortcuts[id] = sc
	}
	return item, nil
}
