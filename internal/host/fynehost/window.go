package fynehost

import (
	"snapview/internal/menu"
	"snapview/internal/window"

	"fyne.io/fyne/v2"
)

// Window is a labelled Fyne window.
type Window struct {
	host      *Host
	tpl       window.Template
	win       fyne.Window
	shortcuts map[string]fyne.Shortcut
}

func (w *Window) Label() string             { return w.tpl.Label }
func (w *Window) Template() window.Template { return w.tpl }
func (w *Window) FullScreen() bool          { return w.win.FullScreen() }
func (w *Window) SetFullScreen(on bool)     { w.win.SetFullScreen(on) }
func (w *Window) Close()                    { w.win.Close() }

// Fyne exposes the underlying window for callers that need it.
func (w *Window) Fyne() fyne.Window { return w.win }

// applyMenu renders root for this window and swaps the canvas shortcuts of
// the previous menu for the new ones.
func (w *Window) applyMenu(root *menu.Node) error {
	label := w.tpl.Label
	built, err := buildMainMenu(root, func(id string) { w.host.activate(label, id) })
	if err != nil {
		return err
	}

	canvas := w.win.Canvas()
	for _, sc := range w.shortcuts {
		canvas.RemoveShortcut(sc)
	}
	w.shortcuts = built.shortcuts
	for id, sc := range built.shortcuts {
		id := id
		canvas.AddShortcut(sc, func(fyne.Shortcut) { w.host.activate(label, id) })
	}

	w.win.SetMainMenu(built.main)
	return nil
}
