package menu

const (
	CloseWindowID      = "close_window"
	ToggleFullScreenID = "toggle_fullscreen"
)

// DefaultMenu is the platform-style menu the host installs before setup runs
// when a preset is requested. It already carries a File submenu, so setup
// takes the existing-menu path.
func DefaultMenu() *Node {
	return NewMenu(
		NewSubmenu(FileMenuID, FileMenuText,
			NewSeparator(),
			NewItem(CloseWindowID, "Close Window", "CmdOrCtrl+W"),
		),
		NewSubmenu("view", "View",
			NewItem(ToggleFullScreenID, "Toggle Full Screen", "CmdOrCtrl+Shift+F"),
		),
	)
}
