package fynehost

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

var namedKeys = map[string]fyne.KeyName{
	"enter":     fyne.KeyReturn,
	"return":    fyne.KeyReturn,
	"tab":       fyne.KeyTab,
	"space":     fyne.KeySpace,
	"esc":       fyne.KeyEscape,
	"escape":    fyne.KeyEscape,
	"delete":    fyne.KeyDelete,
	"backspace": fyne.KeyBackspace,
	"up":        fyne.KeyUp,
	"down":      fyne.KeyDown,
	"left":      fyne.KeyLeft,
	"right":     fyne.KeyRight,
	"plus":      fyne.KeyPlus,
	"minus":     fyne.KeyMinus,
	",":         fyne.KeyComma,
	".":         fyne.KeyPeriod,
}

// ParseAccelerator turns a "CmdOrCtrl+Shift+N" style accelerator into a
// desktop shortcut. An empty accelerator yields nil.
func ParseAccelerator(accel string) (*desktop.CustomShortcut, error) {
	if strings.TrimSpace(accel) == "" {
		return nil, nil
	}

	parts := strings.Split(accel, "+")
	var mod fyne.KeyModifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "cmdorctrl", "commandorcontrol", "cmdorcontrol":
			mod |= fyne.KeyModifierShortcutDefault
		case "ctrl", "control":
			mod |= fyne.KeyModifierControl
		case "cmd", "command", "super", "meta":
			mod |= fyne.KeyModifierSuper
		case "alt", "option":
			mod |= fyne.KeyModifierAlt
		case "shift":
			mod |= fyne.KeyModifierShift
		default:
			return nil, fmt.Errorf("accelerator %q: unknown modifier %q", accel, p)
		}
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return nil, fmt.Errorf("accelerator %q: missing key", accel)
	}
	name, err := keyName(key)
	if err != nil {
		return nil, fmt.Errorf("accelerator %q: %w", accel, err)
	}
	return &desktop.CustomShortcut{KeyName: name, Modifier: mod}, nil
}

func keyName(key string) (fyne.KeyName, error) {
	if name, ok := namedKeys[strings.ToLower(key)]; ok {
		return name, nil
	}
	if len(key) == 1 {
		c := strings.ToUpper(key)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return fyne.KeyName(string(c)), nil
		}
	}
	if len(key) >= 2 && (key[0] == 'F' || key[0] == 'f') {
		n := key[1:]
		switch n {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return fyne.KeyName("F" + n), nil
		}
	}
	return "", fmt.Errorf("unknown key %q", key)
}
