package fynehost

import (
	"fmt"
	"net/url"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// resolveSource turns a template content source into a URL. Absolute URLs
// are kept; anything else is a local path resolved against base.
func resolveSource(raw, base string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty content source")
	}

	u, err := url.Parse(raw)
	if err == nil && u.IsAbs() && len(u.Scheme) > 1 {
		return u, nil
	}
	if err != nil && !filepath.IsAbs(raw) && filepath.VolumeName(raw) == "" {
		return nil, fmt.Errorf("content source %q: %w", raw, err)
	}

	path := raw
	if !filepath.IsAbs(path) {
		if base != "" {
			path = filepath.Join(base, path)
		}
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("content source %q: %w", raw, err)
		}
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}, nil
}

// newContent builds the placeholder view a window shows for its source.
// Rendering the source itself is left to the embedded view layer.
func newContent(title string, source *url.URL) fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	link := widget.NewHyperlink(source.String(), source)
	link.Alignment = fyne.TextAlignCenter
	return container.NewCenter(container.NewVBox(heading, link))
}
