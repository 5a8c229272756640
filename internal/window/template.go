// Package window holds the window templates the shell instantiates and the
// allocators that name new instances.
package window

import (
	"fmt"

	"snapview/internal/apperr"
)

// MainArchetype names the only window archetype the shell spawns.
const MainArchetype = "main"

// Template describes how to construct a window.
type Template struct {
	Label      string  `mapstructure:"label"`
	Title      string  `mapstructure:"title"`
	URL        string  `mapstructure:"url"`
	Width      float32 `mapstructure:"width"`
	Height     float32 `mapstructure:"height"`
	Fixed      bool    `mapstructure:"fixed"`
	Center     bool    `mapstructure:"center"`
	Fullscreen bool    `mapstructure:"fullscreen"`
}

// Registry is the read-only set of named templates loaded at startup.
type Registry struct {
	templates map[string]Template
	order     []string
}

func NewRegistry(templates []Template) (*Registry, error) {
	r := &Registry{templates: make(map[string]Template, len(templates))}
	for i, t := range templates {
		if t.Label == "" {
			return nil, fmt.Errorf("%w: window template %d has no label", apperr.ErrConfiguration, i)
		}
		if _, ok := r.templates[t.Label]; ok {
			return nil, fmt.Errorf("%w: duplicate window template %q", apperr.ErrConfiguration, t.Label)
		}
		r.templates[t.Label] = t
		r.order = append(r.order, t.Label)
	}
	return r, nil
}

// Lookup returns a copy of the named template.
func (r *Registry) Lookup(name string) (Template, error) {
	t, ok := r.templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: no window template named %q", apperr.ErrConfiguration, name)
	}
	return t, nil
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
