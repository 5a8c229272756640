// Package shell is the multi-window lifecycle core: it spawns windows from
// templates, provisions the File menu and routes menu commands.
package shell

import (
	"fmt"

	"snapview/internal/apperr"
	"snapview/internal/host"
	"snapview/internal/logger"
	"snapview/internal/window"
)

// FactoryOptions carries the build-mode settings that affect spawning.
type FactoryOptions struct {
	Development bool
	DevURL      string
}

// Factory turns templates into windows.
type Factory struct {
	registry  *window.Registry
	allocator window.Allocator
	host      host.Host
	opts      FactoryOptions
	log       logger.Logger
}

func NewFactory(reg *window.Registry, alloc window.Allocator, h host.Host, opts FactoryOptions, log logger.Logger) *Factory {
	return &Factory{
		registry:  reg,
		allocator: alloc,
		host:      h,
		opts:      opts,
		log:       log,
	}
}

// Open builds the window described by the named template under the
// template's own label. Startup uses it for the main window; a development
// build without a dev URL falls back to the template URL here.
func (f *Factory) Open(name string) (host.Window, error) {
	tpl, err := f.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	if f.opts.Development {
		if f.opts.DevURL == "" {
			f.log.Warning("Factory", "development build has no dev_url, keeping template url", map[string]interface{}{
				"template": name,
				"url":      tpl.URL,
			})
		} else {
			tpl.URL = f.opts.DevURL
		}
	}
	return f.build(name, tpl)
}

// Spawn builds a new instance of the named template under a freshly
// allocated label.
func (f *Factory) Spawn(name string) (host.Window, error) {
	tpl, err := f.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	tpl.Label = f.allocator.Next(name)
	if f.opts.Development {
		if f.opts.DevURL == "" {
			return nil, fmt.Errorf("%w: development build has no dev_url for window %q", apperr.ErrConfiguration, tpl.Label)
		}
		tpl.URL = f.opts.DevURL
	}
	return f.build(name, tpl)
}

func (f *Factory) build(name string, tpl window.Template) (host.Window, error) {
	w, err := f.host.BuildWindow(tpl)
	if err != nil {
		return nil, fmt.Errorf("build window %q from template %q: %w", tpl.Label, name, err)
	}

	f.log.Info("Factory", "window created", map[string]interface{}{
		"template": name,
		"label":    tpl.Label,
		"url":      tpl.URL,
	})
	return w, nil
}
