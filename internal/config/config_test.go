package config

import (
	"os"
	"path/filepath"
	"testing"

	"snapview/internal/apperr"
	"snapview/internal/window"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapview.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "Snapshot Viewer", cfg.App.Name)
	assert.Equal(t, "http://localhost:5173", cfg.Build.DevURL)
	assert.Equal(t, PresetAuto, cfg.Menu.Preset)
	assert.Equal(t, window.StrategySequence, cfg.Windows.LabelStrategy)
	require.Len(t, cfg.Windows.Templates, 1)
	main := cfg.Windows.Templates[0]
	assert.Equal(t, window.MainArchetype, main.Label)
	assert.Equal(t, "index.html", main.URL)
	assert.Equal(t, float32(1200), main.Width)
	assert.True(t, main.Center)
}

func TestLoadFileOverridesTemplates(t *testing.T) {
	path := writeConfig(t, `
[build]
dev_url = "http://127.0.0.1:9000"

[[windows.templates]]
label = "main"
url = "https://example.com/app"
width = 640
height = 480
fixed = true

[[windows.templates]]
label = "about"
url = "about.html"
`)
	t.Setenv("SNAPVIEW_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Build.DevURL)
	assert.Equal(t, "Snapshot Viewer", cfg.App.Name)
	require.Len(t, cfg.Windows.Templates, 2)
	assert.Equal(t, "https://example.com/app", cfg.Windows.Templates[0].URL)
	assert.True(t, cfg.Windows.Templates[0].Fixed)
	assert.Equal(t, "about", cfg.Windows.Templates[1].Label)
}

func TestLoadFlagsAndEnv(t *testing.T) {
	t.Setenv("SNAPVIEW_BUILD_DEV_URL", "http://localhost:1420")

	fs := pflag.NewFlagSet("snapview", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--dev", "--label-strategy=uuid", "--menu-preset=none"}))

	cfg, err := Load(fs)
	require.NoError(t, err)

	assert.True(t, cfg.Build.Dev)
	assert.Equal(t, "http://localhost:1420", cfg.Build.DevURL)
	assert.Equal(t, window.StrategyUUID, cfg.Windows.LabelStrategy)
	assert.Equal(t, PresetNone, cfg.Menu.Preset)
}

func TestLoadConfigFlag(t *testing.T) {
	path := writeConfig(t, `
[app]
name = "Other"
`)
	fs := pflag.NewFlagSet("snapview", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "Other", cfg.App.Name)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("SNAPVIEW_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	_, err := Load(nil)
	assert.ErrorIs(t, err, apperr.ErrConfiguration)
}

func TestValidate(t *testing.T) {
	good := Config{
		Menu:    MenuConfig{Preset: PresetAuto},
		Windows: WindowsConfig{Templates: []window.Template{{Label: "main", URL: "index.html"}}},
	}
	require.NoError(t, good.Validate())

	tests := map[string]func(c *Config){
		"no templates":  func(c *Config) { c.Windows.Templates = nil },
		"no label":      func(c *Config) { c.Windows.Templates = []window.Template{{URL: "index.html"}} },
		"no url":        func(c *Config) { c.Windows.Templates = []window.Template{{Label: "main"}} },
		"negative size": func(c *Config) { c.Windows.Templates = []window.Template{{Label: "main", URL: "x", Width: -1}} },
		"strategy":      func(c *Config) { c.Windows.LabelStrategy = "dice" },
		"preset":        func(c *Config) { c.Menu.Preset = "fancy" },
		"log level":     func(c *Config) { c.Log.Level = "chatty" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := good
			c.Windows.Templates = append([]window.Template(nil), good.Windows.Templates...)
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), apperr.ErrConfiguration)
		})
	}
}

func TestWantsDefaultMenu(t *testing.T) {
	auto := Config{Menu: MenuConfig{Preset: PresetAuto}}
	assert.True(t, auto.WantsDefaultMenu("darwin"))
	assert.False(t, auto.WantsDefaultMenu("linux"))

	assert.True(t, Config{Menu: MenuConfig{Preset: PresetDefault}}.WantsDefaultMenu("windows"))
	assert.False(t, Config{Menu: MenuConfig{Preset: PresetNone}}.WantsDefaultMenu("darwin"))
}
