package app

import (
	"testing"

	"snapview/internal/apperr"
	"snapview/internal/config"
	"snapview/internal/host"
	"snapview/internal/host/hosttest"
	"snapview/internal/logger"
	"snapview/internal/menu"
	"snapview/internal/window"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorRecorder keeps every error handed to the logger.
type errorRecorder struct {
	errs []error
}

func (r *errorRecorder) Debug(string, string, map[string]interface{})   {}
func (r *errorRecorder) Info(string, string, map[string]interface{})    {}
func (r *errorRecorder) Warning(string, string, map[string]interface{}) {}
func (r *errorRecorder) Error(_ string, err error, _ map[string]interface{}) {
	r.errs = append(r.errs, err)
}

func testConfig() config.Config {
	return config.Config{
		App:   config.AppConfig{ID: "dev.snapview.test", Name: "Snapshot Viewer"},
		Build: config.BuildConfig{DevURL: "http://localhost:5173"},
		Menu:  config.MenuConfig{Preset: config.PresetNone},
		Windows: config.WindowsConfig{
			LabelStrategy: window.StrategySequence,
			Templates: []window.Template{
				{Label: window.MainArchetype, Title: "Snapshot Viewer", URL: "index.html", Width: 1200, Height: 800},
			},
		},
	}
}

func TestStartupWithoutMainTemplate(t *testing.T) {
	cfg := testConfig()
	cfg.Windows.Templates[0].Label = "viewer"
	h := hosttest.New()

	_, err := New(cfg, logger.Nop(), h)

	assert.ErrorIs(t, err, apperr.ErrConfiguration)
	assert.Empty(t, h.Labels())
}

func TestStartupWithoutMenuUsesWindowScope(t *testing.T) {
	h := hosttest.New()

	a, err := New(testConfig(), logger.Nop(), h)
	require.NoError(t, err)

	assert.Equal(t, host.WindowScope(window.MainArchetype), a.Scope())
	assert.Equal(t, []string{window.MainArchetype}, h.Labels())

	root := h.WindowMenu(window.MainArchetype)
	require.NotNil(t, root)
	require.Len(t, root.Submenus(), 1)
	file := root.Submenus()[0]
	assert.Equal(t, menu.FileMenuText, file.Text)
	require.Len(t, file.Children, 1)
	assert.Equal(t, menu.NewWindowID, file.Children[0].ID)

	assert.Equal(t, 1, h.Activate(window.MainArchetype, menu.NewWindowID))
	labels := h.Labels()
	require.Len(t, labels, 2)
	spawned, ok := h.Window(labels[1])
	require.True(t, ok)
	assert.NotEqual(t, window.MainArchetype, spawned.Label())
	assert.Equal(t, "index.html", spawned.Template().URL)

	// The spawned window carries no menu, so it cannot raise the command.
	assert.Zero(t, h.Activate(labels[1], menu.NewWindowID))
	assert.Len(t, h.Labels(), 2)
}

func TestStartupWithDefaultMenuUsesAppScope(t *testing.T) {
	h := hosttest.New().WithDefaultMenu(menu.DefaultMenu())

	a, err := New(testConfig(), logger.Nop(), h)
	require.NoError(t, err)

	assert.Equal(t, host.AppScope, a.Scope())
	assert.Equal(t, 1, h.AppMenuSets())
	file, err := h.AppMenu().FindSubmenu(menu.FileMenuID, menu.FileMenuText)
	require.NoError(t, err)
	assert.Equal(t, menu.NewWindowID, file.Children[0].ID)
	assert.Equal(t, menu.CloseWindowID, file.Children[2].ID)

	assert.Equal(t, 1, h.Activate(window.MainArchetype, menu.NewWindowID))
	labels := h.Labels()
	require.Len(t, labels, 2)

	// Application scope: the spawned window's own menu spawns too.
	assert.Equal(t, 1, h.Activate(labels[1], menu.NewWindowID))
	assert.Len(t, h.Labels(), 3)

	assert.Equal(t, 1, h.Activate(labels[1], menu.ToggleFullScreenID))
	w, ok := h.Window(labels[1])
	require.True(t, ok)
	assert.True(t, w.FullScreen())

	assert.Equal(t, 1, h.Activate(labels[1], menu.CloseWindowID))
	_, ok = h.Window(labels[1])
	assert.False(t, ok)
	assert.Len(t, h.Labels(), 2)
}

func TestStartupMenuWithoutFileIsFatal(t *testing.T) {
	h := hosttest.New().WithDefaultMenu(menu.NewMenu(menu.NewSubmenu("", "Edit")))

	_, err := New(testConfig(), logger.Nop(), h)

	assert.ErrorIs(t, err, apperr.ErrMenuDiscovery)
	assert.Nil(t, h.WindowMenu(window.MainArchetype))
}

func TestDevelopmentStartupUsesDevURL(t *testing.T) {
	cfg := testConfig()
	cfg.Build.Dev = true
	h := hosttest.New()

	_, err := New(cfg, logger.Nop(), h)
	require.NoError(t, err)

	main, ok := h.Window(window.MainArchetype)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:5173", main.Template().URL)

	h.Activate(window.MainArchetype, menu.NewWindowID)
	labels := h.Labels()
	require.Len(t, labels, 2)
	spawned, _ := h.Window(labels[1])
	assert.Equal(t, "http://localhost:5173", spawned.Template().URL)
}

func TestDevelopmentStartupWithoutDevURLFailsSpawnOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Build.Dev = true
	cfg.Build.DevURL = ""
	h := hosttest.New()
	log := &errorRecorder{}

	_, err := New(cfg, log, h)
	require.NoError(t, err)

	main, ok := h.Window(window.MainArchetype)
	require.True(t, ok)
	assert.Equal(t, "index.html", main.Template().URL)

	assert.Equal(t, 1, h.Activate(window.MainArchetype, menu.NewWindowID))
	assert.Equal(t, []string{window.MainArchetype}, h.Labels())
	require.Len(t, log.errs, 1)
	assert.ErrorIs(t, log.errs[0], apperr.ErrConfiguration)
}

func TestShutdownClosesWindows(t *testing.T) {
	h := hosttest.New()
	a, err := New(testConfig(), logger.Nop(), h)
	require.NoError(t, err)
	h.Activate(window.MainArchetype, menu.NewWindowID)
	require.Len(t, h.Labels(), 2)

	a.Shutdown()
	a.Shutdown()

	assert.Empty(t, h.Labels())
}
