package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"snapview/internal/apperr"
	"snapview/internal/buildmode"
	"snapview/internal/logger"
	"snapview/internal/window"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//go:embed default.toml
var defaultTOML []byte

const (
	PresetAuto    = "auto"
	PresetDefault = "default"
	PresetNone    = "none"
)

// Config holds application configuration.
type Config struct {
	App     AppConfig
	Build   BuildConfig
	Log     LogConfig
	Menu    MenuConfig
	Windows WindowsConfig
}

type AppConfig struct {
	ID   string
	Name string
}

// BuildConfig holds the build-mode switches. Dev defaults to the `dev`
// build tag.
type BuildConfig struct {
	Dev    bool
	DevURL string `mapstructure:"dev_url"`
}

type LogConfig struct {
	Level string
	JSON  bool
}

type MenuConfig struct {
	Preset string
}

type WindowsConfig struct {
	LabelStrategy string            `mapstructure:"label_strategy"`
	Templates     []window.Template `mapstructure:"templates"`
}

// Flags registers the command-line overrides understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a TOML config file merged over the defaults")
	fs.Bool("dev", buildmode.Development, "development mode: load window content from build.dev_url")
	fs.String("dev-url", "", "development content URL")
	fs.String("log-level", "", "log verbosity (debug, info, warn, error)")
	fs.String("label-strategy", "", "window label allocator (sequence, clock, uuid)")
	fs.String("menu-preset", "", "menu present before setup (auto, default, none)")
}

// Load reads the embedded defaults, merges the optional config file and
// applies environment and flag overrides. Env var overrides use prefix
// SNAPVIEW_.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("build.dev", buildmode.Development)
	v.SetDefault("log.json", false)

	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(defaultTOML)); err != nil {
		return Config{}, fmt.Errorf("read default config: %w", err)
	}

	v.SetEnvPrefix("SNAPVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		bind := map[string]string{
			"build.dev":              "dev",
			"build.dev_url":          "dev-url",
			"log.level":              "log-level",
			"windows.label_strategy": "label-strategy",
			"menu.preset":            "menu-preset",
		}
		for key, name := range bind {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	path := os.Getenv("SNAPVIEW_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: read %s: %w", apperr.ErrConfiguration, path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshal config: %w", apperr.ErrConfiguration, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field-level constraints. The presence of the main template
// is left to the registry lookup at startup.
func (c Config) Validate() error {
	if len(c.Windows.Templates) == 0 {
		return fmt.Errorf("%w: no window templates defined", apperr.ErrConfiguration)
	}
	for i, t := range c.Windows.Templates {
		if t.Label == "" {
			return fmt.Errorf("%w: windows.templates[%d]: label is required", apperr.ErrConfiguration, i)
		}
		if t.URL == "" {
			return fmt.Errorf("%w: windows.templates[%d] %q: url is required", apperr.ErrConfiguration, i, t.Label)
		}
		if t.Width < 0 || t.Height < 0 {
			return fmt.Errorf("%w: windows.templates[%d] %q: negative size", apperr.ErrConfiguration, i, t.Label)
		}
	}
	if _, err := window.NewAllocator(c.Windows.LabelStrategy); err != nil {
		return err
	}
	switch c.Menu.Preset {
	case PresetAuto, PresetDefault, PresetNone, "":
	default:
		return fmt.Errorf("%w: unknown menu preset %q", apperr.ErrConfiguration, c.Menu.Preset)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrConfiguration, err)
	}
	return nil
}

// WantsDefaultMenu resolves the menu preset for the given GOOS. macOS always
// presents an application menu, so auto means default there.
func (c Config) WantsDefaultMenu(goos string) bool {
	switch c.Menu.Preset {
	case PresetDefault:
		return true
	case PresetNone:
		return false
	default:
		return goos == "darwin"
	}
}
