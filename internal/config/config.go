package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/jask/drawerkit/core/drawer"
)

// Config holds application configuration.
type Config struct {
	Drawer  DrawerConfig  `mapstructure:"drawer" toml:"drawer"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui"`
	Journal JournalConfig `mapstructure:"journal" toml:"journal"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

// DrawerConfig mirrors drawer.Configuration with file-friendly keys.
type DrawerConfig struct {
	SupportsPartialExpansion bool    `mapstructure:"supports_partial_expansion" toml:"supports_partial_expansion"`
	DismissesInStages        bool    `mapstructure:"dismisses_in_stages" toml:"dismisses_in_stages"`
	UpperMarkGap             float64 `mapstructure:"upper_mark_gap" toml:"upper_mark_gap"`
	LowerMarkGap             float64 `mapstructure:"lower_mark_gap" toml:"lower_mark_gap"`
	FlickSpeedThreshold      float64 `mapstructure:"flick_speed_threshold" toml:"flick_speed_threshold"`
	MaximumCornerRadius      float64 `mapstructure:"maximum_corner_radius" toml:"maximum_corner_radius"`
	DurationSeconds          float64 `mapstructure:"duration_seconds" toml:"duration_seconds"`
	DurationProportional     bool    `mapstructure:"duration_proportional" toml:"duration_proportional"`
	TimingCurve              string  `mapstructure:"timing_curve" toml:"timing_curve"`
	DismissOnOutsideTaps     bool    `mapstructure:"dismiss_on_outside_taps" toml:"dismiss_on_outside_taps"`
	OutsideTapCount          int     `mapstructure:"outside_tap_count" toml:"outside_tap_count"`
	ExpandOnDrawerTaps       bool    `mapstructure:"expand_on_drawer_taps" toml:"expand_on_drawer_taps"`
	DrawerTapCount           int     `mapstructure:"drawer_tap_count" toml:"drawer_tap_count"`
	Draggable                bool    `mapstructure:"draggable" toml:"draggable"`
	PartialHeight            float64 `mapstructure:"partial_height" toml:"partial_height"`
}

// UIConfig holds terminal host settings.
type UIConfig struct {
	FPS        int    `mapstructure:"fps" toml:"fps"`
	ShowHandle bool   `mapstructure:"show_handle" toml:"show_handle"`
	Accent     string `mapstructure:"accent" toml:"accent"`
}

// JournalConfig holds the sqlite journal settings. An empty path disables it.
type JournalConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

type LogConfig struct {
	Path  string `mapstructure:"path" toml:"path"`
	Level string `mapstructure:"level" toml:"level"`
}

func newViper() *viper.Viper {
	v := viper.New()
	home := os.Getenv("HOME")
	d := drawer.DefaultConfiguration()

	v.SetDefault("drawer.supports_partial_expansion", d.SupportsPartialExpansion)
	v.SetDefault("drawer.dismisses_in_stages", d.DismissesInStages)
	v.SetDefault("drawer.upper_mark_gap", d.UpperMarkGap)
	v.SetDefault("drawer.lower_mark_gap", d.LowerMarkGap)
	v.SetDefault("drawer.flick_speed_threshold", d.FlickSpeedThreshold)
	v.SetDefault("drawer.maximum_corner_radius", d.MaximumCornerRadius)
	v.SetDefault("drawer.duration_seconds", d.DurationInSeconds)
	v.SetDefault("drawer.duration_proportional", d.DurationIsProportionalToDistanceTraveled)
	v.SetDefault("drawer.timing_curve", string(d.TimingCurve))
	v.SetDefault("drawer.dismiss_on_outside_taps", d.IsDismissableByOutsideDrawerTaps)
	v.SetDefault("drawer.outside_tap_count", d.NumberOfTapsForOutsideDrawerDismissal)
	v.SetDefault("drawer.expand_on_drawer_taps", d.IsFullyPresentableByDrawerTaps)
	v.SetDefault("drawer.drawer_tap_count", d.NumberOfTapsForFullDrawerPresentation)
	v.SetDefault("drawer.draggable", d.IsDrawerDraggable)
	v.SetDefault("drawer.partial_height", 10)
	v.SetDefault("ui.fps", 60)
	v.SetDefault("ui.show_handle", true)
	v.SetDefault("ui.accent", "#BD93F9")
	v.SetDefault("journal.path", filepath.Join(home, ".local", "share", "drawerkit", "journal.db"))
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "drawerkit", "drawerkit.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	if cfgPath := Path(); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	}

	v.SetEnvPrefix("DRAWERKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Path is $DRAWERKIT_CONFIG or ~/.config/drawerkit/config.toml.
func Path() string {
	if p := os.Getenv("DRAWERKIT_CONFIG"); p != "" {
		return p
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "drawerkit", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DRAWERKIT_.
func Load() (Config, error) {
	v := newViper()
	if err := readInConfig(v); err != nil {
		return Config{}, err
	}
	return decode(v)
}

// readInConfig reads the config file. A missing file means defaults; a file
// that exists but does not parse is an error.
func readInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// Default returns the built-in defaults with env overrides applied, ignoring
// any config file.
func Default() Config {
	c, err := decode(newViper())
	if err != nil {
		return Config{}
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Watch calls fn with the freshly decoded config every time the config file
// is written or created. A file missing at startup is picked up once it
// appears. It returns once the watcher is installed.
func Watch(fn func(Config, error)) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("watch config: no config path")
	}
	// the watcher follows the directory, so it has to exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	v := newViper()
	if err := readInConfig(v); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := readInConfig(v); err != nil {
			fn(Config{}, err)
			return
		}
		fn(decode(v))
	})
	v.WatchConfig()
	return nil
}

// DrawerConfiguration converts and validates the drawer section.
func (c Config) DrawerConfiguration() (drawer.Configuration, error) {
	curve, err := drawer.ParseCurve(c.Drawer.TimingCurve)
	if err != nil {
		return drawer.Configuration{}, err
	}
	dc := drawer.Configuration{
		SupportsPartialExpansion:                 c.Drawer.SupportsPartialExpansion,
		DismissesInStages:                        c.Drawer.DismissesInStages,
		UpperMarkGap:                             c.Drawer.UpperMarkGap,
		LowerMarkGap:                             c.Drawer.LowerMarkGap,
		FlickSpeedThreshold:                      c.Drawer.FlickSpeedThreshold,
		MaximumCornerRadius:                      c.Drawer.MaximumCornerRadius,
		DurationInSeconds:                        c.Drawer.DurationSeconds,
		DurationIsProportionalToDistanceTraveled: c.Drawer.DurationProportional,
		TimingCurve:                              curve,
		IsDismissableByOutsideDrawerTaps:         c.Drawer.DismissOnOutsideTaps,
		NumberOfTapsForOutsideDrawerDismissal:    c.Drawer.OutsideTapCount,
		IsFullyPresentableByDrawerTaps:           c.Drawer.ExpandOnDrawerTaps,
		NumberOfTapsForFullDrawerPresentation:    c.Drawer.DrawerTapCount,
		IsDrawerDraggable:                        c.Drawer.Draggable,
	}
	if err := dc.Validate(); err != nil {
		return drawer.Configuration{}, err
	}
	return dc, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes the provided config to Path(), creating the directory if needed.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("save config: no config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	return Encode(f, cfg)
}
