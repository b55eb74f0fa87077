// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the settings of the command line tool from
// defaults, an optional YAML file and CANVASKIT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"

	"gioui.org/canvaskit/canvas"
	"gioui.org/canvaskit/canvas/raster"
	"gioui.org/canvaskit/fileinput"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = zerr.New("invalid configuration")

// Config holds the tool settings.
type Config struct {
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	Upload UploadConfig `mapstructure:"upload" yaml:"upload"`
	Picker PickerConfig `mapstructure:"picker" yaml:"picker"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Resize ResizeConfig `mapstructure:"resize" yaml:"resize"`
}

// WindowConfig sizes the demo window, in dp.
type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
}

// UploadConfig holds the file input rules.
type UploadConfig struct {
	MaxSize int64    `mapstructure:"max_size" yaml:"max_size"`
	Types   []string `mapstructure:"types" yaml:"types"`
}

// PickerConfig holds color picker settings.
type PickerConfig struct {
	Default string `mapstructure:"default" yaml:"default"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ResizeConfig holds batch resize settings.
type ResizeConfig struct {
	Filter  string `mapstructure:"filter" yaml:"filter"`
	Workers int    `mapstructure:"workers" yaml:"workers"`
}

// Rules returns the upload rules.
func (c Config) Rules() fileinput.Rules {
	return fileinput.Rules{MaxSize: c.Upload.MaxSize, Types: c.Upload.Types}
}

// Load reads the configuration. If path is empty, config.yaml in the
// user configuration directory is read if it exists.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "canvaskit")
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("upload.max_size", fileinput.DefaultRules.MaxSize)
	v.SetDefault("upload.types", fileinput.DefaultRules.Types)
	v.SetDefault("picker.default", "#3f51b5")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("resize.filter", "approxbilinear")
	v.SetDefault("resize.workers", 4)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "canvaskit"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CANVASKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, zerr.With(zerr.Wrap(err, "read config"), "path", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, zerr.Wrap(err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return zerr.With(zerr.Wrap(ErrInvalid, "validate config"), "window", c.Window)
	case c.Upload.MaxSize <= 0:
		return zerr.With(zerr.Wrap(ErrInvalid, "validate config"), "upload.max_size", c.Upload.MaxSize)
	case len(c.Upload.Types) == 0:
		return zerr.With(zerr.Wrap(ErrInvalid, "validate config"), "upload.types", c.Upload.Types)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return zerr.With(zerr.Wrap(ErrInvalid, "validate config"), "log.format", c.Log.Format)
	case c.Resize.Workers <= 0:
		return zerr.With(zerr.Wrap(ErrInvalid, "validate config"), "resize.workers", c.Resize.Workers)
	}
	if _, err := canvas.ParseColor(c.Picker.Default); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", ErrInvalid, err), "picker.default", c.Picker.Default)
	}
	if _, err := raster.ScalerByName(c.Resize.Filter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
