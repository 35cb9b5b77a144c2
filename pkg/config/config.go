// Package config loads timeline settings from .timeline.yaml and TIMELINE_
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/majdbaddour/timeline/pkg/control"
	"github.com/majdbaddour/timeline/pkg/throttle"
)

const (
	keyPath        = "path"
	keyWidth       = "width"
	keyZoomFactor  = "zoom_factor"
	keyResizeDelay = "resize_delay"
	keyTimezone    = "timezone"
	keyDebug       = "debug"
)

// Config is the resolved configuration.
type Config struct {
	// Path is the store directory, home expanded.
	Path string
	// Width is the viewport width used outside the terminal UI.
	Width       float64
	ZoomFactor  float64
	ResizeDelay time.Duration
	Location    *time.Location
	// Debug is a log file, empty to discard logs.
	Debug string
}

// BasePath implements store.Config.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads the configuration. The config file is looked up in
// $TIMELINE_CONFIG_PATH, then the working directory, then the home directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPath, "~/.timeline")
	v.SetDefault(keyWidth, 600)
	v.SetDefault(keyZoomFactor, control.DefaultZoomFactor)
	v.SetDefault(keyResizeDelay, throttle.DefaultDelay)
	v.SetDefault(keyTimezone, "")
	v.SetDefault(keyDebug, "")

	v.SetConfigName(".timeline") // .yaml is implicit
	v.SetEnvPrefix("TIMELINE")
	v.AutomaticEnv()

	if override := os.Getenv("TIMELINE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	path, err := homedir.Expand(v.GetString(keyPath))
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", keyPath, err)
	}

	loc := time.Local
	if tz := v.GetString(keyTimezone); tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("%s: %w", keyTimezone, err)
		}
	}

	c := &Config{
		Path:        path,
		Width:       v.GetFloat64(keyWidth),
		ZoomFactor:  v.GetFloat64(keyZoomFactor),
		ResizeDelay: v.GetDuration(keyResizeDelay),
		Location:    loc,
		Debug:       v.GetString(keyDebug),
	}
	if c.Width <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %v", keyWidth, c.Width)
	}
	if c.ZoomFactor <= 1 {
		return nil, fmt.Errorf("%s must be above 1, got %v", keyZoomFactor, c.ZoomFactor)
	}
	if c.ResizeDelay <= 0 {
		c.ResizeDelay = throttle.DefaultDelay
	}
	return c, nil
}
