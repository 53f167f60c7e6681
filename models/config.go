// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LaunchBehavior controls what the launcher window does once the game starts.
type LaunchBehavior string

const (
	// LaunchBehaviorHide hides the launcher window while the game runs.
	LaunchBehaviorHide LaunchBehavior = "hide"
	// LaunchBehaviorMinimize minimizes the launcher window.
	LaunchBehaviorMinimize LaunchBehavior = "minimize"
	// LaunchBehaviorKeepOpen leaves the launcher window untouched.
	LaunchBehaviorKeepOpen LaunchBehavior = "keep-open"
)

// LaunchBehaviors lists every accepted [LaunchBehavior] in UI order.
var LaunchBehaviors = []LaunchBehavior{
	LaunchBehaviorHide,
	LaunchBehaviorMinimize,
	LaunchBehaviorKeepOpen,
}

// Valid reports whether b is one of [LaunchBehaviors].
func (b LaunchBehavior) Valid() bool {
	for _, known := range LaunchBehaviors {
		if b == known {
			return true
		}
	}
	return false
}

// Config keys as they travel over the local operation channel (config:set).
const (
	KeyMinRAM         = "minRam"
	KeyMaxRAM         = "maxRam"
	KeyLaunchBehavior = "launchBehavior"
	KeyShowConsole    = "showConsole"
	KeyGamePath       = "gamePath"
	KeyInstancesPath  = "instancesPath"
	KeyJavaPaths      = "javaPaths"
)

// ErrInvalidRAMBounds is returned when a config would end up with
// minRam greater than maxRam or with a non-positive bound.
var ErrInvalidRAMBounds = errors.New("invalid ram bounds")

// ErrUnknownConfigKey is returned by [Config.SetField] for keys the
// launcher does not know about.
var ErrUnknownConfigKey = errors.New("unknown config key")

// Config is the launcher preference snapshot owned by the host process.
//
// RAM values are megabytes. JavaPaths maps a Java major version ("17",
// "21") to the runtime executable selected for it.
type Config struct {
	MinRAM         int               `json:"minRam"`
	MaxRAM         int               `json:"maxRam"`
	LaunchBehavior LaunchBehavior    `json:"launchBehavior"`
	ShowConsole    bool              `json:"showConsole"`
	GamePath       string            `json:"gamePath"`
	InstancesPath  string            `json:"instancesPath"`
	JavaPaths      map[string]string `json:"javaPaths"`
}

// DefaultConfig returns the snapshot written on first run.
func DefaultConfig() Config {
	return Config{
		MinRAM:         1024,
		MaxRAM:         4096,
		LaunchBehavior: LaunchBehaviorHide,
		ShowConsole:    false,
		JavaPaths:      map[string]string{},
	}
}

// Validate checks the minRam <= maxRam invariant and the enum fields.
func (c Config) Validate() error {
	if c.MinRAM <= 0 || c.MaxRAM <= 0 || c.MinRAM > c.MaxRAM {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRAMBounds, c.MinRAM, c.MaxRAM)
	}
	if c.LaunchBehavior != "" && !c.LaunchBehavior.Valid() {
		return fmt.Errorf("invalid launch behavior %q", c.LaunchBehavior)
	}
	return nil
}

// SetField decodes raw into the field addressed by key. The receiver is left
// untouched when decoding fails.
func (c *Config) SetField(key string, raw json.RawMessage) error {
	var err error
	switch key {
	case KeyMinRAM:
		err = json.Unmarshal(raw, &c.MinRAM)
	case KeyMaxRAM:
		err = json.Unmarshal(raw, &c.MaxRAM)
	case KeyLaunchBehavior:
		var b LaunchBehavior
		if err = json.Unmarshal(raw, &b); err == nil {
			if !b.Valid() {
				return fmt.Errorf("invalid launch behavior %q", b)
			}
			c.LaunchBehavior = b
		}
	case KeyShowConsole:
		err = json.Unmarshal(raw, &c.ShowConsole)
	case KeyGamePath:
		err = json.Unmarshal(raw, &c.GamePath)
	case KeyInstancesPath:
		err = json.Unmarshal(raw, &c.InstancesPath)
	case KeyJavaPaths:
		paths := map[string]string{}
		if err = json.Unmarshal(raw, &paths); err == nil {
			c.JavaPaths = paths
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}
	if err != nil {
		return fmt.Errorf("decode value for %s: %w", key, err)
	}
	return nil
}

// Field returns the current value addressed by key, or false for unknown keys.
func (c Config) Field(key string) (any, bool) {
	switch key {
	case KeyMinRAM:
		return c.MinRAM, true
	case KeyMaxRAM:
		return c.MaxRAM, true
	case KeyLaunchBehavior:
		return c.LaunchBehavior, true
	case KeyShowConsole:
		return c.ShowConsole, true
	case KeyGamePath:
		return c.GamePath, true
	case KeyInstancesPath:
		return c.InstancesPath, true
	case KeyJavaPaths:
		return c.JavaPaths, true
	}
	return nil, false
}

// Clone returns a deep copy, JavaPaths included.
func (c Config) Clone() Config {
	out := c
	out.JavaPaths = make(map[string]string, len(c.JavaPaths))
	for k, v := range c.JavaPaths {
		out.JavaPaths[k] = v
	}
	return out
}
