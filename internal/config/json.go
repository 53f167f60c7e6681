// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Launcher struct {
		GamePath    string `json:"game_path"`
		ExternalDir string `json:"external_dir"`
	} `json:"launcher,omitempty"`

	Host struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"host,omitempty"`

	Backend struct {
		URL            string   `json:"url"`
		AnonKey        string   `json:"anon_key"`
		RefreshToken   string   `json:"refresh_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	UI struct {
		DebounceInterval Duration `json:"debounce_interval"`
		Username         string   `json:"username"`
		LogDir           string   `json:"log_dir"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Launcher: Launcher{
			GamePath:    jsonCfg.Launcher.GamePath,
			ExternalDir: jsonCfg.Launcher.ExternalDir,
		},
		Host: Host{
			Address:        jsonCfg.Host.Address,
			RequestTimeout: time.Duration(jsonCfg.Host.RequestTimeout),
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			AnonKey:        jsonCfg.Backend.AnonKey,
			RefreshToken:   jsonCfg.Backend.RefreshToken,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Workers: Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		UI: UI{
			DebounceInterval: time.Duration(jsonCfg.UI.DebounceInterval),
			Username:         jsonCfg.UI.Username,
			LogDir:           jsonCfg.UI.LogDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
