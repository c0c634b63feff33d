// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional recipebook CLI configuration file.
//
// The file lives at $XDG_CONFIG_HOME/recipebook/config.yaml and supplies
// defaults for global flags:
//
//	api_url: http://localhost:8001
//	format: table
//	log_level: info
//
// Flags and environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/kitchenware/recipebook/pkg/serializer"
)

// Config holds CLI defaults read from the config file.
type Config struct {
	APIURL   string `yaml:"api_url,omitempty"`
	Format   string `yaml:"format,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "recipebook", "config.yaml")
}

// Load reads the config file at path, or DefaultPath when path is empty.
// A missing default file yields an empty Config; a missing explicit path is
// an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the values that are set.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil {
			return fmt.Errorf("api_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api_url: scheme must be http or https, got %q", u.Scheme)
		}
	}
	if c.Format != "" {
		if _, err := serializer.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}
	return nil
}
