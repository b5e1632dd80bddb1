// Copyright (c) 2026, pkgsnap authors.  All rights reserved.
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

package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkgsnap/pkgsnap/pkg/defaults"
)

// Config captures the persistent defaults for snapshot runs. Command-line
// flags override whatever the file sets.
type Config struct {
	// Format is the output rendering: "text" or "json".
	Format string `yaml:"format"`
	// Compress gzips the rendered artifact.
	Compress bool `yaml:"compress"`
	// Detailed enables per-package detail enrichment.
	Detailed bool `yaml:"detailed"`
	// Timeout bounds each external command, in seconds.
	Timeout int `yaml:"timeout"`
	// OutputDir is where default-named artifacts land; empty means the
	// working directory.
	OutputDir string `yaml:"output_dir"`
	// LogLevel sets the structured-logger threshold (DEBUG, INFO, WARN,
	// ERROR).
	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Format:   "text",
		Compress: false,
		Detailed: false,
		Timeout:  int(defaults.CommandTimeout / time.Second),
		LogLevel: "INFO",
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration. An empty path always yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to the baseline when the YAML omits
// them or zeroes them out.
func (c *Config) ApplyDefaults() {
	base := Default()

	if c.Format == "" {
		c.Format = base.Format
	}
	if c.Timeout == 0 {
		c.Timeout = base.Timeout
	}
	if c.LogLevel == "" {
		c.LogLevel = base.LogLevel
	}
}

// Validate rejects values no pipeline stage could honor.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q (want text or json)", c.Format)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %d", c.Timeout)
	}
	return nil
}

// TimeoutDuration returns the per-command timeout as a duration.
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Marshal returns the YAML encoding of the configuration.
func (c Config) Marshal() ([]byte, error) {
	buf, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf, nil
}
