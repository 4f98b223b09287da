// Copyright 2025 walteh LLC
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
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultReplace is offered when the user gives no replacement color
	DefaultReplace = "red"
	// DefaultOutputName is the output directory created next to the scanned root
	DefaultOutputName = "result-uhq"
)

// DefaultExtensions are the resource file types scanned when none are configured.
var DefaultExtensions = []string{".js", ".css", ".lua", ".json", ".html", ".xml", ".yml", ".yaml"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is a recolor run file. Every field is optional; empty fields are
// prompted for or defaulted.
type Config struct {
	Search     []string `json:"search,omitempty" yaml:"search,omitempty" hcl:"search,optional"`
	Replace    string   `json:"replace,omitempty" yaml:"replace,omitempty" hcl:"replace,optional"`
	Root       string   `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	OutputName string   `json:"output_name,omitempty" yaml:"output_name,omitempty" hcl:"output_name,optional"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Ignore     []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`

	location string
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🏭 Default returns a config with only defaults set
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills the fields that have a default and are unset.
func (cfg *Config) ApplyDefaults() {
	if cfg.OutputName == "" {
		cfg.OutputName = DefaultOutputName
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), DefaultExtensions...)
	}
}

// SearchInput joins Search the way it would be typed at the prompt.
func (cfg *Config) SearchInput() string {
	return strings.Join(cfg.Search, ",")
}

// 🎯 Load loads the configuration from a file and applies defaults
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	cfg, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path
	cfg.ApplyDefaults()

	if err := Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func Validate(ctx context.Context, cfg *Config) error {
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, `/\*{}`) {
			return errors.Errorf("extensions[%d]: %q must look like \".css\"", i, ext)
		}
	}

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore[%d]: invalid pattern %q", i, pattern)
		}
	}

	if cfg.OutputName != "" {
		if cfg.OutputName != filepath.Base(cfg.OutputName) || cfg.OutputName == "." || cfg.OutputName == ".." {
			return errors.Errorf("output_name %q must be a single directory name", cfg.OutputName)
		}
	}

	for i, s := range cfg.Search {
		if strings.TrimSpace(s) == "" {
			return errors.Errorf("search[%d]: empty color", i)
		}
	}

	return nil
}
