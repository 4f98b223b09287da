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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_full",
			filename: "recolor.yaml",
			config: `
search:
  - pink
  - rose
replace: "#00ff00"
root: ./resources
output_name: recolored
extensions: [".css", ".lua"]
ignore:
  - "**/node_modules/**"
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"pink", "rose"}, cfg.Search)
				assert.Equal(t, "pink,rose", cfg.SearchInput())
				assert.Equal(t, "#00ff00", cfg.Replace)
				assert.Equal(t, "./resources", cfg.Root)
				assert.Equal(t, "recolored", cfg.OutputName)
				assert.Equal(t, []string{".css", ".lua"}, cfg.Extensions)
				assert.Equal(t, []string{"**/node_modules/**"}, cfg.Ignore)
			},
		},
		{
			name:     "yaml_defaults",
			filename: "recolor.yml",
			config:   "search: [purple]\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultOutputName, cfg.OutputName)
				assert.Equal(t, DefaultExtensions, cfg.Extensions)
				assert.Empty(t, cfg.Replace)
			},
		},
		{
			name:        "yaml_unknown_field",
			filename:    "recolor.yaml",
			config:      "search: [pink]\ncolour: red\n",
			errContains: "parsing YAML",
		},
		{
			name:     "json",
			filename: "recolor.json",
			config:   `{"search": ["pink"], "replace": "blue", "output_name": "out"}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"pink"}, cfg.Search)
				assert.Equal(t, "blue", cfg.Replace)
				assert.Equal(t, "out", cfg.OutputName)
			},
		},
		{
			name:        "json_unknown_field",
			filename:    "recolor.json",
			config:      `{"search": ["pink"], "mode": "auto"}`,
			errContains: "parsing JSON",
		},
		{
			name:     "hcl_with_color_variables",
			filename: "recolor.hcl",
			config: `
search  = ["purple", colors.purple]
replace = colors.red
ignore  = ["vendor/**"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"purple", "#800080"}, cfg.Search)
				assert.Equal(t, "#ff0000", cfg.Replace)
				assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
			},
		},
		{
			name:     "hcl_package_doc_example",
			filename: "recolor.hcl",
			config: `
search      = ["pink", "rose"]
replace     = colors.red
root        = "./resources"
ignore      = ["node_modules", "vendor/**"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"pink", "rose"}, cfg.Search)
				assert.Equal(t, "#ff0000", cfg.Replace)
				assert.Equal(t, "./resources", cfg.Root)
				assert.Equal(t, []string{"node_modules", "vendor/**"}, cfg.Ignore)
				assert.Equal(t, DefaultOutputName, cfg.OutputName)
			},
		},
		{
			name:        "hcl_unknown_attribute",
			filename:    "recolor.hcl",
			config:      `colour = "red"`,
			errContains: "decoding HCL",
		},
		{
			name:        "unsupported_extension",
			filename:    "recolor.toml",
			config:      `search = ["pink"]`,
			errContains: "unsupported config file extension",
		},
		{
			name:        "bad_extension_value",
			filename:    "recolor.yaml",
			config:      "extensions: [css]\n",
			errContains: "must look like",
		},
		{
			name:        "bad_ignore_pattern",
			filename:    "recolor.yaml",
			config:      "ignore: [\"[a-\"]\n",
			errContains: "invalid pattern",
		},
		{
			name:        "nested_output_name",
			filename:    "recolor.yaml",
			config:      "output_name: a/b\n",
			errContains: "single directory name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))

			ctx := zerolog.Nop().WithContext(context.Background())
			cfg, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultOutputName, cfg.OutputName)
	assert.Equal(t, DefaultExtensions, cfg.Extensions)
	assert.Empty(t, cfg.Location())
	require.NoError(t, Validate(context.Background(), cfg))
}
