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

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/config"
	"github.com/walteh/recolor/pkg/detect"
	"github.com/walteh/recolor/pkg/log"
	"github.com/walteh/recolor/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidRoot is returned when the scanned root is missing or not a directory.
var ErrInvalidRoot = errors.Base("not a valid folder or does not exist")

// 🎯 Operation is one pass over the scanned root
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Root is the absolute scanned root
	Root string
	// Output is the absolute output root; it is never scanned
	Output string
	// Extensions are the eligible file extensions, with leading dot
	Extensions []string
	// Ignore holds doublestar patterns matched against slash separated relative paths
	Ignore []string

	Target      color.TargetSpec
	Replacement color.ReplacementSpec

	// Prompter answers the per-file questions; unused by scans
	Prompter plan.Prompter
	// Logger receives user facing output
	Logger *log.Logger
}

// 📂 ResolveRoot makes root absolute, checks it is a directory and returns the
// sibling output root named outputName.
func ResolveRoot(root, outputName string) (string, string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", "", errors.Errorf("resolving %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", "", errors.Errorf("%s: %w", root, ErrInvalidRoot)
	}

	if outputName == "" {
		outputName = config.DefaultOutputName
	}
	return abs, filepath.Join(filepath.Dir(abs), outputName), nil
}

// BaseOperation holds what every operation needs to walk the tree
type BaseOperation struct {
	Options

	detector *detect.Detector
	pattern  string
	readFile func(name string) ([]byte, error)
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	if len(opts.Extensions) == 0 {
		opts.Extensions = config.DefaultExtensions
	}
	return BaseOperation{
		Options:  opts,
		detector: detect.New(opts.Target),
		pattern:  extensionPattern(opts.Extensions),
		readFile: os.ReadFile,
	}
}

// extensionPattern builds "**/*.{js,css}" from [".js", ".css"].
func extensionPattern(exts []string) string {
	trimmed := make([]string, 0, len(exts))
	for _, e := range exts {
		trimmed = append(trimmed, strings.ToLower(strings.TrimPrefix(e, ".")))
	}
	return "**/*.{" + strings.Join(trimmed, ",") + "}"
}

// eligible reports whether a relative file path has a scanned extension.
func (op *BaseOperation) eligible(rel string) bool {
	ok, err := doublestar.Match(op.pattern, strings.ToLower(filepath.ToSlash(rel)))
	return err == nil && ok
}

// 🔍 shouldIgnore checks if a relative path matches an ignore pattern
func (op *BaseOperation) shouldIgnore(ctx context.Context, rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range op.Ignore {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("path", rel).Str("pattern", pattern).Msg("path ignored by pattern")
			return true
		}
	}
	return false
}

// fileFunc handles one eligible file. Returned errors stop the walk.
type fileFunc func(ctx context.Context, rel, abs string) error

// walk visits eligible regular files under Root in lexical order. The output
// root and ignored paths are never entered.
func (op *BaseOperation) walk(ctx context.Context, fn fileFunc) error {
	logger := zerolog.Ctx(ctx)

	return filepath.WalkDir(op.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(op.Root, path)
		if relErr != nil {
			return errors.Errorf("relative path of %s: %w", path, relErr)
		}

		if err != nil {
			if path == op.Root {
				return errors.Errorf("reading root: %w", err)
			}
			op.Logger.Errorf("Error reading %s: %v", rel, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == op.Root {
				return nil
			}
			if filepath.Clean(path) == op.Output {
				logger.Debug().Str("path", rel).Msg("ignored output directory")
				return filepath.SkipDir
			}
			if op.shouldIgnore(ctx, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !op.eligible(rel) || op.shouldIgnore(ctx, rel) {
			return nil
		}

		return fn(ctx, rel, path)
	})
}
