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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// MarkerFile is written once into a new output root
const MarkerFile = ".gitignore"

// markerContent marks the whole output tree as generated: ignore everything but the marker.
const markerContent = "*\n!.gitignore\n"

// 📊 FileStatus represents what a run did with a scanned file
type FileStatus int

const (
	StatusUnknown FileStatus = iota
	StatusClean              // no qualifying literal, nothing asked
	StatusWritten            // recolored copy written to the output root
	StatusSkipped            // user chose to skip; nothing written
	StatusFailed             // read or processing error; nothing written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusWritten:
		return "written"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains what is known about a processed file
type FileInfo struct {
	Path         string     // path relative to the scanned root
	Status       FileStatus // what happened
	Mode         string     // planner mode, if a prompt was shown
	Replacements int        // replacements written
	Error        error      // set when Status is StatusFailed
}

// 💾 FileManager writes files under the output root
type FileManager interface {
	BaseDir() string
	EnsureRoot(ctx context.Context) (bool, error)
	OutputPath(path string) (string, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks file status for the run summary
type StatusReporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	GetFileInfo(ctx context.Context, path string) (FileInfo, error)
	ListFiles(ctx context.Context) ([]FileInfo, error)
	Summary(ctx context.Context) map[FileStatus]int
}

// Store is everything an operation needs from the output side
type Store interface {
	FileManager
	StatusReporter
}

var _ Store = (*Manager)(nil)

// 🔧 Manager implements Store for one output root
type Manager struct {
	baseDir   string        // output root
	formatter FileFormatter // formatter for status messages

	mu    sync.RWMutex
	files map[string]FileInfo
}

// 🏭 New creates a new status manager rooted at the output directory
func New(baseDir string) *Manager {
	return &Manager{
		baseDir:   filepath.Clean(baseDir),
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// BaseDir returns the output root
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// Formatter returns the formatter used for status messages
func (m *Manager) Formatter() FileFormatter {
	return m.formatter
}

// 🏗️ EnsureRoot creates the output root. The marker file is only written when
// the root did not exist yet. It reports whether the root was created.
func (m *Manager) EnsureRoot(ctx context.Context) (bool, error) {
	info, err := os.Stat(m.baseDir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Errorf("output root %s is not a directory", m.baseDir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Errorf("checking output root: %w", err)
	}

	if err := os.MkdirAll(m.baseDir, 0755); err != nil {
		return false, errors.Errorf("creating output root: %w", err)
	}
	if err := os.WriteFile(filepath.Join(m.baseDir, MarkerFile), []byte(markerContent), 0644); err != nil {
		return false, errors.Errorf("writing %s: %w", MarkerFile, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", m.baseDir).Msg("created output root")
	return true, nil
}

// 🔒 getAbsPath returns the absolute path for a path relative to the output root.
// Paths escaping the root are rejected.
func (m *Manager) getAbsPath(path string) (string, error) {
	abs := filepath.Join(m.baseDir, path)
	if abs != m.baseDir && !strings.HasPrefix(abs, m.baseDir+string(filepath.Separator)) {
		return "", errors.Errorf("path %q escapes output root", path)
	}
	return abs, nil
}

// OutputPath returns where path is written under the output root
func (m *Manager) OutputPath(path string) (string, error) {
	return m.getAbsPath(path)
}

// FileManager interface implementation

func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath, err := m.getAbsPath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	return m.writeFileAtomic(absPath, content)
}

func (m *Manager) writeFileAtomic(absPath string, content []byte) error {
	tempPath := absPath + ".tmp"

	if err := os.WriteFile(tempPath, content, 0644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info
	zerolog.Ctx(ctx).Debug().
		Str("path", info.Path).
		Str("status", info.Status.String()).
		Msg(m.formatter.FormatFileStatus(info))
}

func (m *Manager) GetFileInfo(ctx context.Context, path string) (FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.files[path]
	if !ok {
		return FileInfo{}, errors.Errorf("file not tracked: %s", path)
	}
	return info, nil
}

// ListFiles returns tracked files sorted by path
func (m *Manager) ListFiles(ctx context.Context) ([]FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Summary counts tracked files per status
func (m *Manager) Summary(ctx context.Context) map[FileStatus]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[FileStatus]int)
	for _, info := range m.files {
		counts[info.Status]++
	}
	return counts
}
