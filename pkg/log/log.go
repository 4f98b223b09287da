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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 2  // spaces to indent file entries
	lineNumWidth = 4  // width of the line number column
	nameWidth    = 40 // width for the file path
	statusWidth  = 10 // width for status text
)

// 🎯 FileOutcome is what happened to one scanned file
type FileOutcome struct {
	Path         string // path relative to the scanned root
	Status       string // written, skipped, failed
	Mode         string // planner mode, empty when no prompt was shown
	Output       string // written path, if any
	Replacements int    // number of replacements made
	Err          error  // set for failed files
}

// 📦 RunOperation describes one recolor run for logging
type RunOperation struct {
	Root    string // scanned root
	Output  string // output root
	Search  string // search tokens as typed
	Replace string // replacement token as typed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog     zerolog.Logger
	console  io.Writer
	mu       sync.Mutex
	current  *RunOperation
	outcomes []FileOutcome
}

// 🏭 New creates a new logger. Console lines are mirrored into zlog.
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatOutcome formats a file outcome for display
func (l *Logger) formatOutcome(op FileOutcome) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case "written":
		symbol = '✓'
		symbolColor = color.FgGreen
	case "failed":
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	line := fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", statusWidth, op.Status)))

	switch {
	case op.Err != nil:
		line += color.New(color.FgRed).Sprint(op.Err.Error())
	case op.Status == "written":
		line += color.New(color.Faint).Sprintf("%d replaced (%s)", op.Replacements, op.Mode)
	}
	return line
}

// 📝 LogFileOutcome logs the outcome of one file
func (l *Logger) LogFileOutcome(ctx context.Context, op FileOutcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.outcomes = append(l.outcomes, op)

	fmt.Fprintln(l.console, l.formatOutcome(op))

	ev := l.zlog.Info()
	if op.Err != nil {
		ev = l.zlog.Error().Err(op.Err)
	}
	ev.Str("file", op.Path).
		Str("status", op.Status).
		Str("mode", op.Mode).
		Str("output", op.Output).
		Int("replacements", op.Replacements).
		Msg("file processed")
}

// 📝 StartRun prints the run header
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &op
	l.outcomes = nil

	fmt.Fprintf(l.console, "[scanning %s]\n", color.New(color.FgCyan).Sprint(op.Root))
	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Search),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(op.Replace))
	fmt.Fprintf(l.console, "%s %s\n\n",
		color.New(color.Faint).Sprint("output:"),
		color.New(color.Bold).Sprint(op.Output))

	l.zlog.Info().
		Str("root", op.Root).
		Str("output", op.Output).
		Str("search", op.Search).
		Str("replace", op.Replace).
		Msg("starting run")
}

// 📝 EndRun logs the run summary and returns the outcomes seen since StartRun
func (l *Logger) EndRun(ctx context.Context) []FileOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	outcomes := l.outcomes
	if l.current != nil {
		l.zlog.Info().
			Str("root", l.current.Root).
			Int("files", len(outcomes)).
			Msg("run complete")
	}

	l.current = nil
	l.outcomes = nil
	return outcomes
}

// 📝 FileHeader prints the banner shown before a file's detections
func (l *Logger) FileHeader(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "\n%s\n", color.New(color.FgYellow).Sprintf("--- %s ---", path))
	l.zlog.Info().Str("file", path).Msg("colors detected")
}

// 📝 DetectionLine prints one source line with its literals highlighted
func (l *Logger) DetectionLine(number int, line string, literals []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s%s\n",
		color.New(color.FgHiBlack).Sprintf("%*sL%*d: ", fileIndent, "", lineNumWidth, number),
		Highlight(line, literals))
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgMagenta).Sprint("recolor")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
