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

// Package plan decides, per file, which detected literals get replaced and with what.
package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/detect"
	"github.com/walteh/recolor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter asks the user one question at a time and blocks for the answer
type Prompter interface {
	// Select returns one of options
	Select(ctx context.Context, message string, options []string, defaultOption string) (string, error)
	// Confirm returns a yes/no answer
	Confirm(ctx context.Context, message string, defaultValue bool) (bool, error)
	// Input returns free text; an empty answer is returned as is
	Input(ctx context.Context, message string, defaultValue string) (string, error)
}

// 🔀 Mode is how a file's detections are turned into a color map
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeManualMap  Mode = "manual_map"
	ModeManualLine Mode = "manual_line"
	ModeSkip       Mode = "skip"
)

// Modes lists every mode in prompt order.
var Modes = []Mode{ModeAuto, ModeManualMap, ModeManualLine, ModeSkip}

// Label is the text shown for a mode in the file prompt.
func (m Mode) Label() string {
	switch m {
	case ModeAuto:
		return "🔄 Replace every detected color automatically (format preserved)"
	case ModeManualMap:
		return "🎨 Choose a replacement for each distinct color"
	case ModeManualLine:
		return "✏️  Confirm each replacement line by line"
	case ModeSkip:
		return "⏭️  Skip this file"
	default:
		return string(m)
	}
}

// ParseMode accepts a mode name or its label.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if s == string(m) || s == m.Label() {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown mode %q", s)
}

// Planner builds color maps for one run. Target and replacement never change during a run.
type Planner struct {
	prompter    Prompter
	target      color.TargetSpec
	replacement color.ReplacementSpec
}

// 🏭 New creates a new planner
func New(prompter Prompter, target color.TargetSpec, replacement color.ReplacementSpec) *Planner {
	return &Planner{
		prompter:    prompter,
		target:      target,
		replacement: replacement,
	}
}

// Suggest returns the format-preserving default replacement for lit.
func (p *Planner) Suggest(lit color.Literal) string {
	return text.DefaultReplacement(lit, p.target, p.replacement)
}

// ChooseMode asks what to do with the file at path.
func (p *Planner) ChooseMode(ctx context.Context, path string) (Mode, error) {
	options := make([]string, len(Modes))
	for i, m := range Modes {
		options[i] = m.Label()
	}

	answer, err := p.prompter.Select(ctx, fmt.Sprintf("What do you want to do with %s?", path), options, ModeAuto.Label())
	if err != nil {
		return "", errors.Errorf("choosing mode: %w", err)
	}
	return ParseMode(answer)
}

// 🗺️ Build turns detections into a color map according to mode. ModeSkip returns an empty map.
func (p *Planner) Build(ctx context.Context, mode Mode, detections detect.Detections) (text.ColorMap, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("mode", string(mode)).Int("lines", len(detections)).Msg("building color map")

	switch mode {
	case ModeSkip:
		return nil, nil
	case ModeAuto:
		return text.DefaultColorMap(detections.Literals(), p.target, p.replacement), nil
	case ModeManualMap:
		return p.buildPerColor(ctx, detections)
	case ModeManualLine:
		return p.buildPerLine(ctx, detections)
	default:
		return nil, errors.Errorf("unknown mode %q", mode)
	}
}

// buildPerColor asks once per distinct literal. Every literal gets an entry.
func (p *Planner) buildPerColor(ctx context.Context, detections detect.Detections) (text.ColorMap, error) {
	var m text.ColorMap
	for _, lit := range detections.Literals() {
		suggestion := p.Suggest(lit)
		answer, err := p.prompter.Input(ctx,
			fmt.Sprintf("Replace %s with (empty for %s):", lit.Text, suggestion), suggestion)
		if err != nil {
			return nil, errors.Errorf("asking replacement for %s: %w", lit.Text, err)
		}
		m.Set(lit, orDefault(answer, suggestion))
	}
	return m, nil
}

// buildPerLine asks for every literal on every line. Declined literals are left out.
func (p *Planner) buildPerLine(ctx context.Context, detections detect.Detections) (text.ColorMap, error) {
	var m text.ColorMap
	for _, d := range detections {
		for _, lit := range d.Literals {
			suggestion := p.Suggest(lit)
			ok, err := p.prompter.Confirm(ctx,
				fmt.Sprintf("L%d: replace %s (suggested: %s)?", d.Number, lit.Text, suggestion), true)
			if err != nil {
				return nil, errors.Errorf("confirming %s on line %d: %w", lit.Text, d.Number, err)
			}
			if !ok {
				continue
			}

			answer, err := p.prompter.Input(ctx,
				fmt.Sprintf("Enter the new color (empty for %s):", suggestion), "")
			if err != nil {
				return nil, errors.Errorf("asking replacement for %s on line %d: %w", lit.Text, d.Number, err)
			}
			m.Set(lit, orDefault(answer, suggestion))
		}
	}
	return m, nil
}

func orDefault(answer, suggestion string) string {
	if strings.TrimSpace(answer) == "" {
		return suggestion
	}
	return strings.TrimSpace(answer)
}
