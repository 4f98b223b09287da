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

// Package prompt asks the user questions on the terminal.
package prompt

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💬 Terminal is a pterm backed plan.Prompter
type Terminal struct {
	maxHeight int
}

// NewTerminal creates a new terminal prompter
func NewTerminal() *Terminal {
	return &Terminal{maxHeight: 6}
}

// Select shows an interactive list and returns the chosen option.
func (t *Terminal) Select(ctx context.Context, message string, options []string, defaultOption string) (string, error) {
	answer, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(defaultOption).
		WithMaxHeight(t.maxHeight).
		Show(message)
	if err != nil {
		return "", errors.Errorf("select prompt: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("prompt", message).Str("answer", answer).Msg("select answered")
	return answer, nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return false, errors.Errorf("confirm prompt: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("prompt", message).Bool("answer", answer).Msg("confirm answered")
	return answer, nil
}

// Input reads one line of free text.
func (t *Terminal) Input(ctx context.Context, message string, defaultValue string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return "", errors.Errorf("input prompt: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("prompt", message).Str("answer", answer).Msg("input answered")
	return answer, nil
}
