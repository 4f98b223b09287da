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

package text

import (
	"context"
	"io"

	"github.com/walteh/recolor/pkg/color"
)

// ReplacementRule maps one detected literal to the text that replaces it
type ReplacementRule struct {
	// From is the original literal; its Text is the search key
	From color.Literal

	// ToText is the replacement text, written as is
	ToText string
}

// ColorMap is the ordered set of rules for one file. Keys are exact literal texts.
type ColorMap []ReplacementRule

// Set adds or overwrites the rule for lit.
func (m *ColorMap) Set(lit color.Literal, to string) {
	for i := range *m {
		if (*m)[i].From.Text == lit.Text {
			(*m)[i].ToText = to
			return
		}
	}
	*m = append(*m, ReplacementRule{From: lit, ToText: to})
}

// Get returns the replacement text for an original literal text.
func (m ColorMap) Get(text string) (string, bool) {
	for _, r := range m {
		if r.From.Text == text {
			return r.ToText, true
		}
	}
	return "", false
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for color replacement over file content
type TextReplacer interface {
	// ReplaceText applies a color map to the content
	ReplaceText(ctx context.Context, content io.Reader, rules ColorMap) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules ColorMap) error
}
