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
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/recolor/pkg/color"
	"gitlab.com/tozd/go/errors"
)

// ColorReplacer implements TextReplacer with a single case-insensitive pass
// over the content, so text written by one rule is never matched by another.
type ColorReplacer struct {
	target color.TargetSpec
}

// NewColorReplacer creates a new ColorReplacer
func NewColorReplacer(target color.TargetSpec) *ColorReplacer {
	return &ColorReplacer{target: target}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *ColorReplacer) ReplaceText(ctx context.Context, content io.Reader, rules ColorMap) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}
	if len(rules) == 0 {
		return result, nil
	}

	if err := r.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	ordered, re, err := r.compile(rules)
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	src := string(originalContent)
	var out strings.Builder
	last := 0
	for _, idx := range re.FindAllStringSubmatchIndex(src, -1) {
		matched := src[idx[0]:idx[1]]

		// an exact-text rule wins over a case-insensitive one
		to, ok := rules.Get(matched)
		if !ok {
			for g := range ordered {
				if idx[2*(g+1)] >= 0 {
					to = ordered[g].ToText
					break
				}
			}
		}

		out.WriteString(src[last:idx[0]])
		out.WriteString(to)
		last = idx[1]
		if to != matched {
			result.ReplacementCount++
		}
	}
	out.WriteString(src[last:])

	modified := out.String()
	result.ModifiedContent = []byte(modified)
	result.WasModified = modified != src

	zerolog.Ctx(ctx).Debug().
		Int("rules", len(rules)).
		Int("replacements", result.ReplacementCount).
		Msg("applied color map")

	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *ColorReplacer) ValidateRules(rules ColorMap) error {
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if rule.From.Text == "" {
			return errors.Errorf("rule %d: original literal is required", i)
		}
		if seen[rule.From.Text] {
			return errors.Errorf("rule %d: duplicate literal %q", i, rule.From.Text)
		}
		seen[rule.From.Text] = true
	}
	return nil
}

// compile builds one alternation with a group per rule, longest literal first.
func (r *ColorReplacer) compile(rules ColorMap) (ColorMap, *regexp.Regexp, error) {
	ordered := make(ColorMap, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].From.Text) > len(ordered[j].From.Text)
	})

	parts := make([]string, len(ordered))
	for i, rule := range ordered {
		parts[i] = "(" + r.pattern(rule.From) + ")"
	}

	re, err := regexp.Compile(`(?i)` + strings.Join(parts, "|"))
	if err != nil {
		return nil, nil, errors.Errorf("compiling pattern: %w", err)
	}
	return ordered, re, nil
}

// pattern returns the search pattern for one literal.
func (r *ColorReplacer) pattern(lit color.Literal) string {
	quoted := regexp.QuoteMeta(lit.Text)
	switch {
	case lit.Kind == color.KindName || r.target.HasName(lit.Text):
		return `\b` + quoted + `\b`
	case lit.Kind == color.KindHex:
		// keeps "#fff" from eating the head of "#ffffff"
		return quoted + `\b`
	default:
		return quoted
	}
}
