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

package color

import (
	"slices"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrNoSearchColors is returned when the search input holds no usable token.
var ErrNoSearchColors = errors.Base("no colors to search for were specified")

var (
	// FallbackTargetRGB drives numeric detection when the first search token does not parse.
	FallbackTargetRGB = RGB{128, 0, 128}

	// DefaultReplacement is used when the replacement token does not parse.
	DefaultReplacement = ReplacementSpec{RGB: RGB{255, 0, 0}, Hex: "#ff0000", Name: "red"}
)

// 🎯 TargetSpec is what the user searches for
type TargetSpec struct {
	Tokens []string // every trimmed, lowercased search token in input order
	Names  []string // the non-hex tokens; the only ones matched by name
	RGB    RGB      // reference value for numeric proximity tests

	// Approximate is set when RGB is FallbackTargetRGB because the first token did not parse.
	// Name matching is unaffected.
	Approximate bool
}

// NewTargetSpec splits a comma separated search input into a TargetSpec.
func NewTargetSpec(input string) (TargetSpec, error) {
	var spec TargetSpec
	for _, raw := range strings.Split(input, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" || slices.Contains(spec.Tokens, tok) {
			continue
		}
		spec.Tokens = append(spec.Tokens, tok)
		if !strings.HasPrefix(tok, "#") {
			spec.Names = append(spec.Names, tok)
		}
	}

	if len(spec.Tokens) == 0 {
		return TargetSpec{}, errors.WithStack(ErrNoSearchColors)
	}

	rgb, ok := Parse(spec.Tokens[0])
	if !ok {
		rgb = FallbackTargetRGB
		spec.Approximate = true
	}
	spec.RGB = rgb

	return spec, nil
}

// HasName reports whether token is one of the target names, case-insensitively.
func (t TargetSpec) HasName(token string) bool {
	return slices.Contains(t.Names, strings.ToLower(token))
}

// String returns the tokens joined the way the user typed them
func (t TargetSpec) String() string {
	return strings.Join(t.Tokens, ", ")
}

// 🌈 ReplacementSpec is the color substituted in, in every form the rewriter needs
type ReplacementSpec struct {
	RGB  RGB
	Hex  string // always "#rrggbb", lowercase
	Name string // table name when one matches RGB exactly, else the raw user token

	// Fallback is set when the user token did not parse and DefaultReplacement was used.
	Fallback bool
}

// NewReplacementSpec derives the replacement forms from a single user token.
func NewReplacementSpec(token string) ReplacementSpec {
	token = strings.TrimSpace(token)
	rgb, ok := Parse(token)
	if !ok {
		spec := DefaultReplacement
		spec.Fallback = true
		return spec
	}

	spec := ReplacementSpec{RGB: rgb, Hex: rgb.Hex(), Name: token}
	if name, ok := NameOf(rgb); ok {
		spec.Name = name
	}
	return spec
}
