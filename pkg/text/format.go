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
	"fmt"

	"github.com/walteh/recolor/pkg/color"
)

// defaultTupleAlpha is used for a tuple whose fourth field is missing.
const defaultTupleAlpha = "255"

// 🎨 DefaultReplacement renders repl in the textual shape of lit.
//
// Alpha is never taken from repl: tuples and functional literals keep the
// original alpha text verbatim, and rgb() stays rgb().
func DefaultReplacement(lit color.Literal, target color.TargetSpec, repl color.ReplacementSpec) string {
	if lit.Kind == color.KindName || color.IsNamed(lit.Text) || target.HasName(lit.Text) {
		return repl.Name
	}

	c := repl.RGB
	switch lit.Kind {
	case color.KindHex:
		return repl.Hex
	case color.KindTuple:
		alpha := lit.Alpha
		if alpha == "" {
			alpha = defaultTupleAlpha
		}
		return fmt.Sprintf("{%d, %d, %d, %s}", c.R, c.G, c.B, alpha)
	case color.KindFunctional:
		if lit.HasAlpha {
			return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, lit.Alpha)
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	default:
		return lit.Text
	}
}

// DefaultColorMap maps every literal to its DefaultReplacement.
func DefaultColorMap(lits []color.Literal, target color.TargetSpec, repl color.ReplacementSpec) ColorMap {
	var m ColorMap
	for _, lit := range lits {
		m.Set(lit, DefaultReplacement(lit, target, repl))
	}
	return m
}
