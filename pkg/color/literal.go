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

// 🏷️ Kind is the textual shape of a color literal found in a file
type Kind int

const (
	KindUnknown    Kind = iota
	KindName            // pink
	KindHex             // #ffc0cb, #fcb
	KindTuple           // {255, 192, 203, 255}
	KindFunctional      // rgb(255, 192, 203), rgba(255, 192, 203, 0.5)
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindHex:
		return "hex"
	case KindTuple:
		return "tuple"
	case KindFunctional:
		return "functional"
	default:
		return "unknown"
	}
}

// 📍 Literal is an exact substring of file text that denotes a color.
//
// The shape is decided once, when the literal is detected, and the rewriter
// dispatches on Kind instead of re-matching the text.
type Literal struct {
	Text string // exact text as it appears in the file
	Kind Kind
	RGB  RGB // zero for names; names are matched by token, not by value

	// Alpha is the verbatim alpha field of tuples and functional literals.
	// HasAlpha distinguishes "rgb(1, 2, 3)" from "rgba(1, 2, 3, 1)".
	Alpha    string
	HasAlpha bool
}

// NameLiteral builds a KindName literal.
func NameLiteral(text string) Literal {
	return Literal{Text: text, Kind: KindName}
}

// HexLiteral builds a KindHex literal.
func HexLiteral(text string, rgb RGB) Literal {
	return Literal{Text: text, Kind: KindHex, RGB: rgb}
}

// TupleLiteral builds a KindTuple literal. Tuples always carry their fourth field.
func TupleLiteral(text string, rgb RGB, alpha string) Literal {
	return Literal{Text: text, Kind: KindTuple, RGB: rgb, Alpha: alpha, HasAlpha: alpha != ""}
}

// FunctionalLiteral builds a KindFunctional literal; alpha is empty for the rgb() form.
func FunctionalLiteral(text string, rgb RGB, alpha string, hasAlpha bool) Literal {
	return Literal{Text: text, Kind: KindFunctional, RGB: rgb, Alpha: alpha, HasAlpha: hasAlpha}
}
