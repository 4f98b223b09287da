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
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// 🎨 RGB is a color value with each channel in [0,255]
type RGB struct {
	R, G, B int
}

// Hex returns the zero-padded lowercase six digit form, e.g. "#ff00aa"
func (c RGB) Hex() string {
	return c.toColorful().Hex()
}

// toColorful converts c; channels outside [0,255] are clamped.
func (c RGB) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(clamp(c.R)) / 255.0,
		G: float64(clamp(c.G)) / 255.0,
		B: float64(clamp(c.B)) / 255.0,
	}
}

func clamp(v int) int {
	return max(0, min(255, v))
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Near reports whether every channel of other is strictly within tolerance of c.
func (c RGB) Near(other RGB, tolerance int) bool {
	return abs(c.R-other.R) < tolerance &&
		abs(c.G-other.G) < tolerance &&
		abs(c.B-other.B) < tolerance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// namedEntry keeps the table ordered so reverse lookups are deterministic.
type namedEntry struct {
	name string
	rgb  RGB
}

// 📚 named is the closed set of color names the tool understands
var named = []namedEntry{
	{"red", RGB{255, 0, 0}},
	{"green", RGB{0, 128, 0}},
	{"blue", RGB{0, 0, 255}},
	{"purple", RGB{128, 0, 128}},
	{"violet", RGB{238, 130, 238}},
	{"pink", RGB{255, 192, 203}},
	{"rose", RGB{255, 0, 127}},
	{"magenta", RGB{255, 0, 255}},
	{"cyan", RGB{0, 255, 255}},
	{"yellow", RGB{255, 255, 0}},
	{"black", RGB{0, 0, 0}},
	{"white", RGB{255, 255, 255}},
	{"orange", RGB{255, 165, 0}},
	{"gray", RGB{128, 128, 128}},
}

// Named returns the RGB value of a table color name. Lookup is case-insensitive.
func Named(name string) (RGB, bool) {
	name = strings.ToLower(name)
	for _, e := range named {
		if e.name == name {
			return e.rgb, true
		}
	}
	return RGB{}, false
}

// IsNamed reports whether token is a table color name.
func IsNamed(token string) bool {
	_, ok := Named(token)
	return ok
}

// NameOf returns the first table name whose value is exactly c.
func NameOf(c RGB) (string, bool) {
	for _, e := range named {
		if e.rgb == c {
			return e.name, true
		}
	}
	return "", false
}

// Names returns the table names in table order.
func Names() []string {
	out := make([]string, len(named))
	for i, e := range named {
		out[i] = e.name
	}
	return out
}

// 🔍 Parse converts a user color token (a table name, "#rgb" or "#rrggbb") to RGB.
// Functional and bracketed notations are only recognized inside scanned files, never here.
func Parse(token string) (RGB, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if strings.HasPrefix(token, "#") {
		return ParseHex(token)
	}
	return Named(token)
}

var hexToken = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// ParseHex decodes "#rgb" (each nibble duplicated) or "#rrggbb".
func ParseHex(hex string) (RGB, bool) {
	if !hexToken.MatchString(hex) {
		return RGB{}, false
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}
