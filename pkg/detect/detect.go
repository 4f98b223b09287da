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

package detect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/walteh/recolor/pkg/color"
)

// Tolerance is the per-channel distance below which a numeric literal counts as the target.
const Tolerance = 50

var (
	hexPattern        = regexp.MustCompile(`#(?:[0-9a-fA-F]{3}){1,2}\b`)
	tuplePattern      = regexp.MustCompile(`\{\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\}`)
	functionalPattern = regexp.MustCompile(`rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([\d.]+)\s*)?\)`)
)

// 🔎 Detection is a line holding at least one qualifying literal
type Detection struct {
	Line     string          // line text without the trailing newline
	Number   int             // 1-based
	Literals []color.Literal // distinct by Text, in order of discovery
}

// Texts returns the literal texts of the line.
func (d Detection) Texts() []string {
	out := make([]string, len(d.Literals))
	for i, l := range d.Literals {
		out[i] = l.Text
	}
	return out
}

// Detections is the ordered result of scanning one file
type Detections []Detection

// Literals returns every distinct literal of the file in first-seen order.
func (ds Detections) Literals() []color.Literal {
	seen := make(map[string]bool)
	var out []color.Literal
	for _, d := range ds {
		for _, l := range d.Literals {
			if seen[l.Text] {
				continue
			}
			seen[l.Text] = true
			out = append(out, l)
		}
	}
	return out
}

// Count returns the total number of literal occurrences across lines.
func (ds Detections) Count() int {
	n := 0
	for _, d := range ds {
		n += len(d.Literals)
	}
	return n
}

// scanner finds candidate literals in one line. Scanners keep no state between calls.
type scanner func(line string) []color.Literal

// Detector scans text for literals matching a target
type Detector struct {
	target   color.TargetSpec
	scanners []scanner
}

// 🏭 New builds a detector for target. The name alternation is compiled here,
// from the target's names only.
func New(target color.TargetSpec) *Detector {
	d := &Detector{target: target}
	d.scanners = []scanner{
		d.scanHex,
		namesScanner(target.Names),
		d.scanTuple,
		d.scanFunctional,
	}
	return d
}

// Detect is a convenience wrapper around New(target).Detect(content).
func Detect(content string, target color.TargetSpec) Detections {
	return New(target).Detect(content)
}

// 🔍 Detect scans content line by line and returns the lines holding qualifying literals.
func (d *Detector) Detect(content string) Detections {
	var out Detections
	for i, line := range strings.Split(content, "\n") {
		seen := make(map[string]bool)
		var found []color.Literal
		for _, scan := range d.scanners {
			for _, lit := range scan(line) {
				if seen[lit.Text] {
					continue
				}
				seen[lit.Text] = true
				found = append(found, lit)
			}
		}
		if len(found) > 0 {
			out = append(out, Detection{Line: line, Number: i + 1, Literals: found})
		}
	}
	return out
}

func (d *Detector) near(rgb color.RGB) bool {
	return d.target.RGB.Near(rgb, Tolerance)
}

func (d *Detector) scanHex(line string) []color.Literal {
	var out []color.Literal
	for _, m := range hexPattern.FindAllString(line, -1) {
		rgb, ok := color.ParseHex(m)
		if ok && d.near(rgb) {
			out = append(out, color.HexLiteral(m, rgb))
		}
	}
	return out
}

func (d *Detector) scanTuple(line string) []color.Literal {
	var out []color.Literal
	for _, m := range tuplePattern.FindAllStringSubmatch(line, -1) {
		rgb := channels(m[1], m[2], m[3])
		if d.near(rgb) {
			out = append(out, color.TupleLiteral(m[0], rgb, m[4]))
		}
	}
	return out
}

func (d *Detector) scanFunctional(line string) []color.Literal {
	var out []color.Literal
	for _, idx := range functionalPattern.FindAllStringSubmatchIndex(line, -1) {
		group := func(n int) string {
			if idx[2*n] < 0 {
				return ""
			}
			return line[idx[2*n]:idx[2*n+1]]
		}
		rgb := channels(group(1), group(2), group(3))
		if !d.near(rgb) {
			continue
		}
		hasAlpha := idx[8] >= 0
		out = append(out, color.FunctionalLiteral(group(0), rgb, group(4), hasAlpha))
	}
	return out
}

// namesScanner matches the target names as whole words, case-insensitively.
func namesScanner(names []string) scanner {
	if len(names) == 0 {
		return func(string) []color.Literal { return nil }
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return func(line string) []color.Literal {
		var out []color.Literal
		for _, m := range re.FindAllString(line, -1) {
			out = append(out, color.NameLiteral(m))
		}
		return out
	}
}

// channels converts regexp captures of at most three digits; they always parse.
func channels(r, g, b string) color.RGB {
	ri, _ := strconv.Atoi(r)
	gi, _ := strconv.Atoi(g)
	bi, _ := strconv.Atoi(b)
	return color.RGB{R: ri, G: gi, B: bi}
}
