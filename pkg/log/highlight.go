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
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var literalStyle = color.New(color.BgMagenta, color.FgWhite, color.Bold)

var wordLike = regexp.MustCompile(`^\w+$`)

// Highlight marks every occurrence of literals in line. Word-like literals only
// match whole words; matching is case-insensitive.
func Highlight(line string, literals []string) string {
	if len(literals) == 0 {
		return line
	}

	sorted := append([]string(nil), literals...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, 0, len(sorted))
	for _, lit := range sorted {
		if lit == "" {
			continue
		}
		p := regexp.QuoteMeta(lit)
		if wordLike.MatchString(lit) {
			p = `\b` + p + `\b`
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return line
	}

	re := regexp.MustCompile(`(?i)(?:` + strings.Join(parts, "|") + `)`)
	return re.ReplaceAllStringFunc(line, func(m string) string {
		return literalStyle.Sprint(m)
	})
}

// Swatch renders a small block filled with hex next to label.
func Swatch(hex, label string) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render("    ")
	return fmt.Sprintf("%s %s", block, label)
}

// 📝 Swatches prints the target and replacement colors side by side
func (l *Logger) Swatches(targetHex, targetLabel, replaceHex, replaceLabel string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s  %s  %s\n",
		Swatch(targetHex, targetLabel),
		color.New(color.Faint).Sprint("→"),
		Swatch(replaceHex, replaceLabel))
}
