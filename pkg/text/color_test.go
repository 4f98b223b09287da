package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/detect"
)

func mustTarget(t *testing.T, input string) color.TargetSpec {
	t.Helper()
	spec, err := color.NewTargetSpec(input)
	require.NoError(t, err)
	return spec
}

func TestDefaultReplacement(t *testing.T) {
	repl := color.ReplacementSpec{RGB: color.RGB{R: 1, G: 2, B: 3}, Hex: "#010203", Name: "tiny"}
	target := mustTarget(t, "pink,lavender")

	tests := []struct {
		name string
		lit  color.Literal
		want string
	}{
		{name: "target_name", lit: color.NameLiteral("Pink"), want: "tiny"},
		{name: "unknown_target_name", lit: color.NameLiteral("lavender"), want: "tiny"},
		{name: "hex", lit: color.HexLiteral("#FFC0CB", color.RGB{R: 255, G: 192, B: 203}), want: "#010203"},
		{name: "tuple_keeps_alpha", lit: color.TupleLiteral("{10, 20, 30, 128}", color.RGB{R: 10, G: 20, B: 30}, "128"), want: "{1, 2, 3, 128}"},
		{name: "tuple_keeps_alpha_text", lit: color.TupleLiteral("{10,20,30,007}", color.RGB{R: 10, G: 20, B: 30}, "007"), want: "{1, 2, 3, 007}"},
		{name: "tuple_missing_alpha", lit: color.Literal{Text: "{10, 20, 30}", Kind: color.KindTuple}, want: "{1, 2, 3, 255}"},
		{name: "rgb_without_alpha", lit: color.FunctionalLiteral("rgb(10,20,30)", color.RGB{R: 10, G: 20, B: 30}, "", false), want: "rgb(1, 2, 3)"},
		{name: "rgba_alpha_verbatim", lit: color.FunctionalLiteral("rgba(10,20,30,0.5)", color.RGB{R: 10, G: 20, B: 30}, "0.5", true), want: "rgba(1, 2, 3, 0.5)"},
		{name: "rgba_alpha_not_renormalized", lit: color.FunctionalLiteral("rgba(10,20,30,.50)", color.RGB{R: 10, G: 20, B: 30}, ".50", true), want: "rgba(1, 2, 3, .50)"},
		{name: "unknown_shape_unchanged", lit: color.Literal{Text: "hsl(0, 0%, 0%)"}, want: "hsl(0, 0%, 0%)"},
		{name: "table_name_of_unknown_kind", lit: color.Literal{Text: "Orange"}, want: "tiny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultReplacement(tt.lit, target, repl))
		})
	}
}

func TestColorReplacer_ReplaceText(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		replace      string
		content      string
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:         "hex_purple_to_red",
			target:       "purple",
			replace:      "red",
			content:      "color: #800080;",
			want:         "color: #ff0000;",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "tuple_pink_to_red_keeps_alpha",
			target:       "pink",
			replace:      "red",
			content:      "Config.Color = {255, 192, 203, 255}",
			want:         "Config.Color = {255, 0, 0, 255}",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "name_word_bounded",
			target:       "pink",
			replace:      "red",
			content:      "pink pink2 pinkish Pink",
			want:         "red pink2 pinkish red",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "functional_alpha_presence_mirrored",
			target:       "pink",
			replace:      "#010203",
			content:      "a{color:rgb(255,192,203)} b{color:rgba(255,192,203,0.5)}",
			want:         "a{color:rgb(1, 2, 3)} b{color:rgba(1, 2, 3, 0.5)}",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "short_hex_does_not_eat_long_hex",
			target:       "white",
			replace:      "black",
			content:      "#fff #ffffff #FFF",
			want:         "#000000 #000000 #000000",
			wantCount:    3,
			wantModified: true,
		},
		{
			name:         "replacement_is_not_rescanned",
			target:       "pink,red",
			replace:      "red",
			content:      "pink red",
			want:         "red red",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "multiline",
			target:       "purple",
			replace:      "green",
			content:      "a: purple;\nb: #800080;\nc: {128, 0, 128, 10}\n",
			want:         "a: green;\nb: #008000;\nc: {0, 128, 0, 10}\n",
			wantCount:    3,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := mustTarget(t, tt.target)
			repl := color.NewReplacementSpec(tt.replace)
			rules := DefaultColorMap(detect.Detect(tt.content, target).Literals(), target, repl)

			replacer := NewColorReplacer(target)
			result, err := replacer.ReplaceText(context.Background(), strings.NewReader(tt.content), rules)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestColorReplacer_ExactLiteralWinsOverCaseFold(t *testing.T) {
	target := mustTarget(t, "pink")
	var rules ColorMap
	rules.Set(color.NameLiteral("Pink"), "Red")
	rules.Set(color.NameLiteral("pink"), "red")

	result, err := NewColorReplacer(target).ReplaceText(context.Background(), strings.NewReader("Pink pink PINK"), rules)
	require.NoError(t, err)
	assert.Equal(t, "Red red Red", string(result.ModifiedContent))
}

func TestColorReplacer_OmittedLiteralUntouched(t *testing.T) {
	target := mustTarget(t, "purple")
	var rules ColorMap
	rules.Set(color.HexLiteral("#800080", color.RGB{R: 128, B: 128}), "#ff0000")

	result, err := NewColorReplacer(target).ReplaceText(context.Background(), strings.NewReader("#800080 purple #810081"), rules)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000 purple #810081", string(result.ModifiedContent))
}

func TestColorReplacer_EmptyRules(t *testing.T) {
	result, err := NewColorReplacer(mustTarget(t, "pink")).ReplaceText(context.Background(), strings.NewReader("pink"), nil)
	require.NoError(t, err)
	assert.False(t, result.WasModified)
	assert.Equal(t, "pink", string(result.ModifiedContent))
}

func TestColorReplacer_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     ColorMap
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: ColorMap{{From: color.NameLiteral("pink"), ToText: "red"}},
		},
		{
			name:      "missing_literal",
			rules:     ColorMap{{ToText: "red"}},
			wantError: "original literal is required",
		},
		{
			name: "duplicate_literal",
			rules: ColorMap{
				{From: color.NameLiteral("pink"), ToText: "red"},
				{From: color.NameLiteral("pink"), ToText: "blue"},
			},
			wantError: "duplicate literal",
		},
		{
			name:  "empty_rules",
			rules: ColorMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewColorReplacer(mustTarget(t, "pink")).ValidateRules(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestColorMap_Set(t *testing.T) {
	var m ColorMap
	m.Set(color.NameLiteral("pink"), "red")
	m.Set(color.NameLiteral("rose"), "red")
	m.Set(color.NameLiteral("pink"), "blue")

	require.Len(t, m, 2)
	got, ok := m.Get("pink")
	require.True(t, ok)
	assert.Equal(t, "blue", got)
	_, ok = m.Get("PINK")
	assert.False(t, ok)
}
