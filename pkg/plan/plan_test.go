package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/recolor/pkg/color"
	"github.com/walteh/recolor/pkg/detect"
	"github.com/walteh/recolor/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockPrompter is a mock implementation of the Prompter interface
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Select(ctx context.Context, message string, options []string, defaultOption string) (string, error) {
	args := m.Called(ctx, message, options, defaultOption)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	args := m.Called(ctx, message, defaultValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) Input(ctx context.Context, message string, defaultValue string) (string, error) {
	args := m.Called(ctx, message, defaultValue)
	return args.String(0), args.Error(1)
}

func setup(t *testing.T, search, replace, content string) (*Planner, *MockPrompter, detect.Detections) {
	t.Helper()
	target, err := color.NewTargetSpec(search)
	require.NoError(t, err)
	prompter := &MockPrompter{}
	p := New(prompter, target, color.NewReplacementSpec(replace))
	return p, prompter, detect.Detect(content, target)
}

func mapOf(m text.ColorMap) map[string]string {
	out := make(map[string]string, len(m))
	for _, r := range m {
		out[r.From.Text] = r.ToText
	}
	return out
}

func TestPlanner_ChooseMode(t *testing.T) {
	ctx := context.Background()
	p, prompter, _ := setup(t, "pink", "red", "")

	prompter.On("Select", ctx, "What do you want to do with a/b.css?", mock.Anything, ModeAuto.Label()).
		Return(ModeManualLine.Label(), nil).Once()

	mode, err := p.ChooseMode(ctx, "a/b.css")
	require.NoError(t, err)
	assert.Equal(t, ModeManualLine, mode)
	prompter.AssertExpectations(t)
}

func TestPlanner_ChooseMode_PrompterError(t *testing.T) {
	ctx := context.Background()
	p, prompter, _ := setup(t, "pink", "red", "")

	prompter.On("Select", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("interrupted")).Once()

	_, err := p.ChooseMode(ctx, "a.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestPlanner_Build_Auto(t *testing.T) {
	ctx := context.Background()
	p, prompter, ds := setup(t, "pink", "red", "pink #ffc0cb\n{255, 192, 203, 128} pink")

	m, err := p.Build(ctx, ModeAuto, ds)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"#ffc0cb":              "#ff0000",
		"pink":                 "red",
		"{255, 192, 203, 128}": "{255, 0, 0, 128}",
	}, mapOf(m))
	prompter.AssertNotCalled(t, "Select", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	prompter.AssertNotCalled(t, "Input", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlanner_Build_Skip(t *testing.T) {
	p, _, ds := setup(t, "pink", "red", "pink")

	m, err := p.Build(context.Background(), ModeSkip, ds)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestPlanner_Build_ManualMap(t *testing.T) {
	ctx := context.Background()
	p, prompter, ds := setup(t, "purple", "red", "purple #800080\n#800080 rgb(128,0,128)")

	prompter.On("Input", ctx, "Replace #800080 with (empty for #ff0000):", "#ff0000").Return("#00ff00", nil).Once()
	prompter.On("Input", ctx, "Replace purple with (empty for red):", "red").Return("", nil).Once()
	prompter.On("Input", ctx, "Replace rgb(128,0,128) with (empty for rgb(255, 0, 0)):", "rgb(255, 0, 0)").Return("  ", nil).Once()

	m, err := p.Build(ctx, ModeManualMap, ds)
	require.NoError(t, err)

	// every distinct literal is mapped, in first-seen order
	require.Len(t, m, 3)
	assert.Equal(t, "#800080", m[0].From.Text)
	assert.Equal(t, "purple", m[1].From.Text)
	assert.Equal(t, "rgb(128,0,128)", m[2].From.Text)
	assert.Equal(t, map[string]string{
		"#800080":        "#00ff00",
		"purple":         "red",
		"rgb(128,0,128)": "rgb(255, 0, 0)",
	}, mapOf(m))
	prompter.AssertExpectations(t)
}

func TestPlanner_Build_ManualLine(t *testing.T) {
	ctx := context.Background()
	p, prompter, ds := setup(t, "pink", "red", "pink\n{255, 192, 203, 255}\nrgba(255,192,203,0.5)")

	prompter.On("Confirm", ctx, "L1: replace pink (suggested: red)?", true).Return(true, nil).Once()
	prompter.On("Input", ctx, "Enter the new color (empty for red):", "").Return("", nil).Once()

	prompter.On("Confirm", ctx, "L2: replace {255, 192, 203, 255} (suggested: {255, 0, 0, 255})?", true).Return(false, nil).Once()

	prompter.On("Confirm", ctx, "L3: replace rgba(255,192,203,0.5) (suggested: rgba(255, 0, 0, 0.5))?", true).Return(true, nil).Once()
	prompter.On("Input", ctx, "Enter the new color (empty for rgba(255, 0, 0, 0.5)):", "").Return("rgba(0, 0, 0, 0.5)", nil).Once()

	m, err := p.Build(ctx, ModeManualLine, ds)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"pink":                  "red",
		"rgba(255,192,203,0.5)": "rgba(0, 0, 0, 0.5)",
	}, mapOf(m))
	prompter.AssertExpectations(t)
}

func TestPlanner_Build_ManualLine_PrompterError(t *testing.T) {
	ctx := context.Background()
	p, prompter, ds := setup(t, "pink", "red", "pink")

	prompter.On("Confirm", ctx, mock.Anything, true).Return(false, errors.New("closed")).Once()

	_, err := p.Build(ctx, ModeManualLine, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)

		got, err = ParseMode(m.Label())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMode("delete")
	require.Error(t, err)
}
