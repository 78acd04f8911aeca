package demo

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"odometer/internal/numfmt"
	"odometer/internal/spinner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFormats() []Format {
	return []Format{
		{Name: "plain", Formatter: numfmt.Func{Separator: ".", Fn: func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}}},
		{Name: "dollars", Formatter: numfmt.Func{Separator: ".", Fn: func(v float64) string {
			return "$" + strconv.FormatFloat(v, 'f', 2, 64)
		}}},
	}
}

func newTestApp(t *testing.T, v float64) (*AppModel, tea.Model) {
	t.Helper()
	formats := testFormats()
	core := spinner.New(formats[0], spinner.WithValue(v))
	core.SpinningDuration = 0
	core.AlignmentDuration = 0
	app := New(spinner.NewModel(core, 240), formats, 1.5, nil)
	model := app.AsTeaModel()
	settle(t, model, model.Init())
	return app, model
}

// settle runs cmd and feeds its messages back until the widget is idle.
func settle(t *testing.T, model tea.Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "animation never settled")
		_, cmd = model.Update(cmd())
	}
}

func press(model tea.Model, keys string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	if keys == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(keys)}
	}
	_, cmd := model.Update(msg)
	return cmd
}

func TestApp_RandomKey(t *testing.T) {
	app, model := newTestApp(t, 0)
	app.Random = func() float64 { return 42 }

	settle(t, model, press(model, "r"))

	core := app.Spinner.Spinner()
	assert.Equal(t, 42.0, core.Value())
	assert.Equal(t, "42", core.Displayed())

	app.Random = func() float64 { return 7 }
	settle(t, model, press(model, " "))
	assert.Equal(t, "7", core.Displayed())
}

func TestApp_StepKeys(t *testing.T) {
	app, model := newTestApp(t, 1)
	core := app.Spinner.Spinner()

	settle(t, model, press(model, "+"))
	assert.Equal(t, "2.5", core.Displayed())

	settle(t, model, press(model, "-"))
	settle(t, model, press(model, "-"))
	assert.Equal(t, "-0.5", core.Displayed())
}

func TestApp_FormatKeyCycles(t *testing.T) {
	app, model := newTestApp(t, 9)
	core := app.Spinner.Spinner()

	settle(t, model, press(model, "f"))
	assert.Equal(t, "dollars", app.Format().Name)
	assert.Equal(t, "$9.00", core.Displayed())

	settle(t, model, press(model, "f"))
	assert.Equal(t, "plain", app.Format().Name)
	assert.Equal(t, "9", core.Displayed())
}

func TestApp_DebugKeyToggles(t *testing.T) {
	app, model := newTestApp(t, 3)
	core := app.Spinner.Spinner()

	assert.Nil(t, press(model, "d"))
	assert.True(t, core.Debug())
	for _, tr := range core.Tracks() {
		assert.True(t, tr.Debug())
	}

	press(model, "d")
	assert.False(t, core.Debug())
}

func TestApp_QuitKey(t *testing.T) {
	_, model := newTestApp(t, 0)

	cmd := press(model, "q")

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_View(t *testing.T) {
	_, model := newTestApp(t, 12.5)
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := model.View()

	assert.Contains(t, out, "odometer")
	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "plain")
	assert.Contains(t, out, "random")
}

func TestFormats(t *testing.T) {
	formats, err := Formats(numfmt.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, formats, 2)

	assert.Equal(t, "decimal en-US", formats[0].Name)
	assert.Equal(t, "USD en-US", formats[1].Name)
	assert.Equal(t, "1.5", formats[0].Format(1.5))
	assert.Equal(t, "$9.50", formats[1].Format(9.5))
}

func TestFormats_CurrencyFallsBackToDecimal(t *testing.T) {
	formats, err := Formats(numfmt.CurrencyConfig("USD"))
	require.NoError(t, err)

	assert.Equal(t, "USD en-US", formats[0].Name)
	assert.Equal(t, "decimal en-US", formats[1].Name)
}

func TestFormats_InvalidConfig(t *testing.T) {
	_, err := Formats(numfmt.Config{Style: "roman"})
	assert.ErrorIs(t, err, numfmt.ErrUnknownStyle)
}

func TestRandomValue(t *testing.T) {
	for range 100 {
		v := RandomValue()
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1e7)
	}
}

func TestApp_StatusLineHasFixedWidth(t *testing.T) {
	app, model := newTestApp(t, 1)
	app.Formats[0].Name = strings.Repeat("x", 60)

	out := model.View()

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", statusWidth))
}
