// Package demo is the interactive screen that exercises the odometer
// widget: random values, stepping, format switching and debug drawing.
package demo

import (
	"fmt"
	"math/rand/v2"

	"odometer/internal/logging"
	"odometer/internal/spinner"
	"odometer/internal/ui"
	"odometer/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusWidth is the fixed width of the status line, so the box does not
// resize with the formatted value.
const statusWidth = 36

// AppModel is the root model of the demo.
type AppModel struct {
	Spinner *spinner.Model
	Formats []Format
	Step    float64

	// Random produces the value for the random key. Defaults to RandomValue.
	Random func() float64

	format        int
	width, height int
	keys          keyMap
	log           *logging.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// New creates the demo around sp. formats must not be empty; the first is
// assumed to be the one sp was built with.
func New(sp *spinner.Model, formats []Format, step float64, log *logging.Logger) *AppModel {
	return &AppModel{
		Spinner: sp,
		Formats: formats,
		Step:    step,
		Random:  RandomValue,
		keys:    defaultKeyMap(),
		log:     log.With("component", "demo"),
	}
}

// RandomValue returns a value with a varying number of integer and
// fraction digits: a random integer below 1e7 divided by one below 1e4.
func RandomValue() float64 {
	return float64(rand.IntN(10_000_000)) / float64(1+rand.IntN(9_999))
}

// Format returns the active format.
func (m *AppModel) Format() Format { return m.Formats[m.format] }

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Spinner.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	_, cmd := a.Spinner.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	core := a.Spinner.Spinner()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Random):
		return a, a.setValue(a.Random())
	case key.Matches(msg, a.keys.Increment):
		return a, a.setValue(core.Value() + a.Step)
	case key.Matches(msg, a.keys.Decrement):
		return a, a.setValue(core.Value() - a.Step)
	case key.Matches(msg, a.keys.Format):
		if len(a.Formats) < 2 {
			return a, nil
		}
		a.format = (a.format + 1) % len(a.Formats)
		a.log.Info("format changed", "format", a.Format().Name)
		return a, a.Spinner.SetFormatter(a.Format())
	case key.Matches(msg, a.keys.Debug):
		a.Spinner.SetDebug(!core.Debug())
		a.log.Info("debug toggled", "enabled", core.Debug())
	}
	return a, nil
}

func (a *appModelAdapter) setValue(v float64) tea.Cmd {
	a.log.Debug("set value", "value", v)
	return a.Spinner.SetValue(v)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	core := a.Spinner.Spinner()
	status := textutil.PadCenterVisual(
		fmt.Sprintf("%s · %s · %s", a.Format().Name, core.Phase(), core.Formatted()),
		statusWidth,
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		ui.Styles.Title.Render("odometer"),
		"",
		a.Spinner.View(),
		"",
		ui.Styles.Muted.Render(status),
	)
	screen := lipgloss.JoinVertical(lipgloss.Center,
		ui.Styles.Box.Render(body),
		ui.RenderHelp(a.keys.ShortHelp()),
	)
	if a.width <= 0 || a.height <= 0 {
		return screen
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, screen)
}
