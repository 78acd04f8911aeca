package track

import (
	"strings"

	"odometer/internal/ui"
	"odometer/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// StyleMeasurer measures units by rendering them with lipgloss.
type StyleMeasurer struct{}

// Measure implements Measurer.
func (StyleMeasurer) Measure(unit string, style lipgloss.Style) Size {
	w, h := textutil.BlockSize(style.Render(unit))
	return Size{Width: float64(w), Height: float64(h)}
}

// Render draws the track with its stack at presented offset y.
//
// Outside debug mode only the unit in the window is drawn, padded to the
// unit size. In debug mode every unit is drawn with an outline and the unit
// in the window is highlighted.
func (t *Track) Render(y float64) string {
	visible := t.VisibleIndex(y)
	if !t.debug {
		return t.renderUnit(t.units[visible])
	}

	outline := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ui.ColorDanger))
	current := outline.BorderForeground(lipgloss.Color(ui.ColorDebugUnit))

	cells := make([]string, len(t.units))
	for i, u := range t.units {
		style := outline
		if i == visible {
			style = current
		}
		cells[i] = style.Render(t.renderUnit(u))
	}
	return lipgloss.JoinVertical(lipgloss.Center, cells...)
}

func (t *Track) renderUnit(unit string) string {
	w, h := int(t.unitSize.Width), int(t.unitSize.Height)
	rendered := t.style.Render(unit)
	if w <= 0 || h <= 0 {
		return rendered
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, rendered)
}

// String returns the targeted unit followed by the unit set, for logs.
func (t *Track) String() string {
	return t.Unit() + "[" + strings.Join(t.units, "") + "]"
}
