package track

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Arena hands out track IDs. IDs are never reused.
type Arena struct {
	next ID
}

// Alloc returns a fresh ID.
func (a *Arena) Alloc() ID {
	a.next++
	return a.next
}

// Factory builds tracks for sample characters of one row region.
type Factory struct {
	arena    *Arena
	style    lipgloss.Style
	measurer Measurer
}

// NewFactory returns a factory drawing IDs from arena and styling every
// track it builds with style.
func NewFactory(arena *Arena, style lipgloss.Style, m Measurer) *Factory {
	if arena == nil {
		arena = &Arena{}
	}
	if m == nil {
		m = StyleMeasurer{}
	}
	return &Factory{arena: arena, style: style, measurer: m}
}

// Style returns the style applied to new tracks.
func (f *Factory) Style() lipgloss.Style { return f.style }

// SetStyle changes the style applied to tracks built from now on.
func (f *Factory) SetStyle(style lipgloss.Style) { f.style = style }

// New returns a digit track when sample is a single ASCII decimal digit,
// and a single-unit literal track for anything else. Digits from other
// scripts (e.g. Arabic-Indic) are literal: they cannot roll through the
// ASCII "0"–"9" stack, so a changed digit replaces the track. The track
// starts at its first unit.
//
// New panics on an empty sample; Characters never yields one.
func (f *Factory) New(sample string) *Track {
	units := UnitSet{sample}
	if IsDigit(sample) && Digits.Contains(sample) {
		units = Digits
	}
	t, err := New(f.arena.Alloc(), units, f.style, f.measurer)
	if err != nil {
		panic(fmt.Errorf("track for %q: %w", sample, err))
	}
	return t
}
