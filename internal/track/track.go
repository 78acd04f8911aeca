// Package track implements a single scrolling column of an odometer.
//
// A Track owns an ordered UnitSet and shows exactly one unit at a time
// through a window one unit tall. Units are stacked vertically at
// index*unitHeight; scrolling moves the stack so the chosen unit sits in the
// window.
package track

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// ID identifies a track for the lifetime of its row.
type ID uint64

// Size is a width × height in terminal cells.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in terminal cells.
type Point struct {
	X float64
	Y float64
}

// Measurer reports the bounding box of a unit rendered with a style.
type Measurer interface {
	Measure(unit string, style lipgloss.Style) Size
}

// Track is a vertical strip of units scrolled to reveal one of them.
type Track struct {
	id       ID
	units    UnitSet
	style    lipgloss.Style
	measurer Measurer

	unitSize Size
	position Point
	index    int
	debug    bool
}

// New creates a track showing the first unit of units. units must be
// non-empty and distinct; see NewUnitSet.
func New(id ID, units UnitSet, style lipgloss.Style, m Measurer) (*Track, error) {
	units, err := NewUnitSet(units...)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = StyleMeasurer{}
	}
	t := &Track{
		id:       id,
		units:    units,
		style:    style,
		measurer: m,
	}
	t.measure()
	return t, nil
}

// ID returns the track's stable identifier.
func (t *Track) ID() ID { return t.id }

// Units returns a copy of the track's unit set.
func (t *Track) Units() UnitSet { return append(UnitSet(nil), t.units...) }

// Style returns the text attributes used to measure and draw units.
func (t *Track) Style() lipgloss.Style { return t.style }

// SetStyle replaces the text attributes and re-measures the track.
func (t *Track) SetStyle(style lipgloss.Style) {
	t.style = style
	t.measure()
}

// UnitSize is the bounding box of the largest unit.
func (t *Track) UnitSize() Size { return t.unitSize }

// Bounds is the size of the full unit stack.
func (t *Track) Bounds() Size {
	return Size{Width: t.unitSize.Width, Height: t.unitSize.Height * float64(len(t.units))}
}

// Position returns the track's centre X and stack offset Y.
func (t *Track) Position() Point { return t.position }

// SetCenterX moves the track horizontally. Y is unchanged.
func (t *Track) SetCenterX(x float64) { t.position.X = x }

// Index returns the scroll index of the unit currently targeted.
func (t *Track) Index() int { return t.index }

// Unit returns the unit currently targeted.
func (t *Track) Unit() string { return t.units[t.index] }

// Debug reports whether the full stack is drawn with outlines.
func (t *Track) Debug() bool { return t.debug }

// SetDebug toggles debug drawing.
func (t *Track) SetDebug(enabled bool) { t.debug = enabled }

// HasUnit reports whether unit is a member of the track's unit set.
func (t *Track) HasUnit(unit string) bool { return t.units.Contains(unit) }

// ScrollToUnit scrolls to unit. It does nothing and returns false when the
// unit is not a member; callers check HasUnit first.
func (t *Track) ScrollToUnit(unit string) bool {
	i := t.units.Index(unit)
	if i < 0 {
		return false
	}
	t.ScrollToUnitAtIndex(i)
	return true
}

// ScrollToUnitAtIndex moves the stack so unit i is centred in the window.
// Out-of-range indexes are clamped.
func (t *Track) ScrollToUnitAtIndex(i int) {
	t.index = min(max(i, 0), len(t.units)-1)
	t.position.Y = t.OffsetForIndex(t.index)
}

// OffsetForIndex returns the stack offset Y that reveals unit i.
func (t *Track) OffsetForIndex(i int) float64 {
	return -t.unitSize.Height*float64(i) + t.Bounds().Height/2
}

// VisibleIndex returns the unit index nearest to the window for a presented
// stack offset y, clamped to the unit set.
func (t *Track) VisibleIndex(y float64) int {
	if t.unitSize.Height == 0 {
		return t.index
	}
	i := int(math.Round((t.Bounds().Height/2 - y) / t.unitSize.Height))
	return min(max(i, 0), len(t.units)-1)
}

// measure recomputes the unit size as the union of every unit's bounds and
// re-derives Y for the current index.
func (t *Track) measure() {
	var size Size
	for _, u := range t.units {
		s := t.measurer.Measure(u, t.style)
		size.Width = max(size.Width, s.Width)
		size.Height = max(size.Height, s.Height)
	}
	t.unitSize = size
	t.position.Y = t.OffsetForIndex(t.index)
}
