package spinner

import (
	"math"
	"sync/atomic"
	"time"

	"odometer/internal/numfmt"
	"odometer/internal/track"
	"odometer/internal/ui"
	"odometer/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// DefaultFPS is the frame rate used when NewModel is given a non-positive one.
const DefaultFPS = 60

// settleFrequency scales a spring so it settles within one duration.
const settleFrequency = 7.0

var lastModelID atomic.Int64

// frameMsg advances the animation of the model with the matching id.
type frameMsg struct{ id int64 }

// motion is the presented (animated) state of one track.
type motion struct {
	x, vx float64
	y, vy float64
}

// Model is the Bubble Tea component for a Spinner.
//
// The core holds model values (where tracks should be); Model holds the
// presented values drawn on screen and moves them with springs. When a
// phase's duration has elapsed the presented values snap to the model
// values and the core receives the phase completion event.
type Model struct {
	core *Spinner
	fps  int
	id   int64

	target        track.Size // last size notified by the core
	width, vwidth float64
	motions       map[track.ID]*motion
	spring        harmonica.Spring
	frame         int
	frames        int
	ticking       bool
}

var _ ui.View = (*Model)(nil)

// NewModel wraps core and subscribes to its resize notifications. A
// callback already installed on core.OnResize keeps being called.
// fps <= 0 selects DefaultFPS.
func NewModel(core *Spinner, fps int) *Model {
	if fps <= 0 {
		fps = DefaultFPS
	}
	m := &Model{
		core:    core,
		fps:     fps,
		id:      lastModelID.Add(1),
		target:  core.IntrinsicSize(),
		motions: make(map[track.ID]*motion),
	}
	next := core.OnResize
	core.OnResize = func(size track.Size) {
		m.resize(size)
		if next != nil {
			next(size)
		}
	}
	return m
}

// resize retargets the width spring. The presented width keeps its
// position and velocity and moves on the next frame.
func (m *Model) resize(size track.Size) {
	m.target = size
}

// Spinner returns the wrapped core.
func (m *Model) Spinner() *Spinner { return m.core }

// Animating reports whether a phase is still pending.
func (m *Model) Animating() bool { return m.core.Phase() != PhaseIdle }

// Size returns the presented width and the row height in cells.
func (m *Model) Size() (width, height int) {
	return int(math.Round(m.width)), int(m.core.IntrinsicSize().Height)
}

// SetValue displays v and starts the animation. Non-finite values are
// ignored and return nil.
func (m *Model) SetValue(v float64) tea.Cmd {
	if !m.core.SetValue(v) {
		return nil
	}
	return m.begin()
}

// SetFormatter replaces the formatter and starts the animation.
func (m *Model) SetFormatter(f numfmt.Formatter) tea.Cmd {
	m.core.SetFormatter(f)
	return m.begin()
}

// SetStyles re-styles the regions and starts the animation.
func (m *Model) SetStyles(st Styles) tea.Cmd {
	m.core.SetStyles(st)
	return m.begin()
}

// SetDebug toggles debug drawing. Nothing is animated.
func (m *Model) SetDebug(enabled bool) { m.core.SetDebug(enabled) }

// Init implements ui.View.
func (m *Model) Init() tea.Cmd {
	return m.begin()
}

// Update implements ui.View. Only this model's frame messages are handled.
func (m *Model) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if f, ok := msg.(frameMsg); ok && f.id == m.id {
		return m, m.step()
	}
	return m, nil
}

// begin starts the pending phase after the core was rebuilt. The first
// layout is applied without an alignment animation.
func (m *Model) begin() tea.Cmd {
	m.sync()
	if m.core.Phase() == PhaseAlignment && !m.core.Animated() {
		m.snap()
		m.core.CompleteAlignment()
	}
	m.startPhase()
	return m.tick()
}

// startPhase resets the frame budget and spring for the core's phase.
func (m *Model) startPhase() {
	var d time.Duration
	switch m.core.Phase() {
	case PhaseAlignment:
		d = m.core.AlignmentDuration
	case PhaseSpinning:
		d = m.core.SpinningDuration
	}
	m.frame = 0
	m.frames = int(math.Ceil(d.Seconds() * float64(m.fps)))
	freq := 0.0
	if d > 0 {
		freq = settleFrequency / d.Seconds()
	}
	m.spring = harmonica.NewSpring(harmonica.FPS(m.fps), freq, 1.0)
}

func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.Animating() {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return frameMsg{id: id}
	})
}

// step advances one frame and delivers completion events when a phase's
// frame budget runs out.
func (m *Model) step() tea.Cmd {
	m.ticking = false
	if !m.Animating() {
		return nil
	}
	m.sync()
	m.frame++

	for _, t := range m.core.Tracks() {
		mo := m.motions[t.ID()]
		pos := t.Position()
		mo.x, mo.vx = m.spring.Update(mo.x, mo.vx, pos.X)
		mo.y, mo.vy = m.spring.Update(mo.y, mo.vy, pos.Y)
	}
	m.width, m.vwidth = m.spring.Update(m.width, m.vwidth, m.target.Width)

	if m.frame >= m.frames {
		m.snap()
		switch m.core.Phase() {
		case PhaseAlignment:
			m.core.CompleteAlignment()
			m.startPhase()
		case PhaseSpinning:
			m.core.CompleteSpinning()
		}
	}
	return m.tick()
}

// sync creates presented state for newly hosted tracks at their model
// position and forgets detached ones.
func (m *Model) sync() {
	live := make(map[track.ID]struct{}, len(m.motions))
	for _, t := range m.core.Tracks() {
		live[t.ID()] = struct{}{}
		if _, ok := m.motions[t.ID()]; ok {
			continue
		}
		pos := t.Position()
		m.motions[t.ID()] = &motion{x: pos.X, y: pos.Y}
	}
	for id := range m.motions {
		if _, ok := live[id]; !ok {
			delete(m.motions, id)
		}
	}
}

// Snap jumps the presented state to the current layout without animating.
func (m *Model) Snap() {
	m.sync()
	m.snap()
}

// snap moves every presented value onto its model value.
func (m *Model) snap() {
	for _, t := range m.core.Tracks() {
		pos := t.Position()
		m.motions[t.ID()] = &motion{x: pos.X, y: pos.Y}
	}
	m.width, m.vwidth = m.target.Width, 0
}

// View implements ui.View. Tracks are drawn at their presented positions,
// clipped to the presented width unless debugging.
func (m *Model) View() string {
	tracks := m.core.Tracks()
	height := max(1, int(m.core.IntrinsicSize().Height))

	parts := make([]string, 0, 2*len(tracks))
	cursor := 0
	for _, t := range tracks {
		pos := t.Position()
		if mo, ok := m.motions[t.ID()]; ok {
			pos = track.Point{X: mo.x, Y: mo.y}
		}
		left := int(math.Round(pos.X - t.UnitSize().Width/2))
		if gap := left - cursor; gap > 0 {
			parts = append(parts, textutil.Spaces(gap, height))
			cursor += gap
		}
		rendered := t.Render(pos.Y)
		w, _ := textutil.BlockSize(rendered)
		parts = append(parts, rendered)
		cursor += w
	}
	out := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)

	if m.core.Debug() {
		return ui.Styles.DebugBox.Render(ui.Styles.DebugRow.Render(out))
	}
	return fit(out, int(math.Round(m.width)), height)
}

// fit pads or clips block to width columns.
func fit(block string, width, height int) string {
	w, h := textutil.BlockSize(block)
	switch {
	case w < width:
		return lipgloss.JoinHorizontal(lipgloss.Top, block, textutil.Spaces(width-w, max(h, height)))
	case w > width:
		return lipgloss.NewStyle().MaxWidth(width).Render(block)
	}
	return block
}
