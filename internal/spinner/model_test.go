package spinner

import (
	"math"
	"testing"

	"odometer/internal/track"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFPS = 10

// drive delivers frame messages until the model is idle and returns every
// view rendered along the way.
func drive(t *testing.T, m *Model) []string {
	t.Helper()
	var views []string
	for i := 0; m.Animating(); i++ {
		require.Less(t, i, 1000, "animation never settled")
		_, _ = m.Update(frameMsg{id: m.id})
		views = append(views, m.View())
	}
	return views
}

func newTestModel(t *testing.T, v float64) *Model {
	t.Helper()
	m := NewModel(New(decimal, WithValue(v)), testFPS)
	require.NotNil(t, m.Init())
	drive(t, m)
	return m
}

func TestModel_FirstLayoutSkipsAlignment(t *testing.T) {
	m := NewModel(New(decimal, WithValue(7)), testFPS)

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.Equal(t, PhaseSpinning, m.Spinner().Phase())
	w, h := m.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestModel_SettlesOnNewValue(t *testing.T) {
	m := newTestModel(t, 0)
	assert.Equal(t, "0", m.View())

	require.NotNil(t, m.SetValue(10))
	assert.Equal(t, PhaseAlignment, m.Spinner().Phase())
	drive(t, m)

	assert.Equal(t, PhaseIdle, m.Spinner().Phase())
	assert.Equal(t, "10", m.View())
	w, _ := m.Size()
	assert.Equal(t, 2, w)
}

func TestModel_TracksRollThroughIntermediateUnits(t *testing.T) {
	m := newTestModel(t, 0)

	m.SetValue(9)
	views := drive(t, m)

	seen := map[string]bool{}
	for _, v := range views {
		seen[v] = true
	}
	assert.Greater(t, len(seen), 2, "expected digits between 0 and 9, saw %v", seen)
	assert.Equal(t, "9", views[len(views)-1])
}

func TestModel_WidthAnimatesDuringAlignment(t *testing.T) {
	m := newTestModel(t, 0)

	m.SetValue(100)
	m.Update(frameMsg{id: m.id})

	assert.Equal(t, PhaseAlignment, m.Spinner().Phase())
	assert.Greater(t, m.width, 1.0)
	assert.Less(t, m.width, 3.0)
	assert.Equal(t, 3.0, m.Spinner().PreferredSize().Width)
}

func TestModel_IgnoresForeignFrames(t *testing.T) {
	m := newTestModel(t, 1)
	m.SetValue(2)
	frame := m.frame

	_, cmd := m.Update(frameMsg{id: m.id + 1000})
	assert.Nil(t, cmd)
	assert.Equal(t, frame, m.frame)

	_, cmd = m.Update("unrelated")
	assert.Nil(t, cmd)
}

func TestModel_IdleModelDoesNotTick(t *testing.T) {
	m := newTestModel(t, 1)

	_, cmd := m.Update(frameMsg{id: m.id})
	assert.Nil(t, cmd)
}

func TestModel_NonFiniteValueIsIgnored(t *testing.T) {
	m := newTestModel(t, 3)
	assert.Nil(t, m.SetValue(math.Inf(1)))
	assert.Equal(t, "3", m.View())
}

func TestModel_NewValueMidAnimationRestarts(t *testing.T) {
	m := newTestModel(t, 1)
	m.SetValue(5)
	m.Update(frameMsg{id: m.id})
	m.Update(frameMsg{id: m.id})

	m.SetValue(42)
	assert.Equal(t, PhaseAlignment, m.Spinner().Phase())
	drive(t, m)
	assert.Equal(t, "42", m.View())
}

func TestModel_DebugView(t *testing.T) {
	m := newTestModel(t, 2)
	m.SetDebug(true)

	out := m.View()

	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "9")
	assert.Greater(t, lipgloss.Height(out), 10)
}

func TestModel_RemovedTracksAreForgotten(t *testing.T) {
	m := newTestModel(t, 123)
	require.Len(t, m.motions, 3)

	m.SetValue(4)
	drive(t, m)

	assert.Len(t, m.motions, 1)
	assert.Equal(t, "4", m.View())
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4, 1))
	assert.Equal(t, "ab", fit("abcd", 2, 1))
	assert.Equal(t, "abc", fit("abc", 3, 1))
}

func TestModel_ResizeNotificationDrivesWidth(t *testing.T) {
	var notified []track.Size
	core := New(decimal)
	core.OnResize = func(size track.Size) { notified = append(notified, size) }

	m := NewModel(core, testFPS)
	require.NotNil(t, m.Init())
	drive(t, m)

	m.SetValue(100)
	assert.Equal(t, track.Size{Width: 3, Height: 1}, m.target)
	assert.Equal(t, core.IntrinsicSize(), m.target)
	assert.Equal(t, []track.Size{{Width: 3, Height: 1}}, notified, "earlier callback still runs")

	m.Update(frameMsg{id: m.id})
	assert.Greater(t, m.width, 1.0)
	assert.Less(t, m.width, 3.0)

	drive(t, m)
	w, h := m.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
}

func TestModel_NoNotificationKeepsWidth(t *testing.T) {
	m := newTestModel(t, 1)

	m.SetValue(2)
	m.Update(frameMsg{id: m.id})

	assert.InDelta(t, 1.0, m.width, 1e-9)
}
