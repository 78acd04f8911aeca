// Package row lays out odometer tracks left-to-right.
package row

import (
	"slices"

	"odometer/internal/track"
)

// Component is a track as seen by the composer.
type Component interface {
	ID() track.ID
	UnitSize() track.Size
	SetDebug(enabled bool)
	SetCenterX(x float64)
	ScrollToUnitAtIndex(i int)
}

// Composer hosts an ordered row of components and computes its preferred
// size. Components are attached and detached by ID.
type Composer[C Component] struct {
	tracks []C
	hosted map[track.ID]C
	size   track.Size
	debug  bool

	// OnAttach and OnDetach observe hosting changes. Either may be nil.
	OnAttach func(c C)
	OnDetach func(c C)
	// OnSizeChange is called when the preferred size changes.
	OnSizeChange func(size track.Size)
}

// NewComposer returns an empty composer.
func NewComposer[C Component]() *Composer[C] {
	return &Composer[C]{hosted: make(map[track.ID]C)}
}

// SetTracks replaces the row. Components not yet hosted are attached,
// hosted components missing from tracks are detached, then the row is laid
// out in slice order.
func (c *Composer[C]) SetTracks(tracks []C) {
	next := make(map[track.ID]C, len(tracks))
	for _, t := range tracks {
		t.SetDebug(c.debug)
		next[t.ID()] = t
	}

	for _, id := range sortedIDs(c.hosted) {
		if _, keep := next[id]; keep {
			continue
		}
		gone := c.hosted[id]
		delete(c.hosted, id)
		if c.OnDetach != nil {
			c.OnDetach(gone)
		}
	}
	for _, t := range tracks {
		if _, ok := c.hosted[t.ID()]; ok {
			continue
		}
		c.hosted[t.ID()] = t
		if c.OnAttach != nil {
			c.OnAttach(t)
		}
	}

	c.tracks = slices.Clone(tracks)
	c.arrange()
}

// Tracks returns the row in layout order.
func (c *Composer[C]) Tracks() []C { return slices.Clone(c.tracks) }

// Hosted returns the IDs of attached components in ascending order.
func (c *Composer[C]) Hosted() []track.ID { return sortedIDs(c.hosted) }

// IsHosted reports whether id is attached.
func (c *Composer[C]) IsHosted(id track.ID) bool {
	_, ok := c.hosted[id]
	return ok
}

// PreferredSize is the bounding size of the laid-out row.
func (c *Composer[C]) PreferredSize() track.Size { return c.size }

// Debug reports whether hosted components draw in debug mode.
func (c *Composer[C]) Debug() bool { return c.debug }

// SetDebug propagates the debug flag to every component in the row.
func (c *Composer[C]) SetDebug(enabled bool) {
	c.debug = enabled
	for _, t := range c.tracks {
		t.SetDebug(enabled)
	}
}

// arrange places each component right after the previous one's right edge
// and accumulates the bounding size.
func (c *Composer[C]) arrange() {
	var size track.Size
	for _, t := range c.tracks {
		u := t.UnitSize()
		t.SetCenterX(size.Width + u.Width/2)
		size.Width += u.Width
		size.Height = max(size.Height, u.Height)
	}
	c.setPreferredSize(size)
}

func (c *Composer[C]) setPreferredSize(size track.Size) {
	if size == c.size {
		return
	}
	c.size = size
	if c.OnSizeChange != nil {
		c.OnSizeChange(size)
	}
}

func sortedIDs[C any](m map[track.ID]C) []track.ID {
	ids := make([]track.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
