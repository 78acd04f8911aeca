// Package reconcile updates odometer track lists to match newly formatted
// characters with minimal structural change.
//
// The integer region grows and shrinks at the head (most significant
// position first); the fraction region grows and shrinks at the tail. After
// the size change, any track that cannot show the character aligned with it
// is replaced.
package reconcile

// Track is anything that can report whether it can show a unit.
type Track interface {
	HasUnit(unit string) bool
}

// NewFunc builds a track for a sample character.
type NewFunc[T Track] func(sample string) T

// Edit counts the structural changes made to one region.
type Edit struct {
	Inserted int
	Removed  int
	Replaced int
}

// Zero reports whether the region was left structurally unchanged.
func (e Edit) Zero() bool { return e == Edit{} }

// Add returns the sum of two edits.
func (e Edit) Add(o Edit) Edit {
	return Edit{
		Inserted: e.Inserted + o.Inserted,
		Removed:  e.Removed + o.Removed,
		Replaced: e.Replaced + o.Replaced,
	}
}

// Head reconciles the integer region. Extra characters get new tracks
// prepended in order; surplus tracks are dropped from the front.
func Head[T Track](old []T, chars []string, newTrack NewFunc[T]) ([]T, Edit) {
	var edit Edit
	tracks := make([]T, 0, len(chars))

	switch diff := len(chars) - len(old); {
	case diff > 0:
		for _, c := range chars[:diff] {
			tracks = append(tracks, newTrack(c))
		}
		tracks = append(tracks, old...)
		edit.Inserted = diff
	case diff < 0:
		tracks = append(tracks, old[-diff:]...)
		edit.Removed = -diff
	default:
		tracks = append(tracks, old...)
	}

	edit.Replaced = fix(tracks, chars, newTrack)
	return tracks, edit
}

// Tail reconciles the fraction region. Extra characters get new tracks
// appended; surplus tracks are truncated from the end.
func Tail[T Track](old []T, chars []string, newTrack NewFunc[T]) ([]T, Edit) {
	var edit Edit
	tracks := make([]T, 0, len(chars))

	switch diff := len(chars) - len(old); {
	case diff > 0:
		tracks = append(tracks, old...)
		for _, c := range chars[len(old):] {
			tracks = append(tracks, newTrack(c))
		}
		edit.Inserted = diff
	case diff < 0:
		tracks = append(tracks, old[:len(chars)]...)
		edit.Removed = -diff
	default:
		tracks = append(tracks, old...)
	}

	edit.Replaced = fix(tracks, chars, newTrack)
	return tracks, edit
}

// fix replaces every track that cannot show its aligned character. Formats
// with a prefix or suffix leave literal tracks at positions that digits now
// occupy (and vice versa) when the digit count changes.
func fix[T Track](tracks []T, chars []string, newTrack NewFunc[T]) int {
	replaced := 0
	for i, c := range chars {
		if tracks[i].HasUnit(c) {
			continue
		}
		tracks[i] = newTrack(c)
		replaced++
	}
	return replaced
}

// Compose assembles the row: integer + separator + fraction, or integer
// alone when the fraction region is empty.
func Compose[T any](integer []T, separator T, fraction []T) []T {
	row := make([]T, 0, len(integer)+1+len(fraction))
	row = append(row, integer...)
	if len(fraction) == 0 {
		return row
	}
	row = append(row, separator)
	return append(row, fraction...)
}
