package track

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

var (
	// ErrEmptyUnitSet is returned when a unit set would contain no units.
	ErrEmptyUnitSet = errors.New("unit set is empty")
	// ErrDuplicateUnit is returned when a unit appears twice in a set.
	ErrDuplicateUnit = errors.New("duplicate unit")
)

// Digits is the unit set of a digit track. Order defines scroll index.
var Digits = UnitSet{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// UnitSet is an ordered set of distinct strings a track can display.
type UnitSet []string

// NewUnitSet validates units and returns them as a UnitSet.
func NewUnitSet(units ...string) (UnitSet, error) {
	if len(units) == 0 {
		return nil, ErrEmptyUnitSet
	}
	seen := make(map[string]struct{}, len(units))
	for _, u := range units {
		if _, dup := seen[u]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUnit, u)
		}
		seen[u] = struct{}{}
	}
	return append(UnitSet(nil), units...), nil
}

// Index returns the scroll index of unit, or -1 if absent.
func (s UnitSet) Index(unit string) int {
	for i, u := range s {
		if u == unit {
			return i
		}
	}
	return -1
}

// Contains reports whether unit is a member of the set.
func (s UnitSet) Contains(unit string) bool {
	return s.Index(unit) >= 0
}

// Characters splits s into user-perceived characters (grapheme clusters).
func Characters(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, utf8.RuneCountInString(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

// IsDigit reports whether sample is exactly one character and that character
// is a decimal digit.
func IsDigit(sample string) bool {
	r, size := utf8.DecodeRuneInString(sample)
	if size == 0 || size != len(sample) {
		return false
	}
	return unicode.IsDigit(r)
}
