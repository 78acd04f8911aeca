package spinner

import (
	"errors"
	"fmt"
	"strings"

	"odometer/internal/track"
)

// ErrFormatterContract is the panic value (wrapped) raised when a formatter
// returns output the widget cannot lay out: an empty string, an empty
// separator, or more than one separator.
var ErrFormatterContract = errors.New("number formatter contract violated")

// Split breaks a formatted value into integer and fraction characters on the
// decimal separator. fraction is nil when there is no separator or nothing
// follows it.
//
// Split panics when formatted or separator break the formatter contract;
// that is a configuration error, not a runtime condition.
func Split(formatted, separator string) (integer, fraction []string) {
	switch {
	case formatted == "":
		panic(fmt.Errorf("%w: empty output", ErrFormatterContract))
	case separator == "":
		panic(fmt.Errorf("%w: empty decimal separator", ErrFormatterContract))
	case strings.Count(formatted, separator) > 1:
		panic(fmt.Errorf("%w: %q has more than one %q", ErrFormatterContract, formatted, separator))
	}

	intPart, fracPart, _ := strings.Cut(formatted, separator)
	return track.Characters(intPart), track.Characters(fracPart)
}
