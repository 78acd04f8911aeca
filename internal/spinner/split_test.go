package spinner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		sep       string
		integer   []string
		fraction  []string
	}{
		{"integer only", "42", ".", []string{"4", "2"}, nil},
		{"with fraction", "3.14", ".", []string{"3"}, []string{"1", "4"}},
		{"comma separator", "1,5", ",", []string{"1"}, []string{"5"}},
		{"currency prefix", "$9.50", ".", []string{"$", "9"}, []string{"5", "0"}},
		{"leading separator", ".5", ".", nil, []string{"5"}},
		{"trailing separator", "7.", ".", []string{"7"}, nil},
		{"multi-byte separator", "1٫25", "٫", []string{"1"}, []string{"2", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integer, fraction := Split(tt.formatted, tt.sep)
			assert.Equal(t, tt.integer, integer)
			assert.Equal(t, tt.fraction, fraction)
		})
	}
}

func TestSplit_ContractViolations(t *testing.T) {
	tests := []struct {
		name      string
		formatted string
		sep       string
	}{
		{"empty output", "", "."},
		{"empty separator", "1.5", ""},
		{"two separators", "1.2.3", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recovered any
			func() {
				defer func() { recovered = recover() }()
				Split(tt.formatted, tt.sep)
			}()

			err, ok := recovered.(error)
			require.True(t, ok, "panic value should be an error, got %v", recovered)
			assert.True(t, errors.Is(err, ErrFormatterContract))
		})
	}
}
