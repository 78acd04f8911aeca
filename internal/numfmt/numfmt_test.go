package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_DecimalDefault(t *testing.T) {
	p, err := New(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ".", p.DecimalSeparator())
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "10"},
		{1.2, "1.2"},
		{1.23, "1.23"},
		{1234.5, "1234.5"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestPrinter_Grouping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grouping = true
	p, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "1,234,567", p.Format(1234567))
}

func TestPrinter_FractionDigits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinFractionDigits = 2
	cfg.MaxFractionDigits = 2
	p, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "3.00", p.Format(3))
	assert.Equal(t, "3.14", p.Format(3.14159))
}

func TestPrinter_NegativeRoundingToZeroHasNoSign(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFractionDigits = 1
	p, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "0", p.Format(-0.01))
}

func TestPrinter_LocaleSeparator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locale = "de-DE"
	p, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, ",", p.DecimalSeparator())
	assert.Equal(t, "1,5", p.Format(1.5))
}

func TestPrinter_CurrencyPrefix(t *testing.T) {
	p, err := New(CurrencyConfig("USD"))
	require.NoError(t, err)

	assert.Equal(t, "$9.50", p.Format(9.5))
	assert.Equal(t, "$1,000.00", p.Format(1000))
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"unknown style", Config{Style: "scientific", Locale: "en"}, ErrUnknownStyle},
		{"bad locale", Config{Style: StyleDecimal, Locale: "!!"}, ErrInvalidLocale},
		{"bad currency", Config{Style: StyleCurrency, Locale: "en", Currency: "XYZW"}, ErrInvalidCurrency},
		{"min above max", Config{Style: StyleDecimal, Locale: "en", MinFractionDigits: 3, MaxFractionDigits: 1}, ErrFractionDigits},
		{"negative min", Config{Style: StyleDecimal, Locale: "en", MinFractionDigits: -1}, ErrFractionDigits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFunc(t *testing.T) {
	f := Func{Separator: ",", Fn: func(float64) string { return "7,5" }}
	assert.Equal(t, "7,5", f.Format(0))
	assert.Equal(t, ",", f.DecimalSeparator())
}
