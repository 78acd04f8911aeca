// Package numfmt turns numbers into the strings an odometer displays.
//
// Formatter is the contract the widget depends on: a finite string with at
// most one decimal separator. Printer is the default implementation, backed
// by golang.org/x/text for locale-aware digits, grouping and currency
// symbols.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	// ErrUnknownStyle is returned for a Style other than decimal or currency.
	ErrUnknownStyle = errors.New("unknown number style")
	// ErrInvalidLocale is returned when the locale cannot be parsed.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrInvalidCurrency is returned when the currency code is not ISO 4217.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrFractionDigits is returned when min/max fraction digits are inconsistent.
	ErrFractionDigits = errors.New("invalid fraction digits")
)

// Formatter formats values for display.
type Formatter interface {
	Format(v float64) string
	DecimalSeparator() string
}

// Style selects the number style.
type Style string

const (
	StyleDecimal  Style = "decimal"
	StyleCurrency Style = "currency"
)

// Config describes a number format. It is a plain value; build a Printer
// from it with New.
type Config struct {
	Style             Style  `mapstructure:"style"`
	Locale            string `mapstructure:"locale"`
	MinFractionDigits int    `mapstructure:"min_fraction_digits"`
	MaxFractionDigits int    `mapstructure:"max_fraction_digits"`
	Grouping          bool   `mapstructure:"grouping"`
	Currency          string `mapstructure:"currency"` // ISO 4217 code, currency style only
}

// DefaultConfig is a plain decimal format without grouping.
func DefaultConfig() Config {
	return Config{
		Style:             StyleDecimal,
		Locale:            "en-US",
		MaxFractionDigits: 3,
	}
}

// CurrencyConfig is a two-digit currency format for code.
func CurrencyConfig(code string) Config {
	return Config{
		Style:             StyleCurrency,
		Locale:            "en-US",
		MinFractionDigits: 2,
		MaxFractionDigits: 2,
		Grouping:          true,
		Currency:          code,
	}
}

// Validate checks the configuration without building a printer.
func (c Config) Validate() error {
	switch c.Style {
	case StyleDecimal, StyleCurrency:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, c.Style)
	}
	if c.MinFractionDigits < 0 || c.MaxFractionDigits < c.MinFractionDigits {
		return fmt.Errorf("%w: min=%d max=%d", ErrFractionDigits, c.MinFractionDigits, c.MaxFractionDigits)
	}
	return nil
}

// Printer formats numbers according to a Config.
type Printer struct {
	cfg       Config
	printer   *message.Printer
	opts      []number.Option
	symbol    string
	separator string
}

var _ Formatter = (*Printer)(nil)

// New builds a Printer for cfg.
func New(cfg Config) (*Printer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, cfg.Locale, err)
	}

	p := &Printer{
		cfg:     cfg,
		printer: message.NewPrinter(tag),
		opts: []number.Option{
			number.MinFractionDigits(cfg.MinFractionDigits),
			number.MaxFractionDigits(cfg.MaxFractionDigits),
		},
	}
	if !cfg.Grouping {
		p.opts = append(p.opts, number.NoSeparator())
	}

	if cfg.Style == StyleCurrency {
		unit, err := currency.ParseISO(cfg.Currency)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidCurrency, cfg.Currency, err)
		}
		p.symbol = p.printer.Sprint(currency.Symbol(unit))
	}

	p.separator = probeSeparator(p.printer)
	return p, nil
}

// Config returns the configuration the printer was built from.
func (p *Printer) Config() Config { return p.cfg }

// DecimalSeparator implements Formatter.
func (p *Printer) DecimalSeparator() string { return p.separator }

// Format implements Formatter. Currency symbols are placed before the
// digits; negative values get a leading minus sign unless they round to zero.
func (p *Printer) Format(v float64) string {
	body := p.printer.Sprint(number.Decimal(math.Abs(v), p.opts...))
	if p.symbol != "" {
		body = p.symbol + body
	}
	if v < 0 && strings.ContainsFunc(body, isNonZeroDigit) {
		return "-" + body
	}
	return body
}

// probeSeparator formats 1.5 and returns whatever sits between the digits.
func probeSeparator(p *message.Printer) string {
	s := p.Sprint(number.Decimal(1.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	sep := strings.TrimFunc(s, unicode.IsDigit)
	if sep == "" {
		return "."
	}
	return sep
}

func isNonZeroDigit(r rune) bool {
	return unicode.IsDigit(r) && r != '0'
}
