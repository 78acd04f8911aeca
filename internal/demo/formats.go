package demo

import (
	"fmt"

	"odometer/internal/numfmt"
	"odometer/internal/spinner"
	"odometer/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// Format is a formatter the demo can cycle to.
type Format struct {
	Name string
	numfmt.Formatter
}

// Formats builds the configured format followed by its counterpart: a
// currency format for a decimal configuration and vice versa. Both share
// the configured locale.
func Formats(cfg numfmt.Config) ([]Format, error) {
	var alt numfmt.Config
	switch cfg.Style {
	case numfmt.StyleCurrency:
		alt = numfmt.DefaultConfig()
	default:
		code := cfg.Currency
		if code == "" {
			code = "USD"
		}
		alt = numfmt.CurrencyConfig(code)
	}
	alt.Locale = cfg.Locale

	var formats []Format
	for _, c := range []numfmt.Config{cfg, alt} {
		p, err := numfmt.New(c)
		if err != nil {
			return nil, fmt.Errorf("format %s/%s: %w", c.Style, c.Locale, err)
		}
		formats = append(formats, Format{Name: formatName(c), Formatter: p})
	}
	return formats, nil
}

func formatName(c numfmt.Config) string {
	if c.Style == numfmt.StyleCurrency {
		return fmt.Sprintf("%s %s", c.Currency, c.Locale)
	}
	return fmt.Sprintf("decimal %s", c.Locale)
}

// SpinnerStyles colours the integer region in the accent colour and dims
// the fraction.
func SpinnerStyles() spinner.Styles {
	return spinner.Styles{
		Integer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.ColorAccent)),
		Fraction: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.ColorText)),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.ColorMuted)),
	}
}
