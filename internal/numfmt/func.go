package numfmt

// Func adapts a plain function to Formatter.
type Func struct {
	Separator string
	Fn        func(v float64) string
}

// Format implements Formatter.
func (f Func) Format(v float64) string { return f.Fn(v) }

// DecimalSeparator implements Formatter.
func (f Func) DecimalSeparator() string { return f.Separator }
