// Package spinner is the odometer widget.
//
// Spinner is the headless core: it formats the value, reconciles tracks and
// steps through the two animation phases when told that the previous phase
// finished. Model wraps a Spinner as a Bubble Tea component and supplies
// those completion events from frame ticks.
package spinner

import (
	"context"
	"math"
	"strings"
	"time"

	"odometer/internal/logging"
	"odometer/internal/numfmt"
	"odometer/internal/reconcile"
	"odometer/internal/row"
	"odometer/internal/telemetry"
	"odometer/internal/track"

	"github.com/charmbracelet/lipgloss"
)

// Default animation durations.
const (
	DefaultSpinningDuration  = 500 * time.Millisecond
	DefaultAlignmentDuration = 250 * time.Millisecond
)

// Phase is the animation state of the widget.
type Phase int

const (
	// PhaseIdle: nothing pending.
	PhaseIdle Phase = iota
	// PhaseAlignment: the row was recomposed; waiting for the resize to finish.
	PhaseAlignment
	// PhaseSpinning: tracks were told to scroll; waiting for them to settle.
	PhaseSpinning
)

func (p Phase) String() string {
	switch p {
	case PhaseAlignment:
		return "alignment"
	case PhaseSpinning:
		return "spinning"
	default:
		return "idle"
	}
}

// Styles are the per-region text attributes.
type Styles struct {
	Integer   lipgloss.Style
	Fraction  lipgloss.Style
	Separator lipgloss.Style
}

// DefaultStyles renders every region in the terminal's default style.
func DefaultStyles() Styles {
	return Styles{
		Integer:   lipgloss.NewStyle(),
		Fraction:  lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
	}
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Spinner) { s.log = l.With("component", "spinner") }
}

// WithRecorder records a telemetry span per rebuild.
func WithRecorder(r *telemetry.Recorder) Option {
	return func(s *Spinner) { s.recorder = r }
}

// WithContext sets the parent context of rebuild spans, so they join the
// caller's trace.
func WithContext(ctx context.Context) Option {
	return func(s *Spinner) { s.ctx = ctx }
}

// WithMeasurer overrides how units are measured.
func WithMeasurer(m track.Measurer) Option {
	return func(s *Spinner) { s.measurer = m }
}

// WithStyles sets the initial per-region styles.
func WithStyles(st Styles) Option {
	return func(s *Spinner) { s.styles = st }
}

// WithValue sets the initial value. Non-finite values are ignored.
func WithValue(v float64) Option {
	return func(s *Spinner) {
		if isFinite(v) {
			s.value = v
		}
	}
}

// Spinner owns the row of tracks for one displayed value.
type Spinner struct {
	// SpinningDuration is the length of phase 2 (tracks scrolling).
	SpinningDuration time.Duration
	// AlignmentDuration is the length of phase 1 (row resizing).
	AlignmentDuration time.Duration
	// OnResize is called when the preferred size changes. May be nil.
	OnResize func(size track.Size)

	ctx       context.Context
	formatter numfmt.Formatter
	value     float64
	styles    Styles
	measurer  track.Measurer
	log       *logging.Logger
	recorder  *telemetry.Recorder

	arena     *track.Arena
	integerF  *track.Factory
	fractionF *track.Factory
	composer  *row.Composer[*track.Track]

	integer   []*track.Track
	fraction  []*track.Track
	separator *track.Track
	targets   []string // target unit per row position

	phase     Phase
	laidOut   bool
	animated  bool
	intrinsic *track.Size
	lastEdit  reconcile.Edit
	formatted string
}

// New builds a spinner showing 0 (or WithValue) formatted by f.
func New(f numfmt.Formatter, opts ...Option) *Spinner {
	s := &Spinner{
		SpinningDuration:  DefaultSpinningDuration,
		AlignmentDuration: DefaultAlignmentDuration,
		ctx:               context.Background(),
		formatter:         f,
		styles:            DefaultStyles(),
		measurer:          track.StyleMeasurer{},
		arena:             &track.Arena{},
		composer:          row.NewComposer[*track.Track](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.integerF = track.NewFactory(s.arena, s.styles.Integer, s.measurer)
	s.fractionF = track.NewFactory(s.arena, s.styles.Fraction, s.measurer)
	s.composer.OnSizeChange = s.sizeChanged
	s.separator = s.newSeparator()
	s.Rebuild()
	return s
}

// Value returns the displayed value.
func (s *Spinner) Value() float64 { return s.value }

// SetValue displays v. Non-finite values are rejected: nothing changes and
// false is returned.
func (s *Spinner) SetValue(v float64) bool {
	if !isFinite(v) {
		s.log.Debug("rejected non-finite value", "value", v)
		return false
	}
	s.value = v
	s.Rebuild()
	return true
}

// Formatter returns the current formatter.
func (s *Spinner) Formatter() numfmt.Formatter { return s.formatter }

// SetFormatter replaces the formatter and rebuilds every track.
func (s *Spinner) SetFormatter(f numfmt.Formatter) {
	s.formatter = f
	s.integer = nil
	s.fraction = nil
	s.separator = s.newSeparator()
	s.Rebuild()
}

// Styles returns the per-region styles.
func (s *Spinner) Styles() Styles { return s.styles }

// SetStyles re-styles every region and rebuilds.
func (s *Spinner) SetStyles(st Styles) {
	s.styles = st
	s.integerF.SetStyle(st.Integer)
	s.fractionF.SetStyle(st.Fraction)
	for _, t := range s.integer {
		t.SetStyle(st.Integer)
	}
	for _, t := range s.fraction {
		t.SetStyle(st.Fraction)
	}
	s.separator.SetStyle(st.Separator)
	s.Rebuild()
}

// Debug reports whether tracks draw their whole stack.
func (s *Spinner) Debug() bool { return s.composer.Debug() }

// SetDebug toggles debug drawing of every track.
func (s *Spinner) SetDebug(enabled bool) { s.composer.SetDebug(enabled) }

// Phase returns the animation phase.
func (s *Spinner) Phase() Phase { return s.phase }

// Animated reports whether the pending alignment phase should be animated.
// The first layout is not, so the widget does not "appear" animatedly.
func (s *Spinner) Animated() bool { return s.animated }

// Tracks returns the row in display order.
func (s *Spinner) Tracks() []*track.Track { return s.composer.Tracks() }

// IntegerTracks returns the integer region.
func (s *Spinner) IntegerTracks() []*track.Track { return append([]*track.Track(nil), s.integer...) }

// FractionTracks returns the fraction region.
func (s *Spinner) FractionTracks() []*track.Track { return append([]*track.Track(nil), s.fraction...) }

// SeparatorTrack returns the decimal separator track, hosted or not.
func (s *Spinner) SeparatorTrack() *track.Track { return s.separator }

// Targets returns the unit each row position scrolls to.
func (s *Spinner) Targets() []string { return append([]string(nil), s.targets...) }

// Formatted returns the last formatted string.
func (s *Spinner) Formatted() string { return s.formatted }

// LastEdit returns the structural changes made by the last rebuild.
func (s *Spinner) LastEdit() reconcile.Edit { return s.lastEdit }

// PreferredSize returns the laid-out size of the row.
func (s *Spinner) PreferredSize() track.Size { return s.composer.PreferredSize() }

// IntrinsicSize returns the size a host should give the widget.
func (s *Spinner) IntrinsicSize() track.Size {
	if s.intrinsic == nil {
		size := s.composer.PreferredSize()
		s.intrinsic = &size
	}
	return *s.intrinsic
}

// Displayed returns the units the tracks currently show, in row order.
func (s *Spinner) Displayed() string {
	var sb strings.Builder
	for _, t := range s.composer.Tracks() {
		sb.WriteString(t.Unit())
	}
	return sb.String()
}

// Rebuild formats the value, reconciles the tracks and hands the new row to
// the composer. The spinner enters PhaseAlignment.
//
// Rebuild panics with ErrFormatterContract when the formatter output cannot
// be split.
func (s *Spinner) Rebuild() {
	start := time.Now()

	s.formatted = s.formatter.Format(s.value)
	sep := s.formatter.DecimalSeparator()
	intChars, fracChars := Split(s.formatted, sep)

	if !s.separator.HasUnit(sep) {
		s.separator = s.newSeparator()
	}

	var intEdit, fracEdit reconcile.Edit
	s.integer, intEdit = reconcile.Head(s.integer, intChars, s.integerF.New)
	s.fraction, fracEdit = reconcile.Tail(s.fraction, fracChars, s.fractionF.New)
	s.lastEdit = intEdit.Add(fracEdit)
	s.targets = reconcile.Compose(intChars, sep, fracChars)

	s.animated = s.laidOut
	s.composer.SetTracks(reconcile.Compose(s.integer, s.separator, s.fraction))
	s.laidOut = true
	s.phase = PhaseAlignment

	s.log.Debug("rebuild",
		"value", s.value,
		"formatted", s.formatted,
		"tracks", len(s.targets),
		"inserted", s.lastEdit.Inserted,
		"removed", s.lastEdit.Removed,
		"replaced", s.lastEdit.Replaced,
	)
	s.recorder.RecordRebuild(s.ctx, telemetry.Rebuild{
		Value:     s.value,
		Formatted: s.formatted,
		Tracks:    len(s.targets),
		Inserted:  s.lastEdit.Inserted,
		Removed:   s.lastEdit.Removed,
		Replaced:  s.lastEdit.Replaced,
		Animated:  s.animated,
		Start:     start,
		End:       time.Now(),
	})
}

// CompleteAlignment is the phase 1 completion event: every track scrolls
// to its target unit and the spinner enters PhaseSpinning. It returns false
// if no alignment was pending.
func (s *Spinner) CompleteAlignment() bool {
	if s.phase != PhaseAlignment {
		return false
	}
	for i, t := range s.composer.Tracks() {
		t.ScrollToUnit(s.targets[i])
	}
	s.phase = PhaseSpinning
	return true
}

// CompleteSpinning is the phase 2 completion event. It returns false if no
// spinning was pending.
func (s *Spinner) CompleteSpinning() bool {
	if s.phase != PhaseSpinning {
		return false
	}
	s.phase = PhaseIdle
	return true
}

// Settle delivers every pending completion event, leaving the spinner idle.
func (s *Spinner) Settle() {
	s.CompleteAlignment()
	s.CompleteSpinning()
}

func (s *Spinner) newSeparator() *track.Track {
	f := track.NewFactory(s.arena, s.styles.Separator, s.measurer)
	return f.New(s.formatter.DecimalSeparator())
}

func (s *Spinner) sizeChanged(size track.Size) {
	s.intrinsic = nil
	s.log.Debug("preferred size changed", "width", size.Width, "height", size.Height)
	if s.OnResize != nil {
		s.OnResize(size)
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
