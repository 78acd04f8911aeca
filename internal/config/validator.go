package config

import (
	"errors"
	"fmt"
	"strings"

	"odometer/internal/logging"
)

// ErrInvalid is matched by every ValidationErrors value.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "animation.fps")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Is lets errors.Is(err, ErrInvalid) match.
func (e ValidationErrors) Is(target error) bool { return target == ErrInvalid }

// Validate checks every field and returns all failures.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if err := c.Format.Validate(); err != nil {
		errs = append(errs, ValidationError{Field: "format", Value: c.Format, Message: err.Error()})
	}
	if c.Animation.SpinningDuration < 0 {
		errs = append(errs, ValidationError{
			Field: "animation.spinning_duration", Value: c.Animation.SpinningDuration,
			Message: "must not be negative",
		})
	}
	if c.Animation.AlignmentDuration < 0 {
		errs = append(errs, ValidationError{
			Field: "animation.alignment_duration", Value: c.Animation.AlignmentDuration,
			Message: "must not be negative",
		})
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		errs = append(errs, ValidationError{
			Field: "animation.fps", Value: c.Animation.FPS,
			Message: "must be between 1 and 240",
		})
	}
	switch strings.ToUpper(c.Log.Level) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
	default:
		errs = append(errs, ValidationError{
			Field: "log.level", Value: c.Log.Level,
			Message: "must be one of DEBUG, INFO, WARN, ERROR",
		})
	}
	return errs
}
