package genetic

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors
var (
	// ErrInvalidConfig is wrapped by every ConfigError
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvariant reports a logic defect detected during a run
	ErrInvariant = errors.New("internal invariant violated")
)

// ConfigError describes a rejected configuration field
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// CheckPositive rejects values below 1
func CheckPositive(field string, v int) error {
	if v < 1 {
		return &ConfigError{Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

// CheckRate rejects probabilities outside [0, 1], including NaN
func CheckRate(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ConfigError{Field: field, Value: v, Reason: "must be within [0, 1]"}
	}
	return nil
}
