package planner

import (
	"errors"
	"fmt"

	"github.com/mazilong/tui.chart/internal/charttype"
)

var (
	// ErrUnknownFamily is returned when a series key names no supported family
	ErrUnknownFamily = charttype.ErrUnknownFamily
	// ErrUnknownChartType is returned when no planner exists for a chart type
	ErrUnknownChartType = errors.New("unknown chart type")
	// ErrTooManyFamilies is returned when a combo chart has more than two active families
	ErrTooManyFamilies = errors.New("too many chart type families")
	// ErrNoSeries is returned when the raw data has no series at all
	ErrNoSeries = errors.New("no series data")
)

// ConfigError reports a chart configuration the planner cannot turn into a
// component graph
type ConfigError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field, value string, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: err.Error(), Err: err}
}
