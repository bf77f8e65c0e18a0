// Package report renders validation outcomes for CLI consumption.
package report

import (
	"errors"
	"io"
	"time"

	"github.com/bitshepherds/yamlschema/internal/validate"
)

// Outcome is the result of one validation run.
type Outcome struct {
	Definition string // schema definition path
	Input      string // data document path
	Valid      bool
	Path       string // breadcrumb of the failure, when invalid
	Reason     string // failure message, when invalid
	StartTime  time.Time
	EndTime    time.Time
}

// NewOutcome builds an Outcome from a validation result. A *PathError is
// split into its breadcrumb and cause; any other error is carried whole.
func NewOutcome(definition, input string, start, end time.Time, err error) *Outcome {
	o := &Outcome{
		Definition: definition,
		Input:      input,
		Valid:      err == nil,
		StartTime:  start,
		EndTime:    end,
	}
	if err == nil {
		return o
	}

	var pathErr *validate.PathError
	if errors.As(err, &pathErr) {
		o.Path = pathErr.Path
		o.Reason = pathErr.Err.Error()
		return o
	}
	o.Reason = err.Error()
	return o
}

// Reporter writes an Outcome to the given writer.
type Reporter interface {
	Write(w io.Writer, o *Outcome) error
}

// New returns the Reporter for the requested output format.
func New(format string, useColour bool) Reporter {
	if format == "json" {
		return &JSONReporter{}
	}
	return &TextReporter{UseColour: useColour}
}
