package report

import (
	"io"
	"time"

	"github.com/goccy/go-json"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonOutput struct {
	Definition string `json:"definition"`
	Input      string `json:"input"`
	Valid      bool   `json:"valid"`
	Path       string `json:"path,omitempty"`
	Reason     string `json:"reason,omitempty"`
	StartTime  string `json:"startTime"`
	Duration   string `json:"duration"`
}

func (jr *JSONReporter) Write(w io.Writer, o *Outcome) error {
	out := jsonOutput{
		Definition: o.Definition,
		Input:      o.Input,
		Valid:      o.Valid,
		Path:       o.Path,
		Reason:     o.Reason,
		StartTime:  o.StartTime.Format(time.RFC3339),
		Duration:   o.EndTime.Sub(o.StartTime).String(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// The breadcrumb contains "->"; keep it verbatim instead of >.
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
