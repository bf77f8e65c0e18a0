package report

import (
	"fmt"
	"io"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

const (
	colReset = "\033[0m"
	colRed   = "\033[31m"
	colGreen = "\033[32m"
	colGrey  = "\033[90m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, o *Outcome) error {
	duration := o.EndTime.Sub(o.StartTime).String()

	if o.Valid {
		fmt.Fprintf(w, "%s %s matches %s %s\n",
			tr.cs(colGreen, "[PASS]"),
			o.Input,
			o.Definition,
			tr.cs(colGrey, "("+duration+")"))
		return nil
	}

	fmt.Fprintf(w, "%s %s does not match %s %s\n",
		tr.cs(colRed, "[FAIL]"),
		o.Input,
		o.Definition,
		tr.cs(colGrey, "("+duration+")"))
	fmt.Fprintf(w, "  %s %s\n", tr.cs(colRed, "✗"), o.Reason)
	if o.Path != "" {
		fmt.Fprintf(w, "    %s\n", tr.cs(colGrey, "at "+o.Path))
	}
	return nil
}
