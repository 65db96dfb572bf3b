package sysexit

import (
	"fmt"

	"github.com/fatih/color"
)

// Color printers for each severity class.
var (
	successLabel = color.New(color.FgGreen).SprintFunc()
	signalLabel  = color.New(color.FgYellow).SprintFunc()
	errorLabel   = color.New(color.FgRed).SprintFunc()
)

// String renders the code as its reason phrase followed by the numeric value
// in parentheses, e.g. "i/o error (74)" or "hangup signal (129)". Codes
// without a recognised meaning render as "unknown error (n)"; signal-derived
// codes without a conventional signal name render as
// "terminated by signal N (n)".
func (c Code) String() string {
	if label, ok := labels[c]; ok {
		return fmt.Sprintf("%s (%d)", label, int(c))
	}
	if sig, ok := c.Signal(); ok {
		if label := signalLabels[sig]; label != "" {
			return fmt.Sprintf("%s (%d)", label, int(c))
		}
		return fmt.Sprintf("terminated by signal %d (%d)", sig, int(c))
	}
	return fmt.Sprintf("unknown error (%d)", int(c))
}

// Colored renders the same label as String, color-coded by severity: green
// for success, yellow for signal terminations, red for every other failure.
// Output degrades to the plain label when color is disabled (non-TTY output
// or color.NoColor).
func (c Code) Colored() string {
	s := c.String()
	if c == Success {
		return successLabel(s)
	}
	if _, ok := c.Signal(); ok {
		return signalLabel(s)
	}
	return errorLabel(s)
}
