package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes an uncolored text table.
	OutputModePlain OutputMode = iota
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	if m == OutputModeInteractive {
		return "interactive"
	}
	return "plain"
}

// DetectOutputMode picks the interactive TUI only when both stdin and stdout
// are terminals, NO_COLOR is unset, and forcePlain is false.
func DetectOutputMode(forcePlain bool) OutputMode {
	return detectOutputMode(forcePlain, isTerminal(os.Stdin), isTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(forcePlain, stdinTTY, stdoutTTY bool, lookupEnv func(string) (string, bool)) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, ok := lookupEnv("TERM"); ok && v == "dumb" {
		return OutputModePlain
	}
	if !stdinTTY || !stdoutTTY {
		return OutputModePlain
	}
	return OutputModeInteractive
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
