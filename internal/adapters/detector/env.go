// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how command results are rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTable renders bordered tables for an interactive terminal.
	ModeTable
	// ModePlain renders aligned text for pipes and CI logs.
	ModePlain
	// ModeJSON renders machine-readable JSON.
	ModeJSON
)

func (m OutputMode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeTable
}

// ParseMode validates a user supplied --output value.
func ParseMode(flag string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "auto", "":
		return ModeAuto, nil
	case "table", "tty":
		return ModeTable, nil
	case "plain", "text", "ci":
		return ModePlain, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeAuto, zerr.With(zerr.New("unknown output mode, expected auto, table, plain or json"), "output", flag)
	}
}

// ResolveMode applies the user override to auto-detection. Unknown values keep the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	mode, err := ParseMode(userFlag)
	if err != nil || mode == ModeAuto {
		return autoDetected
	}
	return mode
}
