// Package output creates termenv outputs for the renderers and the log handler.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for a writer. NO_COLOR always yields Ascii.
// Interactive writers get the detected terminal profile and everything else gets
// basic ANSI, which most CI log viewers understand.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if interactive {
		return termenv.EnvColorProfile()
	}
	return termenv.ANSI
}

// New creates a termenv.Output for w. A nil writer means stderr.
func New(w io.Writer, interactive bool) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(Profile(interactive)),
		termenv.WithTTY(true),
	)
}
