// Package output builds termenv outputs with a shared color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile detected from the environment.
// NO_COLOR forces plain ASCII.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the basic ANSI profile unless NO_COLOR is set.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New returns an output on w using ColorProfile. A nil w means stderr.
func New(w io.Writer) *termenv.Output {
	return NewWithProfile(w, ColorProfile)
}

// NewWithProfile returns an output on w using the profile chosen by profileFn.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
}
