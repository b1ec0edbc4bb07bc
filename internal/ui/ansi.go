package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// SetOutput redirects OK/Fail/Panel, mainly for tests and cobra's writers.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// colorEnabled honors NO_COLOR and non-terminal stdout via termenv.
func colorEnabled() bool {
	if disableColor {
		return false
	}
	if forceColor {
		return true
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}

func C(color, s string) string {
	if color == "" || !colorEnabled() {
		return s
	}
	return color + s + reset
}

func OK(msg string)   { fmt.Fprintln(stdout, C(fgGreen, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, C(fgRed, symCross+" "+msg)) }
