// Package utils holds tracing helpers for the scanner internals.
package utils

import (
	"fmt"
	"os"
)

var _, debugEnabled = os.LookupEnv("CHARSCAN_DEBUG")

// DPrint writes a tagged trace line to stderr when the CHARSCAN_DEBUG
// environment variable is set, and does nothing otherwise. Stream uses it to
// trace buffer growth and the end of its input.
func DPrint(format string, a ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprint(os.Stderr, "\033[0;31mcharscan:\033[0m ")
	fmt.Fprintf(os.Stderr, format, a...)
}
