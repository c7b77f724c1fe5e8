package config

import (
	"fmt"
	"io"
	"os"
)

// ExitCodeUsage is returned by CLI entry points when arguments are invalid.
const ExitCodeUsage = 2

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitWithCodef(1, format, args...)
}

// ExitWithCodef writes a formatted error message to stderr and exits with code.
func ExitWithCodef(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(code)
}
