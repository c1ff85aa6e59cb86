package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Exitf writes a formatted message to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	exitf(os.Stderr, os.Exit, format, args...)
}

func exitf(w io.Writer, exit func(int), format string, args ...any) {
	fmt.Fprintf(w, strings.TrimRight(format, "\n")+"\n", args...)
	exit(1)
}
