package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"shelf/internal/entry"
	"shelf/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportError prints validation failures one line per violated field;
// every other error prints as-is.
func reportError(w io.Writer, err error) {
	if services.IsValidation(err) {
		fmt.Fprintln(w, "Invalid input:")
		for _, msg := range entry.ValidationMessages(err) {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
		return
	}
	fmt.Fprintln(w, err)
}
