package main

import (
	"errors"
	"fmt"
	"os"

	roc "github.com/jamesainslie/go-roc"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitUsage   = 1 // Rejected dataset, prevalence or flag value
	ExitError   = 2 // Configuration or I/O error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if errors.Is(err, roc.ErrInvalidArgument) {
			os.Exit(ExitUsage)
		}
		os.Exit(ExitError)
	}
}
