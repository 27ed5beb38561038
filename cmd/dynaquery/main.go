// Package main provides a CLI that turns YAML query definitions into DynamoDB
// Query requests.
//
// Usage:
//
//	dynaquery build -f query.yaml [--sdk]
//	dynaquery validate -f query.yaml
//
// The tool never contacts DynamoDB; it only prints what would be sent.
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitGeneral    = 1
	exitDefinition = 2
)

// exitError carries the exit code for a failed command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(exitGeneral)
	}
}
