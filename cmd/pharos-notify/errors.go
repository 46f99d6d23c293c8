package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks invocation problems detected before any request is sent.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// invocationError prints the command usage and wraps err as a usage error.
func invocationError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
	return &usageError{err: err}
}

func exitCode(err error) int {
	var usage *usageError
	if errors.As(err, &usage) {
		return exitUsage
	}
	return exitFailure
}
