// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// Exit statuses by error category.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
	ExitBadData  = 4
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitStatus maps an error returned by a tool to its process exit
// status, and reports whether the error message should be printed.
// A nil error is status 0.
func ExitStatus(err error) (status int, printMessage bool) {
	if err == nil {
		return 0, false
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.Code, false
	}
	switch Category(err) {
	case CategoryValidation:
		return ExitUsage, true
	case CategoryNotFound:
		return ExitNotFound, true
	case CategoryData:
		return ExitBadData, true
	default:
		return ExitFailure, true
	}
}
