// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrHelp is returned if help or version information was requested.
	ErrHelp = flag.ErrHelp

	// ErrReadBuildInfo is returned if build information can not be read.
	ErrReadBuildInfo = errors.New("failed to read build info")

	// ErrArgCount is returned if the number of positional arguments is wrong.
	ErrArgCount = errors.New("exactly two arguments required")

	// ErrPort is returned if the local port is not in range 1-65535.
	ErrPort = errors.New("local port must be a number in range 1-65535")
)

// UsageError wraps errors that occur during argument parsing.
type UsageError struct {
	err error
	msg string
}

func (e *UsageError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (*UsageError) Is(other error) bool {
	_, ok := other.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.err
}
