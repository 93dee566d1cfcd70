// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"errors"

	"golang.org/x/sys/unix"
)

var (
	// ErrUnsupported is returned if the binary was built without libkrun
	// support.
	ErrUnsupported = errors.New("built without libkrun support")

	// ErrReturned is returned if the runtime returned from start without
	// reporting an error.
	ErrReturned = errors.New("runtime returned from start")
)

// Error is an error reported by a runtime operation.
type Error struct {
	Op    string
	Errno unix.Errno
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	name := unix.ErrnoName(e.Errno)
	if name == "" {
		return e.Op + ": " + e.Errno.Error()
	}

	return e.Op + ": " + name + " (" + e.Errno.Error() + ")"
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Errno
}

// codeError converts a libkrun return code into an error. Non-negative codes
// are successful, negative ones are negated errno values.
func codeError(op string, code int32) error {
	if code >= 0 {
		return nil
	}

	return &Error{Op: op, Errno: unix.Errno(-code)}
}
