// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"

	"github.com/aibor/vmlaunch/internal/launch"
)

// Exit codes by failure class.
const (
	OK              = 0
	Usage           = 1
	ContextCreation = 2
	Configuration   = 3
	Start           = 4

	// Host is used for any other failure on the host side. It is chosen high
	// to not collide with the codes above.
	Host = 125
)

// From returns the exit code for the given error.
//
// If the error is nil, the exit code is [OK]. Errors of the [launch] package
// map to their class. Any other error results in [Host].
func From(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, &launch.ArgumentError{}):
		return Usage
	case errors.Is(err, &launch.ContextCreationError{}):
		return ContextCreation
	case errors.Is(err, &launch.ConfigurationError{}):
		return Configuration
	case errors.Is(err, &launch.StartError{}):
		return Start
	default:
		return Host
	}
}
