// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"errors"
	"fmt"
)

// ErrOutOfOrder is returned if a stage is run in a state other than the one
// its predecessor leaves behind.
var ErrOutOfOrder = errors.New("stage out of order")

// Stage names a configuration stage.
type Stage string

// Configuration stages.
const (
	StageResources Stage = "configure resources"
	StageRoot      Stage = "configure root"
	StagePortMap   Stage = "configure port map"
	StageExec      Stage = "configure exec"
)

// ArgumentError indicates invalid invocation arguments.
type ArgumentError struct {
	Err error
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// ContextCreationError indicates the runtime failed to create a VM context.
type ContextCreationError struct {
	Err error
}

// Error implements the [error] interface.
func (e *ContextCreationError) Error() string {
	return "create context: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*ContextCreationError) Is(other error) bool {
	_, ok := other.(*ContextCreationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ContextCreationError) Unwrap() error {
	return e.Err
}

// ConfigurationError indicates the runtime rejected a configuration stage.
type ConfigurationError struct {
	Stage Stage
	Err   error
}

// Error implements the [error] interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ConfigurationError) Is(other error) bool {
	_, ok := other.(*ConfigurationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// StartError indicates the runtime returned from start, so the VM did not
// run.
type StartError struct {
	Err error
}

// Error implements the [error] interface.
func (e *StartError) Error() string {
	return "start: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*StartError) Is(other error) bool {
	_, ok := other.(*StartError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StartError) Unwrap() error {
	return e.Err
}
