// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

// Runtime creates VM contexts.
type Runtime interface {
	// CreateContext returns a new, unconfigured VM context.
	CreateContext() (Context, error)
}

// Context is a VM configuration session. All setters must be called before
// [Context.StartEnter].
type Context interface {
	// SetVMConfig sets the number of vCPUs and the memory size in MiB.
	SetVMConfig(vcpus uint8, memoryMiB uint32) error

	// SetRoot sets the host directory used as guest root file system.
	SetRoot(path string) error

	// SetPortMap sets the TCP port forwarding rules in "host:guest" notation.
	SetPortMap(ports []string) error

	// SetExec sets the guest executable with its arguments and environment.
	// The guest gets exactly the given environment. A nil env is an empty
	// environment.
	SetExec(path string, args, env []string) error

	// StartEnter starts the VM and hands the calling process over to it.
	//
	// It does not return if the VM starts. The process exits with the
	// guest's exit code once the VM shuts down. Any return is a failure.
	StartEnter() error
}

// LogLevel is the verbosity of the runtime's own log output.
type LogLevel uint32

// Log levels as defined by libkrun.
const (
	LogOff LogLevel = iota
	LogError
	LogWarn
	LogInfo
	LogDebug
	LogTrace
)

// Libkrun is the [Runtime] backed by libkrun.
type Libkrun struct {
	// LogLevel is applied before the first context is created.
	LogLevel LogLevel
}

// New returns a new [Libkrun] runtime with the given log level.
func New(level LogLevel) *Libkrun {
	return &Libkrun{LogLevel: level}
}
