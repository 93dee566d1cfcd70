// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/aibor/vmlaunch/internal/exitcode"
	"github.com/aibor/vmlaunch/internal/guestenv"
	"github.com/aibor/vmlaunch/internal/krun"
	"github.com/aibor/vmlaunch/internal/launch"
)

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer

	// Environ is the process environment as returned by [os.Environ].
	Environ []string

	// FS is the host file system, rooted at "/".
	FS fs.FS
}

// NewRuntimeFunc returns the VM runtime to launch with.
type NewRuntimeFunc func(level krun.LogLevel) krun.Runtime

// NewLibkrun is the [NewRuntimeFunc] for the libkrun runtime.
func NewLibkrun(level krun.LogLevel) krun.Runtime {
	return krun.New(level)
}

func run(flags *flags, cfg IO, newRuntime NewRuntimeFunc) error {
	envFile := flags.envFile
	if envFile != "" {
		var err error

		envFile, err = filepath.Abs(envFile)
		if err != nil {
			return fmt.Errorf("env file path: %w", err)
		}
	}

	host, err := HostEnv(cfg.Environ, cfg.FS, envFile)
	if err != nil {
		return err
	}

	policy := guestenv.OmitMissing
	if flags.emptyEnvPlaceholders {
		policy = guestenv.EmptyPlaceholder
	}

	runtime := newRuntime(runtimeLogLevel(flags.debug))

	return launch.Launch(runtime, flags.args, host, policy)
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return exitcode.OK
	}

	// Parsing already printed usage errors, so just exit.
	if !errors.Is(err, &UsageError{}) {
		slog.Error(err.Error())
	}

	return exitcode.Usage
}

func handleRunError(err error) int {
	if errors.Is(err, &launch.StartError{}) {
		slog.Error("VM did not run", slog.Any("error", err))
	} else {
		slog.Error(err.Error())
	}

	return exitcode.From(err)
}

// Run is the main entry point for the CLI command. It returns only if the VM
// could not be entered and returns the exit code for the process.
func Run(args []string, cfg IO, newRuntime NewRuntimeFunc) int {
	name := "vmlaunch"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	setupLogging(cfg.Stderr, false)

	flags := newFlags(name, cfg.Stderr)

	err := flags.parseArgs(args)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = run(flags, cfg, newRuntime)
	if err != nil {
		return handleRunError(err)
	}

	return exitcode.OK
}
