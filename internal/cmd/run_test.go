// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/aibor/vmlaunch/internal/cmd"
	"github.com/aibor/vmlaunch/internal/exitcode"
	"github.com/aibor/vmlaunch/internal/krun"
	"github.com/aibor/vmlaunch/internal/krun/kruntest"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	testFS := fstest.MapFS{
		"etc/app.env": &fstest.MapFile{
			Data: []byte("HOST=9.9.9.9\nINTERNAL_SECRET=from-file\nPATH=/evil\n"),
		},
		"etc/broken.env": &fstest.MapFile{
			Data: []byte("HOST='unterminated\n"),
		},
	}

	tests := []struct {
		name             string
		args             []string
		environ          []string
		failOn           kruntest.Op
		failErr          error
		expectedExitCode int
		expectedCalls    []kruntest.Call
		expectedOps      []kruntest.Op
		expectedStderr   string
	}{
		{
			name:             "help",
			args:             []string{"-help"},
			expectedExitCode: exitcode.OK,
			expectedStderr:   "Usage:",
		},
		{
			name:             "no arguments",
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "exactly two arguments required",
		},
		{
			name:             "one argument",
			args:             []string{"/var/vm-root"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "exactly two arguments required",
		},
		{
			name:             "three arguments",
			args:             []string{"/var/vm-root", "80", "extra"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "exactly two arguments required",
		},
		{
			name:             "unknown flag",
			args:             []string{"-nope", "/var/vm-root", "80"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "flag provided but not defined",
		},
		{
			name:             "port not a number",
			args:             []string{"/var/vm-root", "http"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "local port must be a number",
		},
		{
			name:             "port zero",
			args:             []string{"/var/vm-root", "0"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "local port must be a number",
		},
		{
			name:             "port too high",
			args:             []string{"/var/vm-root", "65536"},
			expectedExitCode: exitcode.Usage,
			expectedStderr:   "local port must be a number",
		},
		{
			name:             "launch",
			args:             []string{"/var/vm-root", "80"},
			environ:          []string{"HOST=10.0.0.5", "PATH=/usr/bin"},
			expectedExitCode: exitcode.Start,
			expectedCalls: []kruntest.Call{
				{Op: kruntest.OpCreateContext},
				{Op: kruntest.OpSetVMConfig, Args: []any{uint8(1), uint32(512)}},
				{Op: kruntest.OpSetRoot, Args: []any{"/var/vm-root"}},
				{Op: kruntest.OpSetPortMap, Args: []any{[]string{"80:80"}}},
				{Op: kruntest.OpSetExec, Args: []any{
					"/bin/app",
					[]string(nil),
					[]string{"HOST=10.0.0.5"},
				}},
				{Op: kruntest.OpStartEnter},
			},
			expectedStderr: "VM did not run",
		},
		{
			name:    "launch with env file",
			args:    []string{"-envFile", "/etc/app.env", "/var/vm-root", "8080"},
			environ: []string{"HOST=10.0.0.5", "INTERNAL_SECRET=from-env"},
			failOn:  kruntest.OpStartEnter,
			failErr: krun.ErrReturned,
			expectedCalls: []kruntest.Call{
				{Op: kruntest.OpCreateContext},
				{Op: kruntest.OpSetVMConfig, Args: []any{uint8(1), uint32(512)}},
				{Op: kruntest.OpSetRoot, Args: []any{"/var/vm-root"}},
				{Op: kruntest.OpSetPortMap, Args: []any{[]string{"8080:80"}}},
				{Op: kruntest.OpSetExec, Args: []any{
					"/bin/app",
					[]string(nil),
					[]string{"HOST=9.9.9.9", "INTERNAL_SECRET=from-file"},
				}},
				{Op: kruntest.OpStartEnter},
			},
			expectedExitCode: exitcode.Start,
		},
		{
			name:    "launch with placeholders",
			args:    []string{"-emptyEnvPlaceholders", "/var/vm-root", "8080"},
			environ: []string{"PATH=/usr/bin"},
			failOn:  kruntest.OpSetExec,
			failErr: assert.AnError,
			expectedCalls: []kruntest.Call{
				{Op: kruntest.OpCreateContext},
				{Op: kruntest.OpSetVMConfig, Args: []any{uint8(1), uint32(512)}},
				{Op: kruntest.OpSetRoot, Args: []any{"/var/vm-root"}},
				{Op: kruntest.OpSetPortMap, Args: []any{[]string{"8080:80"}}},
				{Op: kruntest.OpSetExec, Args: []any{
					"/bin/app",
					[]string(nil),
					[]string{"HOST=", "INTERNAL_SECRET="},
				}},
			},
			expectedExitCode: exitcode.Configuration,
			expectedStderr:   "configure exec",
		},
		{
			name:             "missing env file",
			args:             []string{"-envFile", "/etc/missing.env", "/var/vm-root", "80"},
			expectedExitCode: exitcode.Host,
			expectedStderr:   "open env file",
		},
		{
			name:             "broken env file",
			args:             []string{"-envFile", "/etc/broken.env", "/var/vm-root", "80"},
			expectedExitCode: exitcode.Host,
			expectedStderr:   "parse env file",
		},
		{
			name:             "context creation fails",
			args:             []string{"/var/vm-root", "80"},
			failOn:           kruntest.OpCreateContext,
			failErr:          krun.ErrUnsupported,
			expectedExitCode: exitcode.ContextCreation,
			expectedOps:      []kruntest.Op{kruntest.OpCreateContext},
			expectedStderr:   "create context: built without libkrun support",
		},
		{
			name:             "root rejected",
			args:             []string{"/var/vm-root", "80"},
			failOn:           kruntest.OpSetRoot,
			failErr:          assert.AnError,
			expectedExitCode: exitcode.Configuration,
			expectedOps: []kruntest.Op{
				kruntest.OpCreateContext,
				kruntest.OpSetVMConfig,
				kruntest.OpSetRoot,
			},
			expectedStderr: "configure root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			runtime := &kruntest.Runtime{}
			if tt.failOn != "" {
				runtime.FailOn(tt.failOn, tt.failErr)
			}

			cfg := cmd.IO{
				Stdout:  &stdout,
				Stderr:  &stderr,
				Environ: tt.environ,
				FS:      testFS,
			}
			newRuntime := func(krun.LogLevel) krun.Runtime {
				return runtime
			}

			args := append([]string{"vmlaunch"}, tt.args...)
			exitCode := cmd.Run(args, cfg, newRuntime)

			assert.Equal(t, tt.expectedExitCode, exitCode, "exit code")
			assert.Contains(t, stderr.String(), tt.expectedStderr)

			if tt.expectedCalls != nil {
				assert.Equal(t, tt.expectedCalls, runtime.Calls)
			}

			if tt.expectedOps != nil {
				assert.Equal(t, tt.expectedOps, runtime.Ops())
			}

			if tt.expectedCalls == nil && tt.expectedOps == nil {
				assert.Empty(t, runtime.Calls, "no runtime calls expected")
			}
		})
	}
}

func TestRun_SecretNotPrinted(t *testing.T) {
	var stderr bytes.Buffer

	cfg := cmd.IO{
		Stdout:  &bytes.Buffer{},
		Stderr:  &stderr,
		Environ: []string{"HOST=1.2.3.4", "INTERNAL_SECRET=top-secret"},
		FS:      fstest.MapFS{},
	}
	newRuntime := func(krun.LogLevel) krun.Runtime {
		return &kruntest.Runtime{}
	}

	exitCode := cmd.Run(
		[]string{"vmlaunch", "-debug", "/var/vm-root", "80"},
		cfg,
		newRuntime,
	)

	assert.Equal(t, exitcode.Start, exitCode)
	assert.Contains(t, stderr.String(), "INTERNAL_SECRET")
	assert.NotContains(t, stderr.String(), "top-secret")
}
