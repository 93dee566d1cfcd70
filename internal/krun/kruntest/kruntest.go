// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package kruntest provides a recording [krun.Runtime] for tests.
package kruntest

import (
	"slices"

	"github.com/aibor/vmlaunch/internal/krun"
)

// Op identifies a runtime operation.
type Op string

// Runtime operations, named like their libkrun counterparts.
const (
	OpCreateContext Op = "create_ctx"
	OpSetVMConfig   Op = "set_vm_config"
	OpSetRoot       Op = "set_root"
	OpSetPortMap    Op = "set_port_map"
	OpSetExec       Op = "set_exec"
	OpStartEnter    Op = "start_enter"
)

// Call is a single recorded operation with its arguments.
type Call struct {
	Op   Op
	Args []any
}

// Runtime records all calls on itself and the contexts it creates.
//
// StartEnter returns nil unless a failure is injected for [OpStartEnter], as
// a test process can not be handed over to a VM.
type Runtime struct {
	Calls []Call

	failures map[Op]error
}

var _ krun.Runtime = (*Runtime)(nil)

// FailOn makes the given operation fail with the given error.
func (r *Runtime) FailOn(op Op, err error) *Runtime {
	if r.failures == nil {
		r.failures = make(map[Op]error)
	}

	r.failures[op] = err

	return r
}

// Ops returns the recorded operations in call order.
func (r *Runtime) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for idx, call := range r.Calls {
		ops[idx] = call.Op
	}

	return ops
}

func (r *Runtime) record(op Op, args ...any) error {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
	return r.failures[op]
}

// CreateContext implements [krun.Runtime].
func (r *Runtime) CreateContext() (krun.Context, error) {
	err := r.record(OpCreateContext)
	if err != nil {
		return nil, err
	}

	return &context{runtime: r}, nil
}

type context struct {
	runtime *Runtime
}

func (c *context) SetVMConfig(vcpus uint8, memoryMiB uint32) error {
	return c.runtime.record(OpSetVMConfig, vcpus, memoryMiB)
}

func (c *context) SetRoot(path string) error {
	return c.runtime.record(OpSetRoot, path)
}

func (c *context) SetPortMap(ports []string) error {
	return c.runtime.record(OpSetPortMap, slices.Clone(ports))
}

func (c *context) SetExec(path string, args, env []string) error {
	return c.runtime.record(OpSetExec, path, slices.Clone(args), slices.Clone(env))
}

func (c *context) StartEnter() error {
	return c.runtime.record(OpStartEnter)
}
