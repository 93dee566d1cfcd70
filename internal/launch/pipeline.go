// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"fmt"
	"log/slog"

	"github.com/aibor/vmlaunch/internal/guestenv"
	"github.com/aibor/vmlaunch/internal/krun"
	"github.com/aibor/vmlaunch/internal/portmap"
)

// Pipeline configures and starts a single VM. It is not safe for concurrent
// use and can not be reused.
type Pipeline struct {
	runtime krun.Runtime
	vmCtx   krun.Context
	config  Config
	state   State
}

// New returns a new [Pipeline] using the given runtime.
func New(runtime krun.Runtime) *Pipeline {
	return &Pipeline{
		runtime: runtime,
		config: Config{
			VCPUs:    VCPUs,
			Memory:   Memory,
			ExecPath: ExecPath,
		},
	}
}

// Launch runs a new [Pipeline] with the given runtime and inputs.
func Launch(
	runtime krun.Runtime,
	args Args,
	host guestenv.Host,
	policy guestenv.Policy,
) error {
	return New(runtime).Run(args, host, policy)
}

// State returns the current state of the pipeline.
func (p *Pipeline) State() State {
	return p.state
}

// Config returns the configuration collected so far.
func (p *Pipeline) Config() Config {
	return p.config
}

// Run walks through all stages in order and hands the process over to the
// VM.
//
// It only returns if a stage fails. Once the VM is started, the process exits
// with the guest's exit code.
func (p *Pipeline) Run(args Args, host guestenv.Host, policy guestenv.Policy) error {
	err := p.ParseArgs(args)
	if err != nil {
		return err
	}

	err = p.FilterEnv(host, policy)
	if err != nil {
		return err
	}

	stages := []func() error{
		p.AcquireContext,
		p.SetResources,
		p.BindRoot,
		p.MapPorts,
		p.ConfigureExec,
	}

	for _, stage := range stages {
		err := stage()
		if err != nil {
			return err
		}
	}

	return p.StartEnter()
}

// ParseArgs takes the invocation arguments and derives the port mapping.
func (p *Pipeline) ParseArgs(args Args) error {
	return p.advance(Unstarted, ArgsParsed, func() error {
		mapping, err := portmap.Format(args.LocalPort)
		if err != nil {
			return &ArgumentError{Err: fmt.Errorf("port mapping: %w", err)}
		}

		p.config.RootPath = args.RootPath
		p.config.PortMap = []string{mapping}

		return nil
	})
}

// FilterEnv selects the guest environment from the given host environment.
func (p *Pipeline) FilterEnv(host guestenv.Host, policy guestenv.Policy) error {
	return p.advance(ArgsParsed, EnvFiltered, func() error {
		p.config.ExecEnv = guestenv.Filter(host, policy)

		slog.Debug("Guest environment",
			slog.Any("names", p.config.ExecEnv.Keys()))

		return nil
	})
}

// AcquireContext creates the VM context all further stages operate on.
func (p *Pipeline) AcquireContext() error {
	return p.advance(EnvFiltered, ContextAcquired, func() error {
		slog.Info("Initializing VM context")

		vmCtx, err := p.runtime.CreateContext()
		if err != nil {
			return &ContextCreationError{Err: err}
		}

		p.vmCtx = vmCtx

		return nil
	})
}

// SetResources applies the fixed CPU and memory configuration.
func (p *Pipeline) SetResources() error {
	return p.advance(ContextAcquired, ResourcesSet, func() error {
		slog.Debug("Setting VM resources",
			slog.Int("vcpus", int(p.config.VCPUs)),
			slog.String("memory", p.config.Memory.String()))

		err := p.vmCtx.SetVMConfig(p.config.VCPUs, p.config.MemoryMiB())
		if err != nil {
			return &ConfigurationError{Stage: StageResources, Err: err}
		}

		return nil
	})
}

// BindRoot sets the guest root file system.
func (p *Pipeline) BindRoot() error {
	return p.advance(ResourcesSet, RootBound, func() error {
		slog.Info("Setting VM root", slog.String("path", p.config.RootPath))

		err := p.vmCtx.SetRoot(p.config.RootPath)
		if err != nil {
			return &ConfigurationError{Stage: StageRoot, Err: err}
		}

		return nil
	})
}

// MapPorts installs the port mapping.
func (p *Pipeline) MapPorts() error {
	return p.advance(RootBound, PortMapped, func() error {
		slog.Info("Mapping TCP ports", slog.Any("ports", p.config.PortMap))

		err := p.vmCtx.SetPortMap(p.config.PortMap)
		if err != nil {
			return &ConfigurationError{Stage: StagePortMap, Err: err}
		}

		return nil
	})
}

// ConfigureExec sets the guest executable and its environment.
func (p *Pipeline) ConfigureExec() error {
	return p.advance(PortMapped, ExecConfigured, func() error {
		slog.Info("Executing in VM", slog.String("path", p.config.ExecPath))

		err := p.vmCtx.SetExec(
			p.config.ExecPath,
			p.config.ExecArgs,
			p.config.ExecEnv,
		)
		if err != nil {
			return &ConfigurationError{Stage: StageExec, Err: err}
		}

		return nil
	})
}

// StartEnter starts the VM. It only returns if the VM could not be started.
func (p *Pipeline) StartEnter() error {
	return p.advance(ExecConfigured, Started, func() error {
		p.state = Started

		err := p.vmCtx.StartEnter()
		if err == nil {
			err = krun.ErrReturned
		}

		return &StartError{Err: err}
	})
}

// advance runs fn if the pipeline is in state from. On success the pipeline
// moves to state to, on failure to [Aborted].
func (p *Pipeline) advance(from, to State, fn func() error) error {
	if p.state != from {
		return fmt.Errorf("%s -> %s in state %s: %w", from, to, p.state, ErrOutOfOrder)
	}

	err := fn()
	if err != nil {
		p.state = Aborted
		return err
	}

	p.state = to

	return nil
}
