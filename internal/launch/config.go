// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

import (
	"github.com/aibor/vmlaunch/internal/guestenv"
	"github.com/c2h5oh/datasize"
)

// Fixed VM parameters.
const (
	VCPUs    uint8             = 1
	Memory   datasize.ByteSize = 512 * datasize.MB
	ExecPath                   = "/bin/app"
)

// Args are the invocation arguments.
type Args struct {
	// RootPath is the host directory used as guest root file system. It is
	// not checked by the pipeline. The runtime is authoritative.
	RootPath string

	// LocalPort is the host TCP port forwarded to the guest's port 80, as
	// given on the command line.
	LocalPort string
}

// Config is the VM configuration as it is applied to the VM context.
type Config struct {
	VCPUs    uint8
	Memory   datasize.ByteSize
	RootPath string
	PortMap  []string
	ExecPath string
	ExecArgs []string
	ExecEnv  guestenv.Environ
}

// MemoryMiB returns the memory size in MiB as expected by the runtime.
func (c *Config) MemoryMiB() uint32 {
	return uint32(c.Memory / datasize.MB)
}
