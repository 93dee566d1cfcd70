// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command vmlaunch runs /bin/app of a root directory in a libkrun microVM.
//
//	vmlaunch [flags...] <root_path> <local_port>
package main

import (
	"os"

	"github.com/aibor/vmlaunch/internal/cmd"
)

func main() {
	cfg := cmd.IO{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ(),
		FS:      os.DirFS("/"),
	}

	os.Exit(cmd.Run(os.Args, cfg, cmd.NewLibkrun))
}
