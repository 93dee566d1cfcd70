// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"strconv"

	"github.com/aibor/vmlaunch/internal/launch"
)

const usageMessage = `Usage:
    %s [flags...] <root_path> <local_port>

Runs /bin/app from root_path in a microVM. Host TCP port local_port is
forwarded to guest TCP port 80. Only the environment variables HOST and
INTERNAL_SECRET are passed into the guest.
`

type flags struct {
	name    string
	flagSet *flag.FlagSet

	args launch.Args

	envFile              string
	emptyEnvPlaceholders bool
	debug                bool
	version              bool
}

func newFlags(name string, output io.Writer) *flags {
	f := &flags{name: name}
	f.initFlagset(output)

	return f
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(f.name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.envFile,
		"envFile",
		f.envFile,
		"dotenv file with variables applied on top of the process "+
			"environment. Only allow-listed variables are passed to the guest.",
	)

	flagSet.BoolVar(
		&f.emptyEnvPlaceholders,
		"emptyEnvPlaceholders",
		f.emptyEnvPlaceholders,
		"pass allow-listed variables missing on the host with empty value "+
			"instead of omitting them",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) parseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}

		return &UsageError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		return f.printVersionInformation()
	}

	positionalArgs := f.flagSet.Args()
	if len(positionalArgs) != 2 {
		return f.fail("arguments", ErrArgCount)
	}

	port, err := strconv.ParseUint(positionalArgs[1], 10, 16)
	if err != nil || port < 1 {
		return f.fail("local port "+strconv.Quote(positionalArgs[1]), ErrPort)
	}

	f.args = launch.Args{
		RootPath:  positionalArgs[0],
		LocalPort: positionalArgs[1],
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &UsageError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprintf(f.flagSet.Output(), usageMessage, f.name)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
