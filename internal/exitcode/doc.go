// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode defines the exit codes of the launcher process.
//
// The codes are only observed if the VM was never entered. Once the runtime
// took over the process, it exits with the guest's exit code.
package exitcode
