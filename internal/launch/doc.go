// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launch configures and starts a single microVM.
//
// A [Pipeline] walks through a fixed sequence of stages, each of which is
// only allowed in the [State] the previous one left behind:
//
//	Unstarted -> ArgsParsed -> EnvFiltered -> ContextAcquired ->
//	ResourcesSet -> RootBound -> PortMapped -> ExecConfigured -> Started
//
// Any failure moves the pipeline to [Aborted]. There is no retry and no
// rollback. The partially configured VM context is abandoned and reclaimed
// with the process.
package launch
