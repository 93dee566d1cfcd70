// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package portmap derives the single TCP port forwarding rule passed to the
// VM runtime. Rules use the "hostPort:guestPort" notation libkrun expects.
package portmap
