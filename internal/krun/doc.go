// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package krun provides the VM runtime used for launching the microVM.
//
// [Runtime] and [Context] describe the capabilities required from the
// runtime. [Libkrun] implements them on top of libkrun. The binding is only
// compiled with cgo enabled and the "libkrun" build tag set, e.g.:
//
//	go build -tags libkrun ./cmd/vmlaunch
//
// Without it, [Libkrun.CreateContext] fails with [ErrUnsupported].
package krun
