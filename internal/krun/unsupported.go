// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !cgo || !libkrun

package krun

// CreateContext implements [Runtime]. It always fails with [ErrUnsupported].
func (*Libkrun) CreateContext() (Context, error) {
	return nil, ErrUnsupported
}
