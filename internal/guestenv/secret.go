// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestenv

import "log/slog"

const redacted = "REDACTED"

// Secret is a string that does not reveal its value when logged or printed.
type Secret string

// LogValue implements [slog.LogValuer].
func (Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// String implements [fmt.Stringer].
func (Secret) String() string {
	return redacted
}
