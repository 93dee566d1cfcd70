// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package guestenv selects the environment variables that are passed from the
// host into the guest.
//
// Only the variables named in [AllowList] ever pass. Everything else in the
// host environment stays on the host. The host environment is injected as a
// [Host] snapshot, so the filter never reads the process environment itself.
package guestenv
