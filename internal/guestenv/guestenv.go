// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guestenv

import (
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const (
	// KeyHost is the host-facing address the guest application should use.
	KeyHost = "HOST"

	// KeySecret is a credential shared between host services and the guest
	// application. Its value is never logged.
	KeySecret = "INTERNAL_SECRET"
)

// AllowList is the ordered list of variable names that may be passed into the
// guest.
var AllowList = []string{KeyHost, KeySecret} //nolint:gochecknoglobals

// Policy defines how allow-listed variables absent on the host are handled.
type Policy int

const (
	// OmitMissing leaves absent variables out of the guest environment.
	OmitMissing Policy = iota

	// EmptyPlaceholder passes absent variables with an empty value, like
	// "HOST=".
	EmptyPlaceholder
)

// Host is a read-only snapshot of the host environment.
type Host map[string]string

// HostFromEnviron builds a [Host] from "key=value" entries as returned by
// [os.Environ]. Entries without "=" are ignored. If a key is present more than
// once, the last entry wins.
func HostFromEnviron(environ []string) Host {
	entries := lo.Filter(environ, func(entry string, _ int) bool {
		return strings.Contains(entry, "=")
	})

	return lo.Associate(entries, func(entry string) (string, string) {
		key, value, _ := strings.Cut(entry, "=")
		return key, value
	})
}

// Merge returns a new [Host] with the entries of other applied on top of h.
func (h Host) Merge(other map[string]string) Host {
	return lo.Assign(h, Host(other))
}

// Environ is the environment passed into the guest. Entries are "key=value"
// strings in [AllowList] order.
type Environ []string

// Keys returns the variable names present in the environment.
func (e Environ) Keys() []string {
	return lo.Map(e, func(entry string, _ int) string {
		key, _, _ := strings.Cut(entry, "=")
		return key
	})
}

// Filter returns the allow-listed guest environment from the given host
// environment.
//
// A log message is emitted for each variable taken from the host. The value
// of [KeySecret] is redacted in it.
func Filter(host Host, policy Policy) Environ {
	return lo.FilterMap(AllowList, func(key string, _ int) (string, bool) {
		value, found := host[key]
		if !found {
			slog.Debug("Environment variable not set on host",
				slog.String("name", key))

			return key + "=", policy == EmptyPlaceholder
		}

		slog.Info("Setting environment variable",
			slog.String("name", key),
			slog.Any("value", logValue(key, value)))

		return key + "=" + value, true
	})
}

func logValue(key, value string) any {
	if key == KeySecret {
		return Secret(value)
	}

	return value
}
