// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package portmap

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// GuestPort is the port the guest application listens on.
	GuestPort uint16 = 80

	// Capacity is the size of the buffer a rendered mapping has to fit in,
	// including the terminating NUL byte of the C representation.
	Capacity = 32

	separator = ":"
)

var (
	// ErrTooLong is returned if a rendered mapping does not fit [Capacity].
	ErrTooLong = errors.New("port mapping exceeds capacity")

	// ErrEmptyHostPort is returned if no host port is given.
	ErrEmptyHostPort = errors.New("host port must not be empty")
)

// Mapping forwards a host TCP port to a guest TCP port.
//
// The host side is kept as text, as given on the command line. The runtime is
// authoritative for its interpretation.
type Mapping struct {
	Host  string
	Guest uint16
}

// New returns a [Mapping] from the given host port to [GuestPort].
func New(hostPort string) Mapping {
	return Mapping{
		Host:  hostPort,
		Guest: GuestPort,
	}
}

// FromPort returns a [Mapping] from the given numeric host port to
// [GuestPort].
func FromPort(hostPort uint16) Mapping {
	return New(strconv.FormatUint(uint64(hostPort), 10))
}

// String returns the mapping in "host:guest" notation without any length
// check. Use [Mapping.Format] for the bounded variant.
func (m Mapping) String() string {
	return m.Host + separator + strconv.FormatUint(uint64(m.Guest), 10)
}

// Format renders the mapping in "host:guest" notation.
//
// The result plus a terminating NUL byte must fit into [Capacity] bytes. If it
// does not, [ErrTooLong] is returned and nothing is rendered.
func (m Mapping) Format() (string, error) {
	if m.Host == "" {
		return "", ErrEmptyHostPort
	}

	rendered := m.String()
	if len(rendered) >= Capacity {
		return "", fmt.Errorf("%d >= %d bytes: %w", len(rendered), Capacity, ErrTooLong)
	}

	return rendered, nil
}

// Format is a shortcut for rendering the [Mapping] of the given host port to
// [GuestPort].
func Format(hostPort string) (string, error) {
	return New(hostPort).Format()
}
