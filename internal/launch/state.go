// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launch

// State is the progress of a [Pipeline].
type State int

// Pipeline states in the order they are reached.
const (
	Unstarted State = iota
	ArgsParsed
	EnvFiltered
	ContextAcquired
	ResourcesSet
	RootBound
	PortMapped
	ExecConfigured
	Started
	Aborted
)

var stateNames = map[State]string{ //nolint:gochecknoglobals
	Unstarted:       "unstarted",
	ArgsParsed:      "args parsed",
	EnvFiltered:     "env filtered",
	ContextAcquired: "context acquired",
	ResourcesSet:    "resources set",
	RootBound:       "root bound",
	PortMapped:      "port mapped",
	ExecConfigured:  "exec configured",
	Started:         "started",
	Aborted:         "aborted",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "unknown"
	}

	return name
}
