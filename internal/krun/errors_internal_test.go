// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package krun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCodeError(t *testing.T) {
	tests := []struct {
		name        string
		code        int32
		expectedErr error
		expectedMsg string
	}{
		{
			name: "zero",
			code: 0,
		},
		{
			name: "context id",
			code: 3,
		},
		{
			name:        "no such file",
			code:        -int32(unix.ENOENT),
			expectedErr: unix.ENOENT,
			expectedMsg: "set_root: ENOENT (no such file or directory)",
		},
		{
			name:        "invalid argument",
			code:        -int32(unix.EINVAL),
			expectedErr: unix.EINVAL,
			expectedMsg: "set_root: EINVAL (invalid argument)",
		},
		{
			name:        "unknown errno",
			code:        -4000,
			expectedErr: unix.Errno(4000),
			expectedMsg: "set_root: errno 4000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := codeError("set_root", tt.code)

			if tt.expectedErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, &Error{})
			assert.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}
