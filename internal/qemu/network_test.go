// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/aibor/qemucmd/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortForward(t *testing.T) {
	tests := []struct {
		name        string
		rule        string
		expected    qemu.PortForward
		expectedErr error
	}{
		{
			name:     "ssh",
			rule:     "8022,22",
			expected: qemu.PortForward{Host: 8022, Guest: 22},
		},
		{
			name:     "spaces",
			rule:     "8080, 80",
			expected: qemu.PortForward{Host: 8080, Guest: 80},
		},
		{
			name:        "no separator",
			rule:        "8022:22",
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name:        "not a number",
			rule:        "ssh,22",
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name:        "out of range",
			rule:        "65536,22",
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name:        "zero",
			rule:        "0,22",
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name:        "empty guest",
			rule:        "8022,",
			expectedErr: &qemu.ArgumentError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := qemu.ParsePortForward(tt.rule)
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestPortForward_String(t *testing.T) {
	forward := qemu.PortForward{Host: 8022, Guest: 22}
	assert.Equal(t, "tcp::8022-:22", forward.String())
}
