// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"testing"

	"github.com/aibor/qemucmd/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_UnmarshalText(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    sys.Platform
		expectedErr error
	}{
		{
			name:     "linux",
			input:    "linux",
			expected: sys.Linux,
		},
		{
			name:     "darwin",
			input:    "darwin",
			expected: sys.Darwin,
		},
		{
			name:        "windows",
			input:       "windows",
			expectedErr: sys.ErrPlatformNotSupported,
		},
		{
			name:        "empty",
			expectedErr: sys.ErrPlatformNotSupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var platform sys.Platform

			err := platform.UnmarshalText([]byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, platform)
		})
	}
}

func TestPlatform_IsKnown(t *testing.T) {
	assert.True(t, sys.Linux.IsKnown())
	assert.True(t, sys.Darwin.IsKnown())
	assert.False(t, sys.Platform("plan9").IsKnown())
}
