// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"runtime"
	"slices"
)

// Platform is a host operating system as reported by [runtime.GOOS].
type Platform string

// Known host platforms.
const (
	Linux  Platform = "linux"
	Darwin Platform = "darwin"
)

// Native is the platform of the running host.
const Native Platform = Platform(runtime.GOOS)

// IsKnown returns if the platform is one of the known platforms.
func (p Platform) IsKnown() bool {
	return slices.Contains([]Platform{Linux, Darwin}, p)
}

// String implements [fmt.Stringer].
func (p Platform) String() string {
	return string(p)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Platform) UnmarshalText(text []byte) error {
	platform := Platform(text)

	if !platform.IsKnown() {
		return ErrPlatformNotSupported
	}

	*p = platform

	return nil
}
