// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrPlatformNotSupported is returned if the platform is not one of the
	// known platforms.
	ErrPlatformNotSupported = errors.New("platform not supported")

	// ErrEmptyRelease is returned if uname does not report a kernel release.
	ErrEmptyRelease = errors.New("empty kernel release")
)
