// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// KernelRelease returns the release of the running kernel, like "uname -r"
// does.
func KernelRelease() (string, error) {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	release := unix.ByteSliceToString(uts.Release[:])
	if release == "" {
		return "", ErrEmptyRelease
	}

	return release, nil
}
