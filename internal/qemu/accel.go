// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"

	"github.com/aibor/qemucmd/internal/sys"
)

// AcceleratorArgs returns the arguments enabling hardware virtualization for
// the given host platform: KVM on Linux, Hypervisor.framework on macOS.
func AcceleratorArgs(platform sys.Platform) ([]Argument, error) {
	switch platform {
	case sys.Linux:
		return []Argument{UniqueArg("enable-kvm")}, nil
	case sys.Darwin:
		return []Argument{UniqueArg("accel", "hvf")}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}
}
