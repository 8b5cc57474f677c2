// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "slices"

// SerialTarget is the host side a guest serial port is redirected to.
type SerialTarget string

// Accepted serial targets.
const (
	SerialTargetStdio        SerialTarget = "stdio"
	SerialTargetMonitorStdio SerialTarget = "mon:stdio"
	SerialTargetPTY          SerialTarget = "pty"
	SerialTargetVC           SerialTarget = "vc"
	SerialTargetNull         SerialTarget = "null"
	SerialTargetNone         SerialTarget = "none"
)

// SerialTargets returns all accepted serial targets.
func SerialTargets() []SerialTarget {
	return []SerialTarget{
		SerialTargetStdio,
		SerialTargetMonitorStdio,
		SerialTargetPTY,
		SerialTargetVC,
		SerialTargetNull,
		SerialTargetNone,
	}
}

func (t SerialTarget) isKnown() bool {
	return slices.Contains(SerialTargets(), t)
}

// String implements [fmt.Stringer].
func (t SerialTarget) String() string {
	return string(t)
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *SerialTarget) UnmarshalText(text []byte) error {
	target := SerialTarget(text)

	if !target.isKnown() {
		return ErrSerialTargetInvalid
	}

	*t = target

	return nil
}
