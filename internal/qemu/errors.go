// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
)

var (
	// ErrUnsupportedPlatform is returned if hardware acceleration is requested
	// on a host platform there is no accelerator known for.
	ErrUnsupportedPlatform = errors.New("platform not supported for acceleration")

	// ErrUnknownDriveModifier is returned if a drive is given with a modifier
	// that is not known.
	ErrUnknownDriveModifier = errors.New("unknown drive modifier")

	// ErrSerialTargetInvalid is returned if a serial target is not one of the
	// accepted ones.
	ErrSerialTargetInvalid = errors.New("unknown serial target")

	// ErrArgumentCollision is returned if two [Argument]s are considered equal.
	ErrArgumentCollision = errors.New("colliding args")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred during [Command] execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "qemu: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
