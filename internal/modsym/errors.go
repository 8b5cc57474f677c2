// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"errors"
	"strings"
)

var (
	// ErrMissingSections is returned if a module has no readable .text
	// section address. This is usually the case for modules that are listed
	// but not (fully) loaded, or if sysfs is not readable.
	ErrMissingSections = errors.New("missing module sections")

	// ErrMalformedModulePath is returned if a module path does not start with
	// /lib/modules/<version>/.
	ErrMalformedModulePath = errors.New("malformed module path")

	// ErrNoModuleFilename is returned if modinfo output does not contain a
	// filename field.
	ErrNoModuleFilename = errors.New("no filename in modinfo output")
)

// ModinfoExecError is returned if the modinfo command fails.
type ModinfoExecError struct {
	Err    error
	Stderr string
}

// Error implements the [error] interface.
func (e *ModinfoExecError) Error() string {
	msg := "modinfo: " + e.Err.Error()

	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ModinfoExecError) Is(other error) bool {
	_, ok := other.(*ModinfoExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ModinfoExecError) Unwrap() error {
	return e.Err
}
