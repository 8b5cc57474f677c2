// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
)

var (
	// ErrValueOutOfRange is returned if a numeric flag value is outside of
	// the accepted range.
	ErrValueOutOfRange = errors.New("value is outside of range")

	// ErrTooFewValues is returned if a flag that takes multiple values is
	// given less values than required.
	ErrTooFewValues = errors.New("too few values")

	// ErrWrongValueCount is returned if a flag that takes a fixed number of
	// values is given a different number of values.
	ErrWrongValueCount = errors.New("wrong number of values")
)

// ParseArgsError wraps errors that occur during argument parsing.
type ParseArgsError struct {
	err error
	msg string
}

func (e *ParseArgsError) Error() string {
	if e.err == nil {
		return e.msg
	}

	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

func (e *ParseArgsError) Is(other error) bool {
	_, ok := other.(*ParseArgsError)
	return ok
}

func (e *ParseArgsError) Unwrap() error {
	return e.err
}
