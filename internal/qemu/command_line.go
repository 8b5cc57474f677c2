// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"slices"

	"github.com/kballard/go-shellquote"
)

// CommandLine is an ordered list of tokens: the executable followed by its
// arguments.
//
// The display form returned by [CommandLine.String] is always rendered from
// the same tokens that [CommandLine.Tokens] returns.
type CommandLine struct {
	tokens []string
}

// NewCommandLine returns a new [CommandLine] for the given executable.
func NewCommandLine(executable string) *CommandLine {
	return &CommandLine{
		tokens: []string{executable},
	}
}

// Append adds the given tokens to the end of the command line.
func (c *CommandLine) Append(tokens ...string) {
	c.tokens = append(c.tokens, tokens...)
}

// Tokens returns a copy of the tokens that can be used with [exec.Command].
func (c *CommandLine) Tokens() []string {
	return slices.Clone(c.tokens)
}

// String returns the command line as shell command string. Tokens are quoted
// as needed, so the string can be pasted into a shell. Tokens with
// whitespace are single-quoted, other shell special characters are escaped
// with backslash.
func (c *CommandLine) String() string {
	return shellquote.Join(c.tokens...)
}
