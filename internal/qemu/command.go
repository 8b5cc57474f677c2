// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"
)

// cancelWaitDelay is the time QEMU gets for shutting down gracefully on
// SIGTERM before it is killed.
const cancelWaitDelay = 5 * time.Second

// Command is a single QEMU command that can be printed and run.
type Command struct {
	line *CommandLine
}

// NewCommand compiles a new [Command] from the given [CommandSpec].
//
// It returns an error if the spec can not be compiled. Nothing is allocated
// for the command in this case.
func NewCommand(spec CommandSpec) (*Command, error) {
	if spec.Executable == "" {
		return nil, &ArgumentError{"no executable given"}
	}

	args, err := spec.arguments(NewNaming())
	if err != nil {
		return nil, fmt.Errorf("compile arguments: %w", err)
	}

	argStrings, err := BuildArgumentStrings(args)
	if err != nil {
		return nil, fmt.Errorf("build arguments: %w", err)
	}

	line := NewCommandLine(spec.Executable)
	line.Append(argStrings...)
	line.Append(spec.ExtraArgs...)

	return &Command{line: line}, nil
}

// String returns the command as shell command string.
func (c *Command) String() string {
	return c.line.String()
}

// Args returns the command tokens including the executable.
func (c *Command) Args() []string {
	return c.line.Tokens()
}

// Run runs the command with the given context and IO and waits for it to
// exit.
//
// If the context is cancelled, QEMU receives SIGTERM and is killed if it does
// not exit in time. A non-zero exit of QEMU is returned as [CommandError] with
// the exit code of the process.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) error {
	tokens := c.line.Tokens()

	cmd := exec.CommandContext(ctx, tokens[0], tokens[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = cancelWaitDelay

	err := cmd.Run()
	if err != nil {
		cmdErr := &CommandError{Err: err, ExitCode: -1}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}

		return cmdErr
	}

	return nil
}
