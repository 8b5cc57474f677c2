// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/qemucmd/internal/qemu"
	"github.com/spf13/cobra"
)

const versionTemplate = "Version: {{.Version}}\n"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (cfg IO) apply(command *cobra.Command) {
	command.SetIn(cfg.Stdin)
	command.SetOut(cfg.Stdout)
	command.SetErr(cfg.Stderr)
}

// newCommand returns a root command with the settings common to all
// commands.
func newCommand(use, short, long string, cfg IO) *cobra.Command {
	command := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	command.SetVersionTemplate(versionTemplate)
	command.SetFlagErrorFunc(failFlags)
	cfg.apply(command)

	return command
}

// failFlags fails like flag does. It prints the error first and then a usage
// hint.
func failFlags(command *cobra.Command, err error) error {
	fmt.Fprintf(command.ErrOrStderr(), "Error: %v\n", err)
	fmt.Fprintf(command.ErrOrStderr(), "Run '%s --help' for usage.\n", command.CommandPath())

	return &ParseArgsError{msg: "flag parse", err: err}
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "(devel)"
	}

	return buildInfo.Main.Version
}

func handleParseArgsError(err error) int {
	// Flag errors are already printed, so we just exit with an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	if errors.Is(err, &ParseArgsError{}) {
		return handleParseArgsError(err)
	}

	exitCode := -1

	var qemuErr *qemu.CommandError
	if errors.As(err, &qemuErr) {
		if qemuErr.ExitCode > 0 {
			exitCode = qemuErr.ExitCode
		}
	}

	slog.Error(err.Error())

	return exitCode
}
