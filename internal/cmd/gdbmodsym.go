// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/qemucmd/internal/modsym"
	"github.com/aibor/qemucmd/internal/sys"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const gdbModSymLong = `Print GDB add-symbol-file commands for loaded kernel modules.

The module listing is read from the given file or from stdin if no file or
"-" is given. Its format is the one of lsmod: a header line followed by one
line per module with the module name in the first column.

Section addresses are read from /sys/module/<name>/sections, so it usually
needs to run as root. The module file is resolved with modinfo and mapped
into the module base directory.

Flags may also be given by the environment variable GDBMODSYM_ARGS and by the
file ./.gdbmodsym-args with one argument per line.`

var gdbModSymArgSource = ArgSource{
	EnvVar:    "GDBMODSYM_ARGS",
	LocalFile: ".gdbmodsym-args",
}

type gdbModSymFlags struct {
	moduleBaseDir string
	kernelVersion string
	runningKernel bool
	debug         bool
}

func (f *gdbModSymFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.moduleBaseDir, "module-base-dir", "d", modsym.DefaultDebugRoot,
		"root directory of the debug module files")

	flags.StringVarP(&f.kernelVersion, "kernel-version", "k", f.kernelVersion,
		"kernel version to use for module paths instead of the installed one")

	flags.BoolVarP(&f.runningKernel, "running-kernel", "r", f.runningKernel,
		"use the release of the running kernel for module paths")

	flags.BoolVar(&f.debug, "debug", f.debug,
		"enable debug output")
}

// resolveKernelVersion returns the kernel version module paths are rewritten
// to. Empty if the module's own version is kept.
func (f *gdbModSymFlags) resolveKernelVersion() (string, error) {
	if !f.runningKernel {
		return f.kernelVersion, nil
	}

	release, err := sys.KernelRelease()
	if err != nil {
		return "", fmt.Errorf("running kernel: %w", err)
	}

	return release, nil
}

func newGdbModSymCommand(cfg IO, locator modsym.Locator) *cobra.Command {
	var flags gdbModSymFlags

	command := newCommand(
		"gdbmodsym [flags...] [file]",
		"Generate GDB add-symbol-file lines for kernel modules",
		gdbModSymLong,
		cfg,
	)
	command.Args = cobra.MaximumNArgs(1)
	command.RunE = func(command *cobra.Command, args []string) error {
		setupLogging(cfg.Stderr, flags.debug)

		kernelVersion, err := flags.resolveKernelVersion()
		if err != nil {
			return err
		}

		locator.DebugRoot = flags.moduleBaseDir
		locator.KernelVersion = kernelVersion

		return runGdbModSym(command.Context(), &locator, args, cfg)
	}

	flags.register(command.Flags())
	command.MarkFlagsMutuallyExclusive("kernel-version", "running-kernel")

	command.InitDefaultHelpFlag()
	command.InitDefaultVersionFlag()

	return command
}

func openListing(args []string, stdin io.Reader) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open listing: %w", err)
	}

	return file, nil
}

func runGdbModSym(
	ctx context.Context,
	locator *modsym.Locator,
	args []string,
	cfg IO,
) error {
	listing, err := openListing(args, cfg.Stdin)
	if err != nil {
		return err
	}
	defer listing.Close()

	names, err := modsym.ParseListing(listing)
	if err != nil {
		return fmt.Errorf("parse listing: %w", err)
	}

	slog.Debug("Looking up modules",
		slog.Int("count", len(names)),
		slog.String("kernel_version", locator.KernelVersion))

	lines, err := locator.Lines(ctx, names)
	if err != nil {
		return fmt.Errorf("locate modules: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(cfg.Stdout, line)
	}

	return nil
}

// RunGdbModSym is the main entry point for the gdbmodsym CLI command.
func RunGdbModSym(ctx context.Context, args []string, cfg IO) int {
	return runGdbModSymCommand(ctx, args, cfg, modsym.Locator{
		Fsys:    os.DirFS("/"),
		Resolve: modsym.Modinfo,
	})
}

func runGdbModSymCommand(
	ctx context.Context,
	args []string,
	cfg IO,
	locator modsym.Locator,
) int {
	setupLogging(cfg.Stderr, false)

	args, err := MergedArgs(args, os.DirFS("."), gdbModSymArgSource)
	if err != nil {
		return handleParseArgsError(err)
	}

	command := newGdbModSymCommand(cfg, locator)
	command.SetArgs(args)

	err = command.ExecuteContext(ctx)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
