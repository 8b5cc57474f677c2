// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aibor/qemucmd/internal/qemu"
	"github.com/aibor/qemucmd/internal/sys"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	memoryMin = 16
	memoryMax = 4194304

	smpMin = 1
	smpMax = 1024

	qemuCmdLong = `Compose a QEMU command line from short options and print it.

With --execute the command is run as well and its exit code is returned.
All arguments after the first positional argument or after "--" are
appended to the QEMU command verbatim.

Flags may also be given by the environment variable QEMUCMD_ARGS and by the
file ./.qemucmd-args with one argument per line.`
)

var qemuCmdArgSource = ArgSource{
	EnvVar:    "QEMUCMD_ARGS",
	LocalFile: ".qemucmd-args",
}

type qemuCmdFlags struct {
	spec    qemu.CommandSpec
	execute bool
	debug   bool
}

func newQemuCmdFlags() *qemuCmdFlags {
	return &qemuCmdFlags{
		spec: qemu.CommandSpec{
			Executable:   qemu.DefaultExecutable,
			Platform:     sys.Native,
			Memory:       qemu.DefaultMemory,
			BridgeHelper: qemu.DefaultBridgeHelper,
		},
	}
}

//nolint:funlen
func (f *qemuCmdFlags) register(flags *pflag.FlagSet) {
	spec := &f.spec

	flags.StringVar(&spec.Executable, "qemu", spec.Executable,
		"QEMU binary to use")

	flags.Var(&textValue{value: &spec.Platform, typeName: "platform"},
		"platform", "host platform used for selecting the accelerator: "+
			sys.Linux.String()+", "+sys.Darwin.String())

	flags.BoolVar(&spec.NoAccel, "no-accel", spec.NoAccel,
		"disable hardware acceleration")

	flags.VarP(&LimitedUintValue{Value: &spec.Memory, Lower: memoryMin, Upper: memoryMax},
		"memory", "m", "memory (in MB) for the VM")

	flags.Var(&LimitedUintValue{Value: &spec.SMP, Lower: smpMin, Upper: smpMax},
		"smp", "number of CPUs for the VM")

	flags.BoolVarP(&spec.NoGraphic, "nographic", "n", spec.NoGraphic,
		"disable graphical output")

	flags.VarP(&driveListValue{drives: &spec.Drives}, "drive", "d",
		"drive image `PATH [MODIFIER...]`, modifiers: "+
			qemu.DriveModifierSCSI+", "+qemu.DriveModifierReadOnly+
			". Flag may be used more than once.")
	setNargs(flags, "drive", 1, unbounded)

	flags.BoolVarP(&spec.NetUser, "net-user", "u", spec.NetUser,
		"enable user mode networking")

	flags.VarP(&hostForwardListValue{forwards: &spec.HostForwards}, "hostfwd", "f",
		"forward TCP host ports to guest ports, each given as `HOST,GUEST`")
	setNargs(flags, "hostfwd", 1, unbounded)

	flags.BoolVarP(&spec.Tap, "tap", "t", spec.Tap,
		"enable tap networking")

	flags.StringVarP(&spec.CDROM, "cdrom", "c", spec.CDROM,
		"CD-ROM image")

	flags.StringVarP(&spec.Sound, "sound", "s", spec.Sound,
		"enable sound hardware")
	flags.Lookup("sound").NoOptDefVal = qemu.DefaultSound
	setNargs(flags, "sound", 0, 1)

	flags.VarP(&kernelValue{kernel: &spec.Kernel, cmdline: &spec.KernelCmdline},
		"kernel", "k", "kernel image to boot, followed by its command line `IMAGE [ARG...]`")
	setNargs(flags, "kernel", 1, unbounded)

	flags.StringVarP(&spec.Initrd, "initrd", "i", spec.Initrd,
		"initial ram disk")

	flags.StringVarP(&spec.BootOrder, "boot", "b", spec.BootOrder,
		"boot device order, like c or dc")

	flags.BoolVar(&spec.BootMenu, "boot-menu", spec.BootMenu,
		"enable the boot menu")

	flags.StringVarP(&spec.GDB, "gdb", "g", spec.GDB,
		"enable the GDB stub on the given device")
	flags.Lookup("gdb").NoOptDefVal = qemu.DefaultGDB
	setNargs(flags, "gdb", 0, 1)

	flags.Var(&textValue{value: &spec.Serial, typeName: "target"}, "serial",
		"redirect the serial port to one of: "+serialTargetList())

	flags.StringVar(&spec.Monitor, "monitor", spec.Monitor,
		"redirect the monitor to the given device")
	flags.Lookup("monitor").NoOptDefVal = qemu.DefaultMonitor
	setNargs(flags, "monitor", 0, 1)

	flags.Var(&optionalUintValue{value: &spec.VNCDisplay}, "vnc",
		"start a VNC server on the given display number")

	flags.Var(&usbValue{device: &spec.USB}, "usb",
		"pass the host USB device through, given as `BUS ADDR`")
	setNargs(flags, "usb", 2, 2)

	flags.Var(&stringListValue{values: &spec.Bridges}, "bridge",
		"attach a NIC to each of the host bridges. Flag may be used more than once.")
	setNargs(flags, "bridge", 1, unbounded)

	flags.StringVar(&spec.BridgeHelper, "bridge-helper", spec.BridgeHelper,
		"QEMU bridge helper binary")

	flags.BoolVarP(&f.execute, "execute", "e", f.execute,
		"run the command after printing it")

	flags.BoolVar(&f.debug, "debug", f.debug,
		"enable debug output")
}

func serialTargetList() string {
	targets := qemu.SerialTargets()

	names := make([]string, 0, len(targets))
	for _, target := range targets {
		names = append(names, target.String())
	}

	return strings.Join(names, ", ")
}

func newQemuCmdCommand(cfg IO) *cobra.Command {
	flags := newQemuCmdFlags()

	command := newCommand(
		"qemucmd [flags...] [qemu args...]",
		"Compose and run QEMU commands",
		qemuCmdLong,
		cfg,
	)
	command.Args = cobra.ArbitraryArgs
	command.RunE = func(command *cobra.Command, args []string) error {
		setupLogging(cfg.Stderr, flags.debug)

		flags.spec.ExtraArgs = args

		return runQemuCmd(command.Context(), flags, cfg)
	}

	// Everything from the first positional argument on is passed to QEMU.
	command.Flags().SetInterspersed(false)
	flags.register(command.Flags())

	command.InitDefaultHelpFlag()
	command.InitDefaultVersionFlag()

	return command
}

func runQemuCmd(ctx context.Context, flags *qemuCmdFlags, cfg IO) error {
	cmd, err := qemu.NewCommand(flags.spec)
	if err != nil {
		return fmt.Errorf("qemu command: %w", err)
	}

	fmt.Fprintln(cfg.Stdout, cmd.String())

	if !flags.execute {
		return nil
	}

	slog.Debug("Running QEMU command", slog.Any("args", cmd.Args()))

	err = cmd.Run(ctx, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

// RunQemuCmd is the main entry point for the qemucmd CLI command.
func RunQemuCmd(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	args, err := MergedArgs(args, os.DirFS("."), qemuCmdArgSource)
	if err != nil {
		return handleParseArgsError(err)
	}

	command := newQemuCmdCommand(cfg)

	args, err = groupArgs(command.Flags(), args)
	if err != nil {
		return handleParseArgsError(failFlags(command, err))
	}

	command.SetArgs(args)

	err = command.ExecuteContext(ctx)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
