// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strconv"
	"strings"

	"github.com/aibor/qemucmd/internal/sys"
)

// Defaults for optional values.
const (
	DefaultExecutable   = "qemu-system-x86_64"
	DefaultMemory       = 1024
	DefaultSound        = "hda"
	DefaultGDB          = "tcp::1234"
	DefaultMonitor      = "stdio"
	DefaultBridgeHelper = "/usr/lib/qemu/qemu-bridge-helper"
)

// CommandSpec defines the parameters for a [Command].
//
// Zero values do not contribute any arguments.
type CommandSpec struct {
	// Path to the qemu-system binary.
	Executable string

	// Host platform used for choosing the accelerator.
	Platform sys.Platform

	// Disable hardware acceleration.
	NoAccel bool

	// Memory for the machine in MB.
	Memory uint64

	// Number of CPUs for the guest.
	SMP uint64

	// Disable graphical output and redirect serial and monitor to the
	// console.
	NoGraphic bool

	// Block devices in the order they are attached.
	Drives []Drive

	// Enable user mode networking.
	NetUser bool

	// Host port forwards for user mode networking.
	HostForwards []PortForward

	// Enable tap networking.
	Tap bool

	// Path to a CD-ROM image.
	CDROM string

	// Sound hardware model.
	Sound string

	// Path to the kernel to boot.
	Kernel string

	// Kernel command line arguments. They are passed as a single value.
	KernelCmdline []string

	// Path to the initial ram disk.
	Initrd string

	// Boot device order, like "c" or "dc".
	BootOrder string

	// Enable the interactive boot menu.
	BootMenu bool

	// GDB stub device, like "tcp::1234".
	GDB string

	// Redirection of the first serial port.
	Serial SerialTarget

	// Monitor device, like "stdio".
	Monitor string

	// VNC display number. Nil disables VNC.
	VNCDisplay *uint64

	// Host USB device to pass through.
	USB *USBHostDevice

	// Host bridges to attach a virtio NIC to, each.
	Bridges []string

	// Path to the QEMU bridge helper binary. If empty, QEMU's default is used.
	BridgeHelper string

	// ExtraArgs are passed to QEMU verbatim after all other arguments.
	ExtraArgs []string
}

// arguments compiles the argument list for the QEMU command. The naming is
// used to allocate drive and device identifiers.
func (s *CommandSpec) arguments(naming *Naming) ([]Argument, error) {
	var args []Argument

	if !s.NoAccel {
		accelArgs, err := AcceleratorArgs(s.Platform)
		if err != nil {
			return nil, err
		}

		args = append(args, accelArgs...)
	}

	if s.Memory != 0 {
		args = append(args, UniqueArg("m", strconv.FormatUint(s.Memory, 10)))
	}

	if s.SMP != 0 {
		args = append(args, UniqueArg("smp", strconv.FormatUint(s.SMP, 10)))
	}

	if s.NoGraphic {
		args = append(args, UniqueArg("nographic"))
	}

	for _, drive := range s.Drives {
		driveArgs, err := drive.arguments(naming)
		if err != nil {
			return nil, err
		}

		args = append(args, driveArgs...)
	}

	if len(s.HostForwards) > 0 && !s.NetUser {
		return nil, &ArgumentError{"host forwards require user networking"}
	}

	if s.NetUser {
		args = append(args, userNetArguments(s.HostForwards)...)
	}

	if s.Tap {
		args = append(args, tapArguments(naming)...)
	}

	if s.CDROM != "" {
		args = append(args, UniqueArg("cdrom", s.CDROM))
	}

	if s.Sound != "" {
		args = append(args, UniqueArg("soundhw", s.Sound))
	}

	kernelArgs, err := s.kernelArguments()
	if err != nil {
		return nil, err
	}

	args = append(args, kernelArgs...)

	if s.Initrd != "" {
		args = append(args, UniqueArg("initrd", s.Initrd))
	}

	if bootArg, ok := s.bootArgument(); ok {
		args = append(args, bootArg)
	}

	if s.GDB != "" {
		args = append(args, UniqueArg("gdb", s.GDB))
	}

	if s.Serial != "" {
		if !s.Serial.isKnown() {
			return nil, ErrSerialTargetInvalid
		}

		args = append(args, UniqueArg("serial", s.Serial.String()))
	}

	if s.Monitor != "" {
		args = append(args, UniqueArg("monitor", s.Monitor))
	}

	if s.VNCDisplay != nil {
		display := ":" + strconv.FormatUint(*s.VNCDisplay, 10)
		args = append(args, UniqueArg("vnc", display))
	}

	if s.USB != nil {
		args = append(args, s.USB.arguments()...)
	}

	for _, bridge := range s.Bridges {
		args = append(args, bridgeArguments(naming, bridge, s.BridgeHelper)...)
	}

	return args, nil
}

// kernelArguments returns the kernel arguments. All kernel command line
// arguments are joined into a single value.
func (s *CommandSpec) kernelArguments() ([]Argument, error) {
	if s.Kernel == "" {
		if len(s.KernelCmdline) > 0 {
			return nil, &ArgumentError{"kernel command line requires a kernel"}
		}

		return nil, nil
	}

	args := []Argument{UniqueArg("kernel", s.Kernel)}

	if len(s.KernelCmdline) > 0 {
		cmdline := strings.Join(s.KernelCmdline, " ")
		args = append(args, UniqueArg("append", cmdline))
	}

	return args, nil
}

func (s *CommandSpec) bootArgument() (Argument, bool) {
	var opts []string

	if s.BootOrder != "" {
		opts = append(opts, "order="+s.BootOrder)
	}

	if s.BootMenu {
		opts = append(opts, "menu=on")
	}

	if len(opts) == 0 {
		return Argument{}, false
	}

	return UniqueArg("boot", opts...), true
}
