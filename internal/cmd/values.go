// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/aibor/qemucmd/internal/qemu"
)

// textValue is a [pflag.Value] for types implementing
// [encoding.TextUnmarshaler].
type textValue struct {
	value interface {
		encoding.TextUnmarshaler
		fmt.Stringer
	}
	typeName string
}

func (v *textValue) String() string {
	if v.value == nil {
		return ""
	}

	return v.value.String()
}

func (v *textValue) Set(s string) error {
	return v.value.UnmarshalText([]byte(s)) //nolint:wrapcheck
}

func (v *textValue) Type() string {
	return v.typeName
}

// optionalUintValue is a [pflag.Value] for an unsigned integer that is nil
// unless set.
type optionalUintValue struct {
	value **uint64
}

func (v *optionalUintValue) String() string {
	if v.value == nil || *v.value == nil {
		return ""
	}

	return strconv.FormatUint(**v.value, 10)
}

func (v *optionalUintValue) Set(s string) error {
	value, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	*v.value = &value

	return nil
}

func (*optionalUintValue) Type() string {
	return "uint"
}

// stringListValue is a [pflag.Value] collecting grouped values of all
// occurrences of the flag.
type stringListValue struct {
	values *[]string
}

func (v *stringListValue) String() string {
	if v.values == nil {
		return ""
	}

	return strings.Join(*v.values, ",")
}

func (v *stringListValue) Set(s string) error {
	*v.values = append(*v.values, splitValues(s)...)
	return nil
}

func (*stringListValue) Type() string {
	return "strings"
}

// driveListValue is a [pflag.Value] collecting drives. The first value of a
// group is the path, all further values are modifiers.
type driveListValue struct {
	drives *[]qemu.Drive
}

func (v *driveListValue) String() string {
	if v.drives == nil {
		return ""
	}

	paths := make([]string, 0, len(*v.drives))
	for _, drive := range *v.drives {
		paths = append(paths, drive.Path)
	}

	return strings.Join(paths, ",")
}

func (v *driveListValue) Set(s string) error {
	values := splitValues(s)

	drive := qemu.Drive{Path: values[0]}
	if len(values) > 1 {
		drive.Modifiers = values[1:]
	}

	*v.drives = append(*v.drives, drive)

	return nil
}

func (*driveListValue) Type() string {
	return "drive"
}

// hostForwardListValue is a [pflag.Value] collecting host port forwards in
// the form "HOST,GUEST".
type hostForwardListValue struct {
	forwards *[]qemu.PortForward
}

func (v *hostForwardListValue) String() string {
	if v.forwards == nil {
		return ""
	}

	rules := make([]string, 0, len(*v.forwards))
	for _, forward := range *v.forwards {
		rules = append(rules, forward.String())
	}

	return strings.Join(rules, " ")
}

func (v *hostForwardListValue) Set(s string) error {
	for _, rule := range splitValues(s) {
		forward, err := qemu.ParsePortForward(rule)
		if err != nil {
			return err //nolint:wrapcheck
		}

		*v.forwards = append(*v.forwards, forward)
	}

	return nil
}

func (*hostForwardListValue) Type() string {
	return "host,guest"
}

// kernelValue is a [pflag.Value] for a kernel image followed by its command
// line.
type kernelValue struct {
	kernel  *string
	cmdline *[]string
}

func (v *kernelValue) String() string {
	if v.kernel == nil || v.cmdline == nil {
		return ""
	}

	return strings.Join(append([]string{*v.kernel}, *v.cmdline...), " ")
}

func (v *kernelValue) Set(s string) error {
	values := splitValues(s)

	*v.kernel = values[0]
	*v.cmdline = nil

	if len(values) > 1 {
		*v.cmdline = values[1:]
	}

	return nil
}

func (*kernelValue) Type() string {
	return "kernel"
}

// usbValue is a [pflag.Value] for a host USB device given by bus and
// address.
type usbValue struct {
	device **qemu.USBHostDevice
}

func (v *usbValue) String() string {
	if v.device == nil || *v.device == nil {
		return ""
	}

	device := *v.device

	return strconv.FormatUint(device.Bus, 10) + " " + strconv.FormatUint(device.Addr, 10)
}

func (v *usbValue) Set(s string) error {
	values := splitValues(s)
	if len(values) != 2 {
		return fmt.Errorf("%w: need bus and address", ErrWrongValueCount)
	}

	device, err := qemu.ParseUSBHostDevice(values[0], values[1])
	if err != nil {
		return err //nolint:wrapcheck
	}

	*v.device = &device

	return nil
}

func (*usbValue) Type() string {
	return "bus addr"
}
