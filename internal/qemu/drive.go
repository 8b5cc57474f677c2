// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Known drive modifiers.
const (
	// DriveModifierSCSI attaches the drive to a virtio SCSI controller.
	DriveModifierSCSI = "scsi"
	// DriveModifierReadOnly makes the drive read-only.
	DriveModifierReadOnly = "ro"
)

const (
	driveFormatQcow2 = "qcow2"
	driveFormatRaw   = "raw"

	driveInterfaceNone   = "none"
	driveInterfaceVirtio = "virtio"
	driveInterfacePflash = "pflash"
)

// Drive is a block device backed by a file on the host.
type Drive struct {
	// Path to the image file.
	Path string

	// Modifiers change how the drive is attached. See [DriveModifierSCSI]
	// and [DriveModifierReadOnly].
	Modifiers []string
}

// Format returns the image format derived from the file extension: qcow2 for
// ".qcow2" files, raw for anything else.
func (d Drive) Format() string {
	if filepath.Ext(d.Path) == ".qcow2" {
		return driveFormatQcow2
	}

	return driveFormatRaw
}

type driveOptions struct {
	scsi     bool
	readOnly bool
}

func (d Drive) options() (driveOptions, error) {
	var opts driveOptions

	for _, modifier := range d.Modifiers {
		switch modifier {
		case DriveModifierSCSI:
			opts.scsi = true
		case DriveModifierReadOnly:
			opts.readOnly = true
		default:
			return opts, fmt.Errorf("%w: %q for %s",
				ErrUnknownDriveModifier, modifier, d.Path)
		}
	}

	return opts, nil
}

// Interface returns the bus interface the drive is attached with.
//
// SCSI drives use interface "none" as they are attached by a separate device.
// Firmware images with ".fd" extension are attached as pflash. Everything
// else is a virtio block device.
func (d Drive) Interface() (string, error) {
	opts, err := d.options()
	if err != nil {
		return "", err
	}

	switch {
	case opts.scsi:
		return driveInterfaceNone, nil
	case filepath.Ext(d.Path) == ".fd":
		return driveInterfacePflash, nil
	default:
		return driveInterfaceVirtio, nil
	}
}

func (d Drive) arguments(naming *Naming) ([]Argument, error) {
	opts, err := d.options()
	if err != nil {
		return nil, err
	}

	iface, err := d.Interface()
	if err != nil {
		return nil, err
	}

	var args []Argument

	if opts.scsi {
		args = append(args, naming.SCSIController()...)
	}

	id := naming.Allocate(KindDrive)

	driveOpts := []string{
		// QEMU option values escape commas by doubling them.
		"file=" + strings.ReplaceAll(d.Path, ",", ",,"),
		"format=" + d.Format(),
		"if=" + iface,
		"id=" + id,
	}

	if opts.readOnly {
		driveOpts = append(driveOpts, "readonly=on")
	}

	args = append(args, RepeatableArg("drive", driveOpts...))

	if opts.scsi {
		args = append(args, RepeatableArg("device",
			"scsi-hd",
			"drive="+id,
			"bus="+scsiControllerID+".0",
		))
	}

	return args, nil
}
