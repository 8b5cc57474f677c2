// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "strconv"

const scsiControllerID = "scsi0"

// Identifier kinds allocated by the [CommandSpec] arguments.
const (
	KindDrive        = "drive"
	KindNetdev       = "netdev"
	KindBridgeNetdev = "brdev"
)

// Naming allocates identifiers for drives and devices of a single command.
//
// Identifiers are the kind followed by a zero-based counter per kind. The
// zero value is ready to use. A Naming must not be reused for another
// command.
type Naming struct {
	counters       map[string]int
	scsiController bool
}

// NewNaming returns a new empty [Naming].
func NewNaming() *Naming {
	return &Naming{}
}

// Allocate returns the next unused identifier for the given kind.
func (n *Naming) Allocate(kind string) string {
	if n.counters == nil {
		n.counters = make(map[string]int)
	}

	id := kind + strconv.Itoa(n.counters[kind])
	n.counters[kind]++

	return id
}

// SCSIController returns the arguments for the SCSI controller on the first
// call. All further calls return nil.
func (n *Naming) SCSIController() []Argument {
	if n.scsiController {
		return nil
	}

	n.scsiController = true

	return []Argument{
		RepeatableArg("device", "virtio-scsi-pci", "id="+scsiControllerID),
	}
}
