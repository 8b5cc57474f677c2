// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"strconv"
)

const usbControllerID = "ehci"

// USBHostDevice is a host USB device passed through to the guest, addressed
// by bus and device number as listed by lsusb.
type USBHostDevice struct {
	Bus  uint64
	Addr uint64
}

// ParseUSBHostDevice parses the bus and device numbers.
func ParseUSBHostDevice(bus, addr string) (USBHostDevice, error) {
	busNum, err := strconv.ParseUint(bus, 10, 0)
	if err != nil {
		return USBHostDevice{}, &ArgumentError{"invalid usb bus number: " + bus}
	}

	addrNum, err := strconv.ParseUint(addr, 10, 0)
	if err != nil {
		return USBHostDevice{}, &ArgumentError{"invalid usb device number: " + addr}
	}

	return USBHostDevice{Bus: busNum, Addr: addrNum}, nil
}

func (d USBHostDevice) arguments() []Argument {
	return []Argument{
		UniqueArg("usb"),
		RepeatableArg("device", "usb-ehci", "id="+usbControllerID),
		RepeatableArg("device",
			"usb-host",
			"bus="+usbControllerID+".0",
			"hostbus="+strconv.FormatUint(d.Bus, 10),
			"hostaddr="+strconv.FormatUint(d.Addr, 10),
		),
	}
}
