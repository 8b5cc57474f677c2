// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"fmt"
	"strconv"
	"strings"
)

// PortForward forwards a TCP port of the host to a port of the guest when
// using user mode networking.
type PortForward struct {
	Host  uint16
	Guest uint16
}

// ParsePortForward parses a port forward rule in the format
// "host_port,guest_port".
func ParsePortForward(rule string) (PortForward, error) {
	host, guest, found := strings.Cut(rule, ",")
	if !found {
		return PortForward{}, &ArgumentError{
			"port forward must be HOST_PORT,GUEST_PORT: " + rule,
		}
	}

	hostPort, err := parsePort(host)
	if err != nil {
		return PortForward{}, err
	}

	guestPort, err := parsePort(guest)
	if err != nil {
		return PortForward{}, err
	}

	return PortForward{Host: hostPort, Guest: guestPort}, nil
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil || port == 0 {
		return 0, &ArgumentError{"invalid port: " + s}
	}

	return uint16(port), nil
}

// String returns the rule as user mode network "hostfwd" value.
func (p PortForward) String() string {
	return fmt.Sprintf("tcp::%d-:%d", p.Host, p.Guest)
}

func userNetArguments(forwards []PortForward) []Argument {
	backend := []string{"user"}
	for _, forward := range forwards {
		backend = append(backend, "hostfwd="+forward.String())
	}

	return []Argument{
		RepeatableArg("net", "nic", "model=virtio"),
		RepeatableArg("net", backend...),
	}
}

func tapArguments(naming *Naming) []Argument {
	id := naming.Allocate(KindNetdev)

	return []Argument{
		RepeatableArg("netdev", "tap", "id="+id),
		RepeatableArg("device", "virtio-net", "netdev="+id),
	}
}

func bridgeArguments(naming *Naming, bridge, helper string) []Argument {
	id := naming.Allocate(KindBridgeNetdev)

	backend := []string{"bridge", "id=" + id, "br=" + bridge}
	if helper != "" {
		backend = append(backend, "helper="+helper)
	}

	return []Argument{
		RepeatableArg("netdev", backend...),
		RepeatableArg("device", "virtio-net-pci", "netdev="+id),
	}
}
