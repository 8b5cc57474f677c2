// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"strings"
	"testing"

	"github.com/aibor/qemucmd/internal/qemu"
	"github.com/aibor/qemucmd/internal/sys"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name        string
		spec        qemu.CommandSpec
		expected    []string
		expectedErr error
	}{
		{
			name: "memory only",
			spec: qemu.CommandSpec{
				Executable: "qemu-system-x86_64",
				Platform:   sys.Linux,
				Memory:     1024,
			},
			expected: []string{
				"qemu-system-x86_64",
				"-enable-kvm",
				"-m", "1024",
			},
		},
		{
			name: "memory only darwin",
			spec: qemu.CommandSpec{
				Executable: "qemu-system-aarch64",
				Platform:   sys.Darwin,
				Memory:     2048,
			},
			expected: []string{
				"qemu-system-aarch64",
				"-accel", "hvf",
				"-m", "2048",
			},
		},
		{
			name: "no accel",
			spec: qemu.CommandSpec{
				Executable: "qemu-system-x86_64",
				Platform:   "windows",
				NoAccel:    true,
				Memory:     512,
			},
			expected: []string{
				"qemu-system-x86_64",
				"-m", "512",
			},
		},
		{
			name: "unsupported platform",
			spec: qemu.CommandSpec{
				Executable: "qemu-system-x86_64",
				Platform:   "windows",
				Memory:     512,
			},
			expectedErr: qemu.ErrUnsupportedPlatform,
		},
		{
			name: "no executable",
			spec: qemu.CommandSpec{
				Platform: sys.Linux,
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "two scsi drives",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Drives: []qemu.Drive{
					{Path: "a.img", Modifiers: []string{"scsi"}},
					{Path: "b.qcow2", Modifiers: []string{"scsi"}},
				},
			},
			expected: []string{
				"qemu",
				"-device", "virtio-scsi-pci,id=scsi0",
				"-drive", "file=a.img,format=raw,if=none,id=drive0",
				"-device", "scsi-hd,drive=drive0,bus=scsi0.0",
				"-drive", "file=b.qcow2,format=qcow2,if=none,id=drive1",
				"-device", "scsi-hd,drive=drive1,bus=scsi0.0",
			},
		},
		{
			name: "mixed drives",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Drives: []qemu.Drive{
					{Path: "OVMF_CODE.fd", Modifiers: []string{"ro"}},
					{Path: "root.qcow2"},
					{Path: "data,1.img", Modifiers: []string{"scsi"}},
				},
			},
			expected: []string{
				"qemu",
				"-drive", "file=OVMF_CODE.fd,format=raw,if=pflash,id=drive0,readonly=on",
				"-drive", "file=root.qcow2,format=qcow2,if=virtio,id=drive1",
				"-device", "virtio-scsi-pci,id=scsi0",
				"-drive", "file=data,,1.img,format=raw,if=none,id=drive2",
				"-device", "scsi-hd,drive=drive2,bus=scsi0.0",
			},
		},
		{
			name: "unknown drive modifier",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Drives: []qemu.Drive{
					{Path: "a.img"},
					{Path: "b.img", Modifiers: []string{"scsi", "nvme"}},
				},
			},
			expectedErr: qemu.ErrUnknownDriveModifier,
		},
		{
			name: "user networking with host forwards",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				NetUser:    true,
				HostForwards: []qemu.PortForward{
					{Host: 8022, Guest: 22},
					{Host: 8080, Guest: 80},
				},
			},
			expected: []string{
				"qemu",
				"-net", "nic,model=virtio",
				"-net", "user,hostfwd=tcp::8022-:22,hostfwd=tcp::8080-:80",
			},
		},
		{
			name: "host forwards without user networking",
			spec: qemu.CommandSpec{
				Executable:   "qemu",
				NoAccel:      true,
				HostForwards: []qemu.PortForward{{Host: 8022, Guest: 22}},
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "kernel with cmdline",
			spec: qemu.CommandSpec{
				Executable:    "qemu",
				NoAccel:       true,
				Kernel:        "vmlinuz",
				KernelCmdline: []string{"root=/dev/sda1", "ro"},
			},
			expected: []string{
				"qemu",
				"-kernel", "vmlinuz",
				"-append", "root=/dev/sda1 ro",
			},
		},
		{
			name: "kernel without cmdline",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Kernel:     "vmlinuz",
			},
			expected: []string{
				"qemu",
				"-kernel", "vmlinuz",
			},
		},
		{
			name: "kernel cmdline without kernel",
			spec: qemu.CommandSpec{
				Executable:    "qemu",
				NoAccel:       true,
				KernelCmdline: []string{"ro"},
			},
			expectedErr: &qemu.ArgumentError{},
		},
		{
			name: "boot menu only",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				BootMenu:   true,
			},
			expected: []string{
				"qemu",
				"-boot", "menu=on",
			},
		},
		{
			name: "boot order and menu",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				BootOrder:  "d",
				BootMenu:   true,
			},
			expected: []string{
				"qemu",
				"-boot", "order=d,menu=on",
			},
		},
		{
			name: "invalid serial target",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Serial:     "file:/tmp/serial",
			},
			expectedErr: qemu.ErrSerialTargetInvalid,
		},
		{
			name: "vnc display zero",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				VNCDisplay: ptr[uint64](0),
			},
			expected: []string{
				"qemu",
				"-vnc", ":0",
			},
		},
		{
			name: "bridges",
			spec: qemu.CommandSpec{
				Executable:   "qemu",
				NoAccel:      true,
				Tap:          true,
				Bridges:      []string{"br0", "virbr0"},
				BridgeHelper: "/usr/libexec/qemu-bridge-helper",
			},
			expected: []string{
				"qemu",
				"-netdev", "tap,id=netdev0",
				"-device", "virtio-net,netdev=netdev0",
				"-netdev", "bridge,id=brdev0,br=br0,helper=/usr/libexec/qemu-bridge-helper",
				"-device", "virtio-net-pci,netdev=brdev0",
				"-netdev", "bridge,id=brdev1,br=virbr0,helper=/usr/libexec/qemu-bridge-helper",
				"-device", "virtio-net-pci,netdev=brdev1",
			},
		},
		{
			name: "bridge without helper",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Bridges:    []string{"br0"},
			},
			expected: []string{
				"qemu",
				"-netdev", "bridge,id=brdev0,br=br0",
				"-device", "virtio-net-pci,netdev=brdev0",
			},
		},
		{
			name: "extra args",
			spec: qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Memory:     256,
				ExtraArgs:  []string{"-device", "virtio-rng-pci", "-m", "512"},
			},
			expected: []string{
				"qemu",
				"-m", "256",
				"-device", "virtio-rng-pci",
				"-m", "512",
			},
		},
		{
			name: "everything in order",
			spec: qemu.CommandSpec{
				Executable:    "qemu-system-x86_64",
				Platform:      sys.Linux,
				Memory:        2048,
				SMP:           4,
				NoGraphic:     true,
				Drives:        []qemu.Drive{{Path: "root.qcow2"}},
				NetUser:       true,
				HostForwards:  []qemu.PortForward{{Host: 2222, Guest: 22}},
				Tap:           true,
				CDROM:         "install.iso",
				Sound:         "hda",
				Kernel:        "bzImage",
				KernelCmdline: []string{"console=ttyS0", "nokaslr"},
				Initrd:        "initrd.img",
				BootOrder:     "c",
				GDB:           "tcp::1234",
				Serial:        qemu.SerialTargetMonitorStdio,
				Monitor:       "none",
				VNCDisplay:    ptr[uint64](1),
				USB:           &qemu.USBHostDevice{Bus: 3, Addr: 7},
				Bridges:       []string{"br0"},
				BridgeHelper:  "/usr/lib/qemu/qemu-bridge-helper",
				ExtraArgs:     []string{"-s"},
			},
			expected: []string{
				"qemu-system-x86_64",
				"-enable-kvm",
				"-m", "2048",
				"-smp", "4",
				"-nographic",
				"-drive", "file=root.qcow2,format=qcow2,if=virtio,id=drive0",
				"-net", "nic,model=virtio",
				"-net", "user,hostfwd=tcp::2222-:22",
				"-netdev", "tap,id=netdev0",
				"-device", "virtio-net,netdev=netdev0",
				"-cdrom", "install.iso",
				"-soundhw", "hda",
				"-kernel", "bzImage",
				"-append", "console=ttyS0 nokaslr",
				"-initrd", "initrd.img",
				"-boot", "order=c",
				"-gdb", "tcp::1234",
				"-serial", "mon:stdio",
				"-monitor", "none",
				"-vnc", ":1",
				"-usb",
				"-device", "usb-ehci,id=ehci",
				"-device", "usb-host,bus=ehci.0,hostbus=3,hostaddr=7",
				"-netdev", "bridge,id=brdev0,br=br0,helper=/usr/lib/qemu/qemu-bridge-helper",
				"-device", "virtio-net-pci,netdev=brdev0",
				"-s",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := qemu.NewCommand(tt.spec)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				assert.Nil(t, cmd)
				return
			}

			assert.Equal(t, tt.expected, cmd.Args())
		})
	}
}

func TestNewCommand_DriveFormats(t *testing.T) {
	for _, path := range []string{"a.qcow2", "b.img", "c.raw", "d.fd", "e"} {
		t.Run(path, func(t *testing.T) {
			cmd, err := qemu.NewCommand(qemu.CommandSpec{
				Executable: "qemu",
				NoAccel:    true,
				Drives:     []qemu.Drive{{Path: path}},
			})
			require.NoError(t, err)

			driveValue := cmd.Args()[2]

			if strings.HasSuffix(path, ".qcow2") {
				assert.Contains(t, driveValue, "format=qcow2")
			} else {
				assert.Contains(t, driveValue, "format=raw")
			}

			if strings.HasSuffix(path, ".fd") {
				assert.Contains(t, driveValue, "if=pflash")
			} else {
				assert.Contains(t, driveValue, "if=virtio")
			}
		})
	}
}

func TestNewCommand_SCSIControllerOnce(t *testing.T) {
	drives := make([]qemu.Drive, 5)
	for idx := range drives {
		drives[idx] = qemu.Drive{
			Path:      "disk" + string(rune('a'+idx)) + ".img",
			Modifiers: []string{qemu.DriveModifierSCSI},
		}
	}

	cmd, err := qemu.NewCommand(qemu.CommandSpec{
		Executable: "qemu",
		NoAccel:    true,
		Drives:     drives,
	})
	require.NoError(t, err)

	var controllers, disks int

	for _, token := range cmd.Args() {
		switch {
		case token == "virtio-scsi-pci,id=scsi0":
			controllers++
		case strings.HasPrefix(token, "scsi-hd,"):
			disks++
		}
	}

	assert.Equal(t, 1, controllers, "controller should be emitted once")
	assert.Equal(t, 5, disks, "each drive should get a scsi disk")
	assert.Contains(t, cmd.Args(), "scsi-hd,drive=drive4,bus=scsi0.0")
}

func TestCommand_String(t *testing.T) {
	cmd, err := qemu.NewCommand(qemu.CommandSpec{
		Executable:    "qemu-system-x86_64",
		Platform:      sys.Linux,
		Memory:        1024,
		Kernel:        "/boot/vmlinuz",
		KernelCmdline: []string{"root=/dev/sda1", "ro", "quote='x'"},
		Drives:        []qemu.Drive{{Path: "my disk.img"}},
	})
	require.NoError(t, err)

	expected := "qemu-system-x86_64 -enable-kvm -m 1024 " +
		"-drive 'file=my disk.img,format=raw,if=virtio,id=drive0' " +
		"-kernel /boot/vmlinuz " +
		`-append 'root=/dev/sda1 ro quote='\''x'\'`
	assert.Equal(t, expected, cmd.String())

	split, err := shellquote.Split(cmd.String())
	require.NoError(t, err)
	assert.Equal(t, cmd.Args(), split, "display string should split back")
}
