// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package modsym locates debug symbol files and section addresses of loaded
// Linux kernel modules and renders them as GDB "add-symbol-file" commands.
//
// Section addresses are read from the sysfs module directory
// (/sys/module/<name>/sections). The on-disk module file is resolved with
// modinfo and mapped into a debug file tree like /usr/lib/debug.
package modsym
