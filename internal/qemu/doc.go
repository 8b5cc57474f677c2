// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu composes QEMU system emulator command lines from a
// [CommandSpec] and optionally runs them.
//
// Arguments are emitted in a fixed order: executable, accelerator, memory,
// CPUs, display, drives, networking, media, kernel, boot, debugging and
// monitoring, USB passthrough, bridges and finally any extra arguments
// verbatim. Device and drive identifiers are allocated by a [Naming] that
// lives for a single command build.
package qemu
