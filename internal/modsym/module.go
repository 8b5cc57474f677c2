// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"strings"
)

// Module is a loaded kernel module with its section addresses and the path
// to its debug file.
type Module struct {
	Name string
	Path string
	Sections
}

// Line returns the GDB command that loads the module's symbols at its
// section addresses.
func (m Module) Line() string {
	var line strings.Builder

	line.WriteString("add-symbol-file ")
	line.WriteString(m.Path)
	line.WriteString(" ")
	line.WriteString(m.Text)

	if m.Data != "" {
		line.WriteString(" -s " + SectionData + " " + m.Data)
	}

	if m.BSS != "" {
		line.WriteString(" -s " + SectionBSS + " " + m.BSS)
	}

	return line.String()
}
