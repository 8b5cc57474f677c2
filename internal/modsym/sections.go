// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

const sysModuleDir = "sys/module"

// Section names as found in the module's sysfs sections directory.
const (
	SectionText = ".text"
	SectionData = ".data"
	SectionBSS  = ".bss"
)

// Sections are the load addresses of a module's sections as hex strings.
// Empty values mean the section is not present.
type Sections struct {
	Text string
	Data string
	BSS  string
}

// ReadSections reads the section addresses of the module with the given name
// from fsys, which is expected to be rooted at "/".
//
// It returns [ErrMissingSections] if there is no .text section. Missing .data
// and .bss sections are not an error.
func ReadSections(fsys fs.FS, name string) (Sections, error) {
	var (
		sections Sections
		err      error
	)

	sections.Text, err = readSection(fsys, name, SectionText)
	if err != nil {
		return Sections{}, err
	}

	if sections.Text == "" {
		return Sections{}, fmt.Errorf("%w: %s", ErrMissingSections, name)
	}

	sections.Data, err = readSection(fsys, name, SectionData)
	if err != nil {
		return Sections{}, err
	}

	sections.BSS, err = readSection(fsys, name, SectionBSS)
	if err != nil {
		return Sections{}, err
	}

	return sections, nil
}

// readSection returns the trimmed content of the section file. A missing file
// results in an empty string.
func readSection(fsys fs.FS, name, section string) (string, error) {
	file := path.Join(sysModuleDir, name, "sections", section)

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("read section %s of %s: %w", section, name, err)
	}

	return strings.TrimSpace(string(content)), nil
}
