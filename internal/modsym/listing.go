// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseListing returns the module names from a module listing as printed by
// lsmod.
//
// The first line is a header and is ignored. The module name is the first
// field of each further line. Empty lines are skipped.
func ParseListing(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)

	// Skip header.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		return nil, nil
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		names = append(names, fields[0])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}

	return names, nil
}
