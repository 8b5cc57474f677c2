// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"fmt"
	"path"
	"strings"
)

// DefaultDebugRoot is the usual root directory of separate debug files.
const DefaultDebugRoot = "/usr/lib/debug"

const modulesDir = "/lib/modules/"

// Debug copies of modules are never compressed.
var compressionSuffixes = []string{
	".gz",
	".xz",
	".zst",
}

// DebugPath maps the path of an installed kernel module to the path of its
// debug copy below debugRoot.
//
// The module path must be of the form /lib/modules/<version>/<file>.
// Otherwise, [ErrMalformedModulePath] is returned. If kernelVersion is not
// empty, it replaces the version of the module path. Compression suffixes of
// the module file are removed.
func DebugPath(modulePath, debugRoot, kernelVersion string) (string, error) {
	rest, ok := strings.CutPrefix(modulePath, modulesDir)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMalformedModulePath, modulePath)
	}

	version, file, ok := strings.Cut(rest, "/")
	if !ok || version == "" || file == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedModulePath, modulePath)
	}

	if kernelVersion != "" {
		version = kernelVersion
	}

	return path.Join(debugRoot, modulesDir, version, uncompressedName(file)), nil
}

func uncompressedName(file string) string {
	for _, suffix := range compressionSuffixes {
		if name, ok := strings.CutSuffix(file, ".ko"+suffix); ok {
			return name + ".ko"
		}
	}

	return file
}
