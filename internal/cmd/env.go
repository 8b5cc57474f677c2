// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// EnvArgs returns arguments from the environment variable with the given
// name. Arguments are separated by whitespace.
func EnvArgs(varName string) []string {
	return strings.Fields(os.Getenv(varName))
}

// LocalConfigArgs returns arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be used
// and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// ArgSource names the additional argument sources of a command.
type ArgSource struct {
	// EnvVar is the name of the environment variable to read arguments from.
	EnvVar string

	// LocalFile is the path of the local config file, relative to the FS
	// passed to [MergedArgs].
	LocalFile string
}

// MergedArgs returns the given command line arguments with the arguments of
// the local config file and the environment variable in front of them.
//
// The order is local file, environment, command line, so later sources can
// override single value flags of earlier ones. The result is never nil.
func MergedArgs(args []string, fsys fs.FS, source ArgSource) ([]string, error) {
	fileArgs, err := LocalConfigArgs(fsys, source.LocalFile)
	if err != nil {
		return nil, fmt.Errorf("local config %s: %w", source.LocalFile, err)
	}

	envArgs := EnvArgs(source.EnvVar)

	merged := make([]string, 0, len(fileArgs)+len(envArgs)+len(args))
	merged = append(merged, fileArgs...)
	merged = append(merged, envArgs...)
	merged = append(merged, args...)

	return merged, nil
}
