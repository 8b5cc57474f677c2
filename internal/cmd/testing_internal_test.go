// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// setupTestLogging sets the default logger to write into the given writer
// without time attribute and restores the former logger on cleanup.
func setupTestLogging(t *testing.T, w io.Writer) {
	t.Helper()

	former := slog.Default()

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return attr
		},
	})))

	t.Cleanup(func() {
		slog.SetDefault(former)
	})
}

type testRun struct {
	exitCode int
	stdout   string
	stderr   string
}

// runCommand runs the given entry point with the given arguments and stdin
// in an empty working directory with empty argument environment.
func runCommand(
	t *testing.T,
	run func(context.Context, []string, IO) int,
	args []string,
	stdin string,
) testRun {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv(qemuCmdArgSource.EnvVar, "")
	t.Setenv(gdbModSymArgSource.EnvVar, "")

	former := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(former)
	})

	var stdout, stderr bytes.Buffer

	exitCode := run(t.Context(), args, IO{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	})

	return testRun{
		exitCode: exitCode,
		stdout:   stdout.String(),
		stderr:   stderr.String(),
	}
}
