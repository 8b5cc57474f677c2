// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

const modinfoTimeout = 5 * time.Second

// Modinfo returns the file path of the kernel module with the given name.
//
// It invokes the "modinfo" executable which is expected to be present on the
// system. It returns a [ModinfoExecError] in case "modinfo" is not available
// or it returned with a non-zero exit code, which is the case for unknown
// modules.
func Modinfo(ctx context.Context, name string) (string, error) {
	var out bytes.Buffer

	err := runModinfo(ctx, name, &out)
	if err != nil {
		return "", err
	}

	return parseModinfoFilename(&out)
}

func runModinfo(ctx context.Context, name string, outW io.Writer) error {
	var stderrBuf bytes.Buffer

	ctx, stop := context.WithTimeout(ctx, modinfoTimeout)
	defer stop()

	cmd := exec.CommandContext(ctx, "modinfo", name)
	cmd.Stdout = outW
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err != nil {
		return &ModinfoExecError{
			Err:    err,
			Stderr: stderrBuf.String(),
		}
	}

	return nil
}

// parseModinfoFilename returns the value of the first "filename:" field.
func parseModinfoFilename(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 1 && fields[0] == "filename:" {
			return fields[1], nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read output: %w", err)
	}

	return "", ErrNoModuleFilename
}
