// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package modsym

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default number of modules that are looked up
// concurrently.
const DefaultLimit = 8

// ResolveFunc returns the on-disk path of the kernel module with the given
// name. [Modinfo] is the usual implementation.
type ResolveFunc func(ctx context.Context, name string) (string, error)

// Locator looks up section addresses and debug file paths of kernel modules.
type Locator struct {
	// Fsys is the file system rooted at "/" that sysfs is read from.
	Fsys fs.FS

	// Resolve returns the on-disk path of a module. If nil, [Modinfo] is
	// used.
	Resolve ResolveFunc

	// DebugRoot is the directory the debug file tree lives in.
	DebugRoot string

	// KernelVersion replaces the kernel version of module paths, if set.
	KernelVersion string

	// Limit is the number of concurrent lookups. [DefaultLimit] is used if
	// it is not positive.
	Limit int
}

// Locate looks up the module with the given name.
//
// It returns an error wrapping [ErrMissingSections] if the module has no
// .text section address.
func (l *Locator) Locate(ctx context.Context, name string) (Module, error) {
	sections, err := ReadSections(l.Fsys, name)
	if err != nil {
		return Module{}, err
	}

	resolve := l.Resolve
	if resolve == nil {
		resolve = Modinfo
	}

	modulePath, err := resolve(ctx, name)
	if err != nil {
		return Module{}, fmt.Errorf("resolve %s: %w", name, err)
	}

	debugPath, err := DebugPath(modulePath, l.DebugRoot, l.KernelVersion)
	if err != nil {
		return Module{}, fmt.Errorf("debug path of %s: %w", name, err)
	}

	return Module{
		Name:     name,
		Path:     debugPath,
		Sections: sections,
	}, nil
}

// Lines returns the GDB add-symbol-file lines for the modules with the given
// names in the order of names.
//
// Modules are looked up concurrently. Modules without sections are skipped.
// Any other error aborts all lookups and is returned.
func (l *Locator) Lines(ctx context.Context, names []string) ([]string, error) {
	limit := l.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	modules := make([]*Module, len(names))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for idx, name := range names {
		group.Go(func() error {
			module, err := l.Locate(ctx, name)
			if err != nil {
				if errors.Is(err, ErrMissingSections) {
					slog.Debug("Skipping module without sections",
						slog.String("module", name))

					return nil
				}

				return err
			}

			modules[idx] = &module

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	lines := make([]string, 0, len(modules))

	for _, module := range modules {
		if module != nil {
			lines = append(lines, module.Line())
		}
	}

	return lines, nil
}
