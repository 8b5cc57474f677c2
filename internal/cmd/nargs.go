// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// nargsAnnotation is the flag annotation key for the number of values a
	// flag takes. Its value is the minimum and the maximum count.
	nargsAnnotation = "nargs"

	// unbounded as maximum count means any number of values.
	unbounded = -1

	// valueSeparator joins the values of a multi value flag into the single
	// value the flag set parses. It can not be part of a command line
	// argument.
	valueSeparator = "\x00"
)

// setNargs marks the flag with the given name to take between minValues and
// maxValues values.
//
// It panics if the flag does not exist.
func setNargs(flags *pflag.FlagSet, name string, minValues, maxValues int) {
	err := flags.SetAnnotation(name, nargsAnnotation, []string{
		strconv.Itoa(minValues),
		strconv.Itoa(maxValues),
	})
	if err != nil {
		panic(err)
	}
}

func flagNargs(flag *pflag.Flag) (int, int, bool) {
	counts, ok := flag.Annotations[nargsAnnotation]
	if !ok || len(counts) != 2 {
		return 0, 0, false
	}

	minValues, err := strconv.Atoi(counts[0])
	if err != nil {
		return 0, 0, false
	}

	maxValues, err := strconv.Atoi(counts[1])
	if err != nil {
		return 0, 0, false
	}

	return minValues, maxValues, true
}

// splitValues splits a value joined by [groupArgs].
func splitValues(value string) []string {
	return strings.Split(value, valueSeparator)
}

func isFlagArg(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// flagArg is a command line argument resolved to the flag it sets.
type flagArg struct {
	// standalone are the leading short flags of a cluster like "-nk", that
	// do not need a value.
	standalone []string
	// arg is the part of the argument that belongs to flag.
	arg      string
	flag     *pflag.Flag
	value    string
	hasValue bool
}

// lookupFlag resolves the flag the argument refers to and its inline value,
// if present. The flag is nil if it is unknown.
//
// Short flag clusters are resolved like the flag set does: leading flags
// without required value are split off until the first flag that takes
// the rest of the cluster as value or is the last one.
func lookupFlag(flags *pflag.FlagSet, arg string) flagArg {
	if name, isLong := strings.CutPrefix(arg, "--"); isLong {
		name, value, hasValue := strings.Cut(name, "=")

		return flagArg{
			arg:      arg,
			flag:     flags.Lookup(name),
			value:    value,
			hasValue: hasValue,
		}
	}

	var standalone []string

	shorthands := arg[1:]

	for idx := range len(shorthands) {
		flag := flags.ShorthandLookup(shorthands[idx : idx+1])
		if flag == nil {
			return flagArg{arg: arg}
		}

		resolved := flagArg{
			standalone: standalone,
			arg:        "-" + shorthands[idx:],
			flag:       flag,
		}

		rest := shorthands[idx+1:]

		switch {
		case rest == "":
			return resolved
		case rest[0] == '=':
			resolved.value, resolved.hasValue = rest[1:], true
			return resolved
		case flag.NoOptDefVal != "":
			standalone = append(standalone, "-"+shorthands[idx:idx+1])
		default:
			resolved.value, resolved.hasValue = rest, true
			return resolved
		}
	}

	return flagArg{arg: arg}
}

// groupArgs rewrites the arguments so that all values of a flag annotated
// with [nargsAnnotation] are passed as a single value, joined by
// [valueSeparator]: "--drive a.img scsi" becomes "--drive=a.img\x00scsi".
//
// Values are collected until the next flag, "--", or the maximum count is
// reached. A value given inline with "=" is the only value of the flag.
// Optional value flags without value are passed on without value so the
// flag's [pflag.Flag.NoOptDefVal] applies.
//
// Grouping stops at the first positional argument or "--". Those and all
// following arguments are passed through as is. Unknown flags are passed as
// is, too, so the flag set reports them.
func groupArgs(flags *pflag.FlagSet, args []string) ([]string, error) {
	grouped := make([]string, 0, len(args))

	for idx := 0; idx < len(args); idx++ {
		arg := args[idx]

		if arg == "--" || !isFlagArg(arg) {
			return append(grouped, args[idx:]...), nil
		}

		resolved := lookupFlag(flags, arg)
		if resolved.flag == nil {
			grouped = append(grouped, arg)
			continue
		}

		grouped = append(grouped, resolved.standalone...)
		flag, value, hasValue := resolved.flag, resolved.value, resolved.hasValue

		minValues, maxValues, isMulti := flagNargs(flag)
		if !isMulti {
			grouped = append(grouped, resolved.arg)

			// Keep the value with its flag, so it is not taken as
			// positional argument.
			if !hasValue && flag.NoOptDefVal == "" && idx+1 < len(args) {
				idx++
				grouped = append(grouped, args[idx])
			}

			continue
		}

		var values []string

		if hasValue {
			values = append(values, value)
		} else {
			for idx+1 < len(args) {
				if maxValues != unbounded && len(values) >= maxValues {
					break
				}

				next := args[idx+1]
				if next == "--" || isFlagArg(next) {
					break
				}

				values = append(values, next)
				idx++
			}
		}

		if len(values) < minValues {
			return nil, fmt.Errorf("flag --%s needs %d values, got %d: %w",
				flag.Name, minValues, len(values), ErrTooFewValues)
		}

		if len(values) == 0 {
			grouped = append(grouped, "--"+flag.Name)
			continue
		}

		grouped = append(grouped, "--"+flag.Name+"="+strings.Join(values, valueSeparator))
	}

	return grouped, nil
}
