// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - option struct and the duplicate/conflict rules used when
// building an option table.
package option

import (
	"io"
	"log"
	"sort"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Mode - Indicates whether an option takes an argument.
type Mode int

// Argument modes
const (
	NoArgument Mode = iota
	RequiredArgument
	OptionalArgument
)

func (m Mode) String() string {
	switch m {
	case RequiredArgument:
		return "required argument"
	case OptionalArgument:
		return "optional argument"
	}
	return "no argument"
}

// Option - describes one accepted flag.
//
// Short is a single alphanumeric character, Long a multi character name.
// Either may be empty but at least one must be present.
type Option struct {
	Short       string
	Long        string
	Mode        Mode
	Description string

	// Default is substituted into the parse result when the option never
	// occurs on the command line.  HasDefault distinguishes an empty string
	// default from no default at all.
	Default    string
	HasDefault bool
}

// New - Returns a new option object.
func New(short, long string, mode Mode) *Option {
	return &Option{Short: short, Long: long, Mode: mode}
}

// SetDescription - Adds a description used for help.
func (opt *Option) SetDescription(description string) *Option {
	opt.Description = description
	return opt
}

// SetDefault - Sets the value used when the option is absent from the
// parsed arguments.
func (opt *Option) SetDefault(value string) *Option {
	opt.Default = value
	opt.HasDefault = true
	return opt
}

// Name - Canonical identifier for the option: the long name when present,
// the short name otherwise.
func (opt *Option) Name() string {
	if opt.Long != "" {
		return opt.Long
	}
	return opt.Short
}

// Keys - The identifiers the option can be looked up by. One or two entries.
func (opt *Option) Keys() []string {
	keys := []string{}
	if opt.Short != "" {
		keys = append(keys, opt.Short)
	}
	if opt.Long != "" {
		keys = append(keys, opt.Long)
	}
	return keys
}

// EqualNames - Reports whether two options are duplicates: Short and Long
// pairwise equal.  Description and default are not part of an option's
// identity.
func (opt *Option) EqualNames(other *Option) bool {
	return opt.Short == other.Short && opt.Long == other.Long
}

// ConflictsWith - Reports whether two options conflict: they agree on
// exactly one of Short/Long and disagree on the other.  Agreement on a field
// that is empty on both sides does not count, two short-only options with
// different letters are simply independent.
func (opt *Option) ConflictsWith(other *Option) bool {
	if opt.EqualNames(other) {
		return false
	}
	if opt.Short != "" && opt.Short == other.Short && opt.Long != other.Long {
		return true
	}
	if opt.Long != "" && opt.Long == other.Long && opt.Short != other.Short {
		return true
	}
	return false
}

// Sort - sorts a list of options by canonical name.
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
}
