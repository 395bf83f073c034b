// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - GNU style command line option parser modeled after the PHP
getopt-php library.

Options are declared either through a compact grammar string, where every
alphanumeric character is a short option and trailing colons control its
argument mode, or through structured rows carrying short name, long name,
mode, description and default value.  The compiled option table is then run
against any slice of strings, typically os.Args[1:].

Usage

	opt, err := getopt.New(getopt.Rows{
		getopt.Row{"v", "verbose", option.NoArgument, "increase verbosity"},
		getopt.Row{"o", "output", option.RequiredArgument, "output file", "-"},
	})
	if err != nil {
		// broken specification
	}
	result, err := opt.Parse(os.Args[1:])
	if err != nil {
		// bad command line
	}
	if result.Called("verbose") {
		// ...
	}
	output := result.Value("output").(string)
	operands := result.Operands()

Features

* Support for `--long` options with `--long=value` and `--long value` syntax.

* Short option bundling (`-abc` is `-a -b -c`) and attached values
(`-ofile`).

* Passing `--` stops option parsing, everything after is kept as operands.

* Short and long names of the same option resolve to the same value.

* Quirks mode: unknown flags are accepted and registered on the fly instead
of being rejected.
*/
package getopt

import (
	"os"
	"path/filepath"

	"github.com/ulrichsg/go-getopt/help"
	"github.com/ulrichsg/go-getopt/option"
)

// Getopt - wires specification compilation, the option table and the
// argument tokenizer together.  This is the user facing entry point, the
// underlying pieces (Compiler, Table, Tokenize) are usable on their own.
type Getopt struct {
	compiler    *Compiler
	table       *Table
	quirks      bool
	scriptName  string
	description string
}

// New - builds a parser from the given specification.  A nil specification
// yields an empty option table, useful together with quirks mode.
func New(spec Specification) (*Getopt, error) {
	g := &Getopt{
		compiler: NewCompiler(),
		table:    NewTable(),
	}
	if spec == nil {
		return g, nil
	}
	err := g.AddSpec(spec)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// AddSpec - compiles an additional specification and merges it into the
// option table.  Conflicting redefinitions are an error, or are dropped when
// quirks mode is on.
func (g *Getopt) AddSpec(spec Specification) error {
	opts, err := g.compiler.Compile(spec)
	if err != nil {
		return err
	}
	policy := Strict
	if g.quirks {
		policy = Permissive
	}
	return g.table.Merge(opts, policy)
}

// SetQuirks - toggles quirks mode: unknown flags are accepted and
// registered at parse time instead of raising an error.
func (g *Getopt) SetQuirks(on bool) {
	g.quirks = on
}

// SetDefaultMode - argument mode assigned to specification rows that don't
// carry one.
func (g *Getopt) SetDefaultMode(mode option.Mode) {
	g.compiler.DefaultMode = mode
}

// SetDescription - one line program description used in the help output.
func (g *Getopt) SetDescription(description string) {
	g.description = description
}

// SetScriptName - overrides the script name discovered from os.Args[0].
func (g *Getopt) SetScriptName(name string) {
	g.scriptName = name
}

// ScriptName - the name used in help output.  Falls back to the base name
// of the running process.
func (g *Getopt) ScriptName() string {
	if g.scriptName != "" {
		return g.scriptName
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return ""
}

// Options - the current option table contents in declaration order.  Grows
// during Parse when quirks mode is on.
func (g *Getopt) Options() []*option.Option {
	return g.table.Options()
}

// Parse - tokenizes the given argument list against the option table.
func (g *Getopt) Parse(args []string) (*Result, error) {
	return Tokenize(args, g.table, g.quirks)
}

// ParseOSArgs - tokenizes the ambient process argument vector.
func (g *Getopt) ParseOSArgs() (*Result, error) {
	return g.Parse(os.Args[1:])
}

// Help - renders the name, synopsis and option list sections.
func (g *Getopt) Help() string {
	return help.Render(g.ScriptName(), g.description, g.table.Options())
}
