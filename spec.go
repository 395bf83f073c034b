// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/ulrichsg/go-getopt/option"
	"github.com/ulrichsg/go-getopt/text"
)

// Specification - the accepted option specification shapes.
//
// The concrete types are GrammarString, Rows and Options.  Dispatch happens
// once, at Compiler.Compile, downstream code only ever sees []*option.Option.
type Specification interface {
	specification()
}

// GrammarString - compact short option grammar.
//
// Each alphanumeric character declares one short option, a trailing ':'
// makes it take a required argument, '::' an optional one.  For example
// "ab:c::" declares -a (no argument), -b (required) and -c (optional).
type GrammarString string

// Row - one structured specification row with 2 to 5 positional fields:
// [short, long, mode, description, default].  Shorter rows are resolved by
// shorthand rules, see Compiler.Compile.
type Row []interface{}

// Rows - a list of specification rows.  Elements are Row values or prebuilt
// *option.Option instances, anything else fails with ErrorInvalidRow.
type Rows []interface{}

// Options - a list of prebuilt options used as a specification verbatim.
type Options []*option.Option

func (GrammarString) specification() {}

func (Rows) specification() {}

func (Options) specification() {}

// Compiler - translates specifications into ordered option lists.
//
// DefaultMode is the argument mode assigned to rows that don't carry one.
type Compiler struct {
	DefaultMode option.Mode
}

// NewCompiler - returns a compiler whose rows default to NoArgument.
func NewCompiler() *Compiler {
	return &Compiler{DefaultMode: option.NoArgument}
}

// Compile - produces the option list described by the given specification,
// in declaration order.  The result is not merged into any table, use
// Table.Merge for that.
func (c *Compiler) Compile(spec Specification) ([]*option.Option, error) {
	switch s := spec.(type) {
	case GrammarString:
		return c.compileGrammar(s)
	case Rows:
		return c.compileRows(s)
	case Options:
		if len(s) == 0 {
			return nil, fmt.Errorf(text.ErrorEmptySpecification+"%w", ErrorEmptySpecification)
		}
		out := make([]*option.Option, len(s))
		copy(out, s)
		return out, nil
	}
	return nil, fmt.Errorf(text.ErrorEmptySpecification+"%w", ErrorEmptySpecification)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// compileGrammar - single pass scan, left to right.  Every produced option
// consumes its letter plus up to two colons, a colon is only valid right
// after a letter that still has colon allotment left.
func (c *Compiler) compileGrammar(spec GrammarString) ([]*option.Option, error) {
	if spec == "" {
		return nil, fmt.Errorf(text.ErrorEmptySpecification+"%w", ErrorEmptySpecification)
	}
	out := []*option.Option{}
	var current *option.Option
	colons := 0
	position := 0
	for _, r := range string(spec) {
		position++
		switch {
		case isAlphanumeric(r):
			current = option.New(string(r), "", option.NoArgument)
			colons = 0
			out = append(out, current)
		case r == ':' && current != nil && colons < 2:
			colons++
			if colons == 1 {
				current.Mode = option.RequiredArgument
			} else {
				current.Mode = option.OptionalArgument
			}
		default:
			// The position accepts a colon when the previous option can
			// still take one, the error has to say so.
			if current != nil && colons < 2 {
				return nil, fmt.Errorf(text.ErrorMalformedSpecificationColon+"%w", r, position, ErrorMalformedSpecification)
			}
			return nil, fmt.Errorf(text.ErrorMalformedSpecification+"%w", r, position, ErrorMalformedSpecification)
		}
	}
	option.Logger.Printf("compiled grammar %q into %d options", spec, len(out))
	return out, nil
}

func (c *Compiler) compileRows(rows Rows) ([]*option.Option, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf(text.ErrorEmptySpecification+"%w", ErrorEmptySpecification)
	}
	out := []*option.Option{}
	for i, row := range rows {
		switch v := row.(type) {
		case *option.Option:
			out = append(out, v)
		case Row:
			opt, err := c.compileRow(i, v)
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		case []interface{}:
			opt, err := c.compileRow(i, v)
			if err != nil {
				return nil, err
			}
			out = append(out, opt)
		default:
			return nil, fmt.Errorf(text.ErrorInvalidRow+"%w", i, "element is neither an Option nor a row", ErrorInvalidRow)
		}
	}
	return out, nil
}

func rowString(field interface{}) (string, bool) {
	s, ok := field.(string)
	return s, ok
}

func rowMode(field interface{}) (option.Mode, bool) {
	switch v := field.(type) {
	case option.Mode:
		return v, true
	case int:
		if v >= int(option.NoArgument) && v <= int(option.OptionalArgument) {
			return option.Mode(v), true
		}
	}
	return option.NoArgument, false
}

// resolveIdentifier - length-1 identifiers are short names, anything longer
// is a long name.
func resolveIdentifier(identifier string) (short, long string) {
	if utf8.RuneCountInString(identifier) == 1 {
		return identifier, ""
	}
	return "", identifier
}

func (c *Compiler) compileRow(idx int, fields []interface{}) (*option.Option, error) {
	invalid := func(reason string) error {
		return fmt.Errorf(text.ErrorInvalidRow+"%w", idx, reason, ErrorInvalidRow)
	}
	if len(fields) < 2 || len(fields) > 5 {
		return nil, invalid(fmt.Sprintf("expected 2 to 5 fields, got %d", len(fields)))
	}

	if len(fields) == 2 {
		identifier, ok := rowString(fields[0])
		if !ok {
			return nil, invalid("first field is not a string")
		}
		if identifier == "" {
			return nil, invalid("option must have a short or a long name")
		}
		short, long := resolveIdentifier(identifier)
		if mode, ok := rowMode(fields[1]); ok {
			return option.New(short, long, mode), nil
		}
		second, ok := rowString(fields[1])
		if !ok {
			return nil, invalid("second field is neither a mode nor a string")
		}
		if short != "" && second != "" {
			long = second
		}
		return option.New(short, long, c.DefaultMode), nil
	}

	short, ok := rowString(fields[0])
	if !ok {
		return nil, invalid("short name field is not a string")
	}
	long, ok := rowString(fields[1])
	if !ok {
		return nil, invalid("long name field is not a string")
	}
	if short == "" && long == "" {
		return nil, invalid("option must have a short or a long name")
	}
	if utf8.RuneCountInString(short) > 1 {
		return nil, invalid(fmt.Sprintf("short name '%s' is longer than one character", short))
	}
	mode, ok := rowMode(fields[2])
	if !ok {
		return nil, invalid("mode field is not a valid argument mode")
	}
	opt := option.New(short, long, mode)
	if len(fields) >= 4 {
		description, ok := rowString(fields[3])
		if !ok {
			return nil, invalid("description field is not a string")
		}
		opt.SetDescription(description)
	}
	if len(fields) == 5 {
		switch v := fields[4].(type) {
		case string:
			opt.SetDefault(v)
		case int:
			opt.SetDefault(strconv.Itoa(v))
		default:
			return nil, invalid("default value field is neither a string nor an int")
		}
	}
	return opt, nil
}
