// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ulrichsg/go-getopt/internal/sliceiterator"
	"github.com/ulrichsg/go-getopt/option"
	"github.com/ulrichsg/go-getopt/text"
)

// isOptionLike - anything that starts with a dash and is longer than the
// dash itself.  A lone '-' is an operand (commonly stdin), '--' counts as
// option-like for argument lookahead purposes.
func isOptionLike(s string) bool {
	return len(s) > 1 && s[0] == '-'
}

type tokenizer struct {
	table  *Table
	quirks bool
	iter   *sliceiterator.Iterator
	result *Result
}

// Tokenize - walks the raw argument list against the option table and
// produces resolved option values plus the leftover operands.
//
// The scan is a single pass, left to right, with one token of lookahead for
// argument consumption.  Option recognition ends at a bare '--' (consumed
// and discarded) or at the first token that is not option-like (kept as the
// first operand); every later token is appended to the operands verbatim.
//
// In quirks mode unknown flags are accepted and registered into the table on
// the fly through Table.Merge, so the table handle is mutated by the call.
// On error no Result is returned.
func Tokenize(args []string, table *Table, quirks bool) (*Result, error) {
	if args == nil {
		args = []string{}
	}
	t := &tokenizer{
		table:  table,
		quirks: quirks,
		iter:   sliceiterator.New(args),
		result: newResult(),
	}

ARGS_LOOP:
	for t.iter.Next() {
		arg := t.iter.Value()
		switch {
		case arg == "--":
			t.result.operands = append(t.result.operands, t.iter.Remaining()...)
			break ARGS_LOOP
		case strings.HasPrefix(arg, "--"):
			if err := t.long(arg); err != nil {
				return nil, err
			}
		case strings.HasPrefix(arg, "-") && arg != "-":
			if err := t.shortBundle(arg); err != nil {
				return nil, err
			}
		default:
			// First non-option token ends option recognition, the token
			// itself is the first operand.
			t.result.operands = append(t.result.operands, arg)
			t.result.operands = append(t.result.operands, t.iter.Remaining()...)
			break ARGS_LOOP
		}
	}

	for _, opt := range table.Options() {
		if opt.HasDefault {
			t.result.applyDefault(opt)
		}
	}
	return t.result, nil
}

func (t *tokenizer) long(arg string) error {
	body := strings.TrimPrefix(arg, "--")
	name, value, hasValue := strings.Cut(body, "=")
	// "--=value" carries no option name, there is nothing to resolve and
	// nothing quirks mode could register.
	if name == "" {
		return fmt.Errorf(text.ErrorUnknownOption+"%w", arg, ErrorUnknownOption)
	}

	opt, ok := t.table.LookupLong(name)
	if !ok {
		if !t.quirks {
			return fmt.Errorf(text.ErrorUnknownOption+"%w", "--"+name, ErrorUnknownOption)
		}
		// Single character names live in the short namespace, same as the
		// length based resolution for specification rows.
		if utf8.RuneCountInString(name) == 1 {
			opt, ok = t.table.LookupShort(name)
		}
		if !ok {
			return t.registerLong(name, value, hasValue)
		}
	}

	switch opt.Mode {
	case option.NoArgument:
		if hasValue {
			return fmt.Errorf(text.ErrorUnexpectedArgument+"%w", name, ErrorUnexpectedArgument)
		}
		t.result.increment(opt)
	case option.RequiredArgument:
		if hasValue {
			t.result.setValue(opt, value)
			return nil
		}
		next, ok := t.iter.PeekNextValue()
		if !ok {
			return fmt.Errorf(text.ErrorMissingArgument+"%w", name, ErrorMissingArgument)
		}
		if isOptionLike(next) {
			return fmt.Errorf(text.ErrorArgumentWithDash+"%w", name, ErrorMissingArgument)
		}
		t.iter.Next()
		t.result.setValue(opt, next)
	case option.OptionalArgument:
		if hasValue {
			t.result.setValue(opt, value)
			return nil
		}
		// Long optional-argument options only take values through '='.
		if opt.HasDefault {
			t.result.setValue(opt, opt.Default)
		} else {
			t.result.increment(opt)
		}
	}
	return nil
}

// registerLong - quirks mode handling for an unknown long option.  With an
// inline '=' the option is registered as taking a required argument and its
// default becomes the right-hand side, or "1" when the right-hand side is
// empty.  Without '=' it is registered as a bare flag.  A single character
// name registers as a short option.
func (t *tokenizer) registerLong(name, value string, hasValue bool) error {
	mode := option.NoArgument
	if hasValue {
		mode = option.RequiredArgument
	}
	short, long := resolveIdentifier(name)
	newOpt := option.New(short, long, mode)
	if hasValue {
		def := value
		if def == "" {
			def = "1"
		}
		newOpt.SetDefault(def)
	}
	if err := t.table.Merge([]*option.Option{newOpt}, Permissive); err != nil {
		return err
	}
	option.Logger.Printf("quirks mode registered option --%s", name)
	var opt *option.Option
	if long != "" {
		opt, _ = t.table.LookupLong(long)
	} else {
		opt, _ = t.table.LookupShort(short)
	}
	if hasValue {
		t.result.setValue(opt, opt.Default)
	} else {
		t.result.increment(opt)
	}
	return nil
}

func (t *tokenizer) shortBundle(arg string) error {
	runes := []rune(strings.TrimPrefix(arg, "-"))
	for i := 0; i < len(runes); i++ {
		name := string(runes[i])
		opt, ok := t.table.LookupShort(name)
		if !ok {
			if !t.quirks {
				return fmt.Errorf(text.ErrorUnknownOption+"%w", "-"+name, ErrorUnknownOption)
			}
			// Quirks mode registered short options never take arguments.
			newOpt := option.New(name, "", option.NoArgument)
			if err := t.table.Merge([]*option.Option{newOpt}, Permissive); err != nil {
				return err
			}
			option.Logger.Printf("quirks mode registered option -%s", name)
			opt, _ = t.table.LookupShort(name)
		}

		switch opt.Mode {
		case option.NoArgument:
			t.result.increment(opt)
		case option.RequiredArgument:
			if i+1 < len(runes) {
				t.result.setValue(opt, string(runes[i+1:]))
				return nil
			}
			next, ok := t.iter.PeekNextValue()
			if !ok {
				return fmt.Errorf(text.ErrorMissingArgument+"%w", name, ErrorMissingArgument)
			}
			if isOptionLike(next) {
				return fmt.Errorf(text.ErrorArgumentWithDash+"%w", name, ErrorMissingArgument)
			}
			t.iter.Next()
			t.result.setValue(opt, next)
			return nil
		case option.OptionalArgument:
			if i+1 < len(runes) {
				t.result.setValue(opt, string(runes[i+1:]))
				return nil
			}
			if next, ok := t.iter.PeekNextValue(); ok && !isOptionLike(next) {
				t.iter.Next()
				t.result.setValue(opt, next)
			} else if opt.HasDefault {
				t.result.setValue(opt, opt.Default)
			} else {
				t.result.increment(opt)
			}
			// An argument taking option ends the bundle scan.
			return nil
		}
	}
	return nil
}
