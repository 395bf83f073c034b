// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - renders help text sections for a compiled option table.
package help

import (
	"fmt"
	"strings"

	"github.com/ulrichsg/go-getopt/option"
	"github.com/ulrichsg/go-getopt/text"
)

// Padding -
var Padding = 4

func pad() string {
	return strings.Repeat(" ", Padding)
}

// names - "-s, --long" label for an option.
func names(opt *option.Option) string {
	parts := []string{}
	if opt.Short != "" {
		parts = append(parts, "-"+opt.Short)
	}
	if opt.Long != "" {
		parts = append(parts, "--"+opt.Long)
	}
	return strings.Join(parts, ", ")
}

func argSuffix(opt *option.Option) string {
	switch opt.Mode {
	case option.RequiredArgument:
		return " <value>"
	case option.OptionalArgument:
		return "[=<value>]"
	}
	return ""
}

// Name - Return the help Name section.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, pad(), out)
}

// Synopsis - Return a default synopsis with one bracketed entry per option,
// sorted by name.
func Synopsis(scriptName string, options []*option.Option) string {
	list := make([]*option.Option, len(options))
	copy(list, options)
	option.Sort(list)
	entries := []string{}
	for _, opt := range list {
		label := "-" + opt.Short
		if opt.Long != "" {
			label = "--" + opt.Long
		}
		entries = append(entries, "["+label+argSuffix(opt)+"]")
	}
	entries = append(entries, "[--]", "[<operand>...]")
	return fmt.Sprintf("%s:\n%s%s %s\n", text.HelpSynopsisHeader, pad(), scriptName, strings.Join(entries, " "))
}

// OptionList - Return the help entry for each option, sorted by name, with
// aligned descriptions and default value annotations.
func OptionList(options []*option.Option) string {
	list := make([]*option.Option, len(options))
	copy(list, options)
	option.Sort(list)

	width := 0
	labels := make([]string, len(list))
	for i, opt := range list {
		labels[i] = names(opt) + argSuffix(opt)
		if len(labels[i]) > width {
			width = len(labels[i])
		}
	}

	out := text.HelpOptionsHeader + ":\n"
	for i, opt := range list {
		description := opt.Description
		if opt.HasDefault {
			annotation := fmt.Sprintf("(%s: %q)", text.HelpDefaultText, opt.Default)
			if description != "" {
				description += " " + annotation
			} else {
				description = annotation
			}
		}
		if description == "" {
			out += fmt.Sprintf("%s%s\n", pad(), labels[i])
			continue
		}
		out += fmt.Sprintf("%s%-*s    %s\n", pad(), width, labels[i], description)
	}
	return out
}

// Render - Name, Synopsis and Options sections in order.  Sections that
// have nothing to show are skipped.
func Render(scriptName, description string, options []*option.Option) string {
	sections := []string{Name(scriptName, description), Synopsis(scriptName, options)}
	if len(options) > 0 {
		sections = append(sections, OptionList(options))
	}
	return strings.Join(sections, "\n")
}
