// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing messages kept in a single place.
package text

// Specification compiler errors

// ErrorEmptySpecification holds the text used when a grammar string or row
// list has zero entries.
var ErrorEmptySpecification = "empty option specification"

// ErrorMalformedSpecification holds the text used when a grammar string
// contains an unexpected character at a position where only a short option
// letter is valid.
// It has a rune placeholder for the character and an int placeholder for its
// 1-based position.
var ErrorMalformedSpecification = "unexpected character '%c' at position %d in specification, expected a short option letter"

// ErrorMalformedSpecificationColon is the variant used at positions where a
// ':' would also have been valid.
var ErrorMalformedSpecificationColon = "unexpected character '%c' at position %d in specification, expected a short option letter or ':'"

// ErrorInvalidRow holds the text used when a row list element is neither a
// prebuilt Option nor a 2 to 5 field row.
// It has an int placeholder for the 0-based row index and a string
// placeholder for the reason.
var ErrorInvalidRow = "invalid specification row %d: %s"

// ErrorConflictingOption holds the text used when a merge would redefine an
// existing short/long pairing.
// It has two string placeholders for the option names involved.
var ErrorConflictingOption = "option '%s' conflicts with previously defined option '%s'"

// Tokenizer errors

// ErrorUnknownOption holds the text used when an argument does not resolve
// against the option table.
// It has a string placeholder for the name of the unknown option.
var ErrorUnknownOption = "unknown option '%s'"

// ErrorMissingArgument holds the text for the missing argument error.
// It has a string placeholder for the name of the option missing the argument.
var ErrorMissingArgument = "missing argument for option '%s'"

// ErrorArgumentWithDash holds the text for the missing argument error in
// cases where the next argument looks like an option (starts with '-').
// It has a string placeholder for the name of the option missing the argument.
var ErrorArgumentWithDash = "missing argument for option '%s'\n" +
	"If passing arguments that start with '-' use --option=-argument"

// ErrorUnexpectedArgument holds the text used when a no-argument long option
// is given an inline '=value'.
// It has a string placeholder for the name of the option.
var ErrorUnexpectedArgument = "option '%s' does not take an argument"

// Help texts

// HelpNameHeader - Header for the help Name section.
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - Header for the help Synopsis section.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpOptionsHeader - Header for the help Options section.
var HelpOptionsHeader = "OPTIONS"

// HelpDefaultText - Annotation used for options carrying a default value.
var HelpDefaultText = "default"
