// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
)

// Sentinel errors for the distinguishable failure kinds.  The user facing
// message text lives in the text package and is attached at the error site,
// callers branch on the kind with `errors.Is`.

// ErrorEmptySpecification - The grammar string or row list had zero entries.
var ErrorEmptySpecification = errors.New("")

// ErrorMalformedSpecification - The grammar string contains a character that
// is not valid at its position.
var ErrorMalformedSpecification = errors.New("")

// ErrorInvalidRow - A row list element is neither a prebuilt Option nor a
// structured row.
var ErrorInvalidRow = errors.New("")

// ErrorConflictingOption - A merge would redefine an existing short/long
// pairing inconsistently.
var ErrorConflictingOption = errors.New("")

// ErrorUnknownOption - An argument does not resolve against the option table
// and quirks mode is off.
var ErrorUnknownOption = errors.New("")

// ErrorMissingArgument - A required-argument option reached the end of the
// input, or the next token was itself option-like.
var ErrorMissingArgument = errors.New("")

// ErrorUnexpectedArgument - A no-argument long option was given an inline
// '=value'.
var ErrorUnexpectedArgument = errors.New("")
