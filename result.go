// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"github.com/ulrichsg/go-getopt/option"
)

// occurrence - single source of truth for one option's resolved state.
// Options with both a short and a long name publish the same occurrence
// under both keys.
type occurrence struct {
	count    int
	value    string
	hasValue bool
}

// Result - outcome of one tokenization pass: resolved option values plus the
// leftover positional operands.  Built fresh on every call to Tokenize and
// never returned half-filled.
type Result struct {
	byName   map[string]*occurrence
	operands []string
}

func newResult() *Result {
	return &Result{byName: make(map[string]*occurrence)}
}

func (r *Result) occurrenceFor(opt *option.Option) *occurrence {
	for _, key := range opt.Keys() {
		if o, ok := r.byName[key]; ok {
			return o
		}
	}
	o := &occurrence{}
	for _, key := range opt.Keys() {
		r.byName[key] = o
	}
	return o
}

// setValue - records an occurrence carrying a value.  Later occurrences
// overwrite earlier values.
func (r *Result) setValue(opt *option.Option, value string) {
	o := r.occurrenceFor(opt)
	o.count++
	o.value = value
	o.hasValue = true
}

// increment - records a bare occurrence.  The occurrence count becomes the
// reported value, a previously stored value is discarded.
func (r *Result) increment(opt *option.Option) {
	o := r.occurrenceFor(opt)
	o.count++
	o.value = ""
	o.hasValue = false
}

// applyDefault - writes the configured default for an option that never
// occurred during the scan.  Does not mark the option as called.
func (r *Result) applyDefault(opt *option.Option) {
	o := r.occurrenceFor(opt)
	if o.count == 0 && !o.hasValue {
		o.value = opt.Default
		o.hasValue = true
	}
}

// Value - Returns the resolved value for the given short or long name:
// a string for options that received (or defaulted to) a value, an int
// occurrence count for bare flags, nil when the option is absent.
func (r *Result) Value(name string) interface{} {
	o, ok := r.byName[name]
	if !ok {
		return nil
	}
	if o.hasValue {
		return o.value
	}
	if o.count > 0 {
		return o.count
	}
	return nil
}

// Called - Indicates if the option occurred on the command line.  Options
// that only received their configured default are not called.
func (r *Result) Called(name string) bool {
	o, ok := r.byName[name]
	return ok && o.count > 0
}

// Count - Number of times the option occurred.
func (r *Result) Count(name string) int {
	o, ok := r.byName[name]
	if !ok {
		return 0
	}
	return o.count
}

// Operands - The tokens not consumed as options or their arguments, in
// order.  The returned slice is a copy.
func (r *Result) Operands() []string {
	out := make([]string, len(r.operands))
	copy(out, r.operands)
	return out
}

// Operand - 0-based operand accessor.
func (r *Result) Operand(i int) (string, bool) {
	if i < 0 || i >= len(r.operands) {
		return "", false
	}
	return r.operands[i], true
}

// OperandCount - Number of operands.
func (r *Result) OperandCount() int {
	return len(r.operands)
}
