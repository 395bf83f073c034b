// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"fmt"

	"github.com/ulrichsg/go-getopt/option"
	"github.com/ulrichsg/go-getopt/text"
)

// MergePolicy - Controls how Table.Merge treats conflicting redefinitions.
type MergePolicy int

// Merge policies
const (
	// Strict - conflicting newcomers raise ErrorConflictingOption.
	Strict MergePolicy = iota
	// Permissive - conflicting newcomers are silently dropped.  Used by the
	// tokenizer in quirks mode.
	Permissive
)

// Table - ordered sequence of options, unique and conflict free.
//
// Membership only ever changes through Merge.  The tokenizer mutates the
// table through the same gate when quirks mode registers unknown flags, so a
// Table shared across goroutines needs external synchronization.
type Table struct {
	list    []*option.Option
	byShort map[string]*option.Option
	byLong  map[string]*option.Option
}

// NewTable - builds an empty option table.
func NewTable() *Table {
	return &Table{
		byShort: make(map[string]*option.Option),
		byLong:  make(map[string]*option.Option),
	}
}

// Options - Returns the options in first-seen order.  The returned slice is
// a copy, the elements are the table's own.
func (t *Table) Options() []*option.Option {
	out := make([]*option.Option, len(t.list))
	copy(out, t.list)
	return out
}

// Len - Number of options in the table.
func (t *Table) Len() int {
	return len(t.list)
}

// LookupShort - Resolves a short name against the table.
func (t *Table) LookupShort(name string) (*option.Option, bool) {
	opt, ok := t.byShort[name]
	return opt, ok
}

// LookupLong - Resolves a long name against the table.
func (t *Table) LookupLong(name string) (*option.Option, bool) {
	opt, ok := t.byLong[name]
	return opt, ok
}

// Merge - Merges new options into the table.
//
// The check is all-pairs over the existing options plus the newcomers: exact
// duplicates (same short, same long) are dropped keeping the first instance,
// conflicting redefinitions raise ErrorConflictingOption under the Strict
// policy and drop the newcomer under Permissive.  Surviving options keep
// first-seen order.  On error the table is left untouched.
func (t *Table) Merge(newOptions []*option.Option, policy MergePolicy) error {
	candidates := make([]*option.Option, 0, len(t.list)+len(newOptions))
	candidates = append(candidates, t.list...)
	candidates = append(candidates, newOptions...)

	accepted := []*option.Option{}
CANDIDATES:
	for _, candidate := range candidates {
		for _, existing := range accepted {
			if existing.EqualNames(candidate) {
				option.Logger.Printf("dropping duplicate option %s", candidate.Name())
				continue CANDIDATES
			}
			if existing.ConflictsWith(candidate) {
				if policy == Permissive {
					option.Logger.Printf("dropping conflicting option %s", candidate.Name())
					continue CANDIDATES
				}
				return fmt.Errorf(text.ErrorConflictingOption+"%w", candidate.Name(), existing.Name(), ErrorConflictingOption)
			}
		}
		accepted = append(accepted, candidate)
	}

	byShort := make(map[string]*option.Option, len(accepted))
	byLong := make(map[string]*option.Option, len(accepted))
	for _, opt := range accepted {
		if opt.Short != "" {
			byShort[opt.Short] = opt
		}
		if opt.Long != "" {
			byLong[opt.Long] = opt
		}
	}
	t.list = accepted
	t.byShort = byShort
	t.byLong = byLong
	return nil
}
