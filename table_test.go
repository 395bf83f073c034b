// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ulrichsg/go-getopt/option"
)

func tableNames(t *Table) []string {
	names := []string{}
	for _, opt := range t.Options() {
		names = append(names, opt.Name())
	}
	return names
}

func TestMergeConflict(t *testing.T) {
	table := NewTable()
	err := table.Merge([]*option.Option{option.New("a", "alpha", option.NoArgument)}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = table.Merge([]*option.Option{option.New("a", "beta", option.NoArgument)}, Strict)
	if err == nil {
		t.Fatal("expected conflict error, got none")
	}
	if !errors.Is(err, ErrorConflictingOption) {
		t.Errorf("wrong error kind: %s", err)
	}
	// failed merge leaves the table untouched
	if diff := cmp.Diff([]string{"alpha"}, tableNames(table)); diff != "" {
		t.Errorf("table mismatch after failed merge (-expected +got):\n%s", diff)
	}
}

func TestMergePermissiveDropsConflict(t *testing.T) {
	table := NewTable()
	err := table.Merge([]*option.Option{option.New("a", "alpha", option.NoArgument)}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = table.Merge([]*option.Option{option.New("a", "beta", option.NoArgument)}, Permissive)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"alpha"}, tableNames(table)); diff != "" {
		t.Errorf("table mismatch (-expected +got):\n%s", diff)
	}
	if _, ok := table.LookupLong("beta"); ok {
		t.Errorf("dropped option still resolvable")
	}
}

func TestMergeDeduplicates(t *testing.T) {
	table := NewTable()
	err := table.Merge([]*option.Option{
		option.New("a", "alpha", option.NoArgument),
		option.New("a", "alpha", option.NoArgument),
	}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = table.Merge([]*option.Option{option.New("a", "alpha", option.NoArgument)}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected one option, got %d", table.Len())
	}
}

func TestMergeKeepsFirstSeenOrder(t *testing.T) {
	table := NewTable()
	err := table.Merge([]*option.Option{
		option.New("c", "", option.NoArgument),
		option.New("a", "", option.NoArgument),
	}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = table.Merge([]*option.Option{
		option.New("b", "", option.NoArgument),
		option.New("c", "", option.NoArgument), // duplicate, dropped
	}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, tableNames(table)); diff != "" {
		t.Errorf("order mismatch (-expected +got):\n%s", diff)
	}
}

func TestMergeIndependentOptions(t *testing.T) {
	// Two short-only options with different letters share nothing, merging
	// them is neither a duplicate nor a conflict.
	table := NewTable()
	err := table.Merge([]*option.Option{
		option.New("a", "", option.NoArgument),
		option.New("b", "", option.NoArgument),
		option.New("", "alpha", option.NoArgument),
		option.New("", "beta", option.NoArgument),
	}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if table.Len() != 4 {
		t.Errorf("expected four options, got %d", table.Len())
	}
}

func TestLookup(t *testing.T) {
	table := NewTable()
	alpha := option.New("a", "alpha", option.NoArgument)
	err := table.Merge([]*option.Option{alpha}, Strict)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if opt, ok := table.LookupShort("a"); !ok || opt != alpha {
		t.Errorf("short lookup failed")
	}
	if opt, ok := table.LookupLong("alpha"); !ok || opt != alpha {
		t.Errorf("long lookup failed")
	}
	if _, ok := table.LookupShort("x"); ok {
		t.Errorf("lookup of unknown short succeeded")
	}
	if _, ok := table.LookupLong("a"); ok {
		t.Errorf("short name resolvable as long name")
	}
}
