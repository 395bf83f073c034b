// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		option   *Option
		expected string
	}{
		{"long wins", New("a", "alpha", NoArgument), "alpha"},
		{"short only", New("a", "", NoArgument), "a"},
		{"long only", New("", "alpha", NoArgument), "alpha"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.option.Name(); got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name     string
		option   *Option
		expected []string
	}{
		{"both", New("a", "alpha", NoArgument), []string{"a", "alpha"}},
		{"short only", New("a", "", NoArgument), []string{"a"}},
		{"long only", New("", "alpha", NoArgument), []string{"alpha"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.option.Keys()); diff != "" {
				t.Errorf("keys mismatch (-expected +got):\n%s", diff)
			}
		})
	}
}

func TestEqualNamesAndConflicts(t *testing.T) {
	tests := []struct {
		name      string
		a, b      *Option
		duplicate bool
		conflict  bool
	}{
		{"identical", New("a", "alpha", NoArgument), New("a", "alpha", RequiredArgument), true, false},
		{"same short different long", New("a", "alpha", NoArgument), New("a", "beta", NoArgument), false, true},
		{"same long different short", New("a", "alpha", NoArgument), New("b", "alpha", NoArgument), false, true},
		{"short vs short and long", New("a", "", NoArgument), New("a", "alpha", NoArgument), false, true},
		{"long vs short and long", New("", "alpha", NoArgument), New("a", "alpha", NoArgument), false, true},
		{"independent shorts", New("a", "", NoArgument), New("b", "", NoArgument), false, false},
		{"independent longs", New("", "alpha", NoArgument), New("", "beta", NoArgument), false, false},
		{"fully distinct", New("a", "alpha", NoArgument), New("b", "beta", NoArgument), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.EqualNames(tt.b); got != tt.duplicate {
				t.Errorf("EqualNames = %v, expected %v", got, tt.duplicate)
			}
			if got := tt.b.EqualNames(tt.a); got != tt.duplicate {
				t.Errorf("EqualNames reversed = %v, expected %v", got, tt.duplicate)
			}
			if got := tt.a.ConflictsWith(tt.b); got != tt.conflict {
				t.Errorf("ConflictsWith = %v, expected %v", got, tt.conflict)
			}
			if got := tt.b.ConflictsWith(tt.a); got != tt.conflict {
				t.Errorf("ConflictsWith reversed = %v, expected %v", got, tt.conflict)
			}
		})
	}
}

func TestSetters(t *testing.T) {
	opt := New("a", "alpha", RequiredArgument).SetDescription("text").SetDefault("")
	if opt.Description != "text" {
		t.Errorf("description not set: %q", opt.Description)
	}
	if !opt.HasDefault || opt.Default != "" {
		t.Errorf("empty string default not tracked: %v %q", opt.HasDefault, opt.Default)
	}
}

func TestSort(t *testing.T) {
	list := []*Option{
		New("", "charlie", NoArgument),
		New("b", "", NoArgument),
		New("a", "alpha", NoArgument),
	}
	Sort(list)
	expected := []string{"alpha", "b", "charlie"}
	for i, opt := range list {
		if opt.Name() != expected[i] {
			t.Errorf("position %d: got %q, expected %q", i, opt.Name(), expected[i])
		}
	}
}
