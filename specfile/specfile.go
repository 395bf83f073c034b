// This file is part of go-getopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package specfile - loads option specifications from declarative YAML or
// TOML documents.
//
// A document carries a single `options` list, for example:
//
//	options:
//	  - short: v
//	    long: verbose
//	    description: increase verbosity
//	  - long: output
//	    mode: required
//	    default: "-"
package specfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ulrichsg/go-getopt/option"
)

type entry struct {
	Short       string  `yaml:"short" toml:"short"`
	Long        string  `yaml:"long" toml:"long"`
	Mode        string  `yaml:"mode" toml:"mode"`
	Description string  `yaml:"description" toml:"description"`
	Default     *string `yaml:"default" toml:"default"`
}

type document struct {
	Options []entry `yaml:"options" toml:"options"`
}

func parseMode(mode string) (option.Mode, error) {
	switch strings.ToLower(mode) {
	case "", "none":
		return option.NoArgument, nil
	case "required":
		return option.RequiredArgument, nil
	case "optional":
		return option.OptionalArgument, nil
	}
	return option.NoArgument, fmt.Errorf("invalid mode '%s', expected none, required or optional", mode)
}

func compile(doc document) ([]*option.Option, error) {
	if len(doc.Options) == 0 {
		return nil, fmt.Errorf("specification document has no options")
	}
	out := []*option.Option{}
	for i, e := range doc.Options {
		if e.Short == "" && e.Long == "" {
			return nil, fmt.Errorf("option %d has neither a short nor a long name", i)
		}
		mode, err := parseMode(e.Mode)
		if err != nil {
			return nil, fmt.Errorf("option %d: %s", i, err)
		}
		opt := option.New(e.Short, e.Long, mode)
		opt.SetDescription(e.Description)
		if e.Default != nil {
			opt.SetDefault(*e.Default)
		}
		out = append(out, opt)
	}
	return out, nil
}

// DecodeYAML - compiles a YAML specification document.
func DecodeYAML(data []byte) ([]*option.Option, error) {
	var doc document
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}
	return compile(doc)
}

// DecodeTOML - compiles a TOML specification document.
func DecodeTOML(data []byte) ([]*option.Option, error) {
	var doc document
	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}
	return compile(doc)
}

// Load - reads a specification document from disk, dispatching on the file
// extension: .yaml/.yml or .toml.
func Load(path string) ([]*option.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	}
	return nil, fmt.Errorf("unsupported specification file extension '%s'", filepath.Ext(path))
}
