// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"github.com/albertocavalcante/glbind/generator"
	"github.com/cockroachdb/errors"
)

// Option keys read from generator.Config.Options.
const (
	// OptionAlias adds every extension providing aliases for the selected
	// feature set when extensions are selected explicitly.
	OptionAlias = "alias"

	// OptionMaxDepth bounds alias and cross-reference chains.
	OptionMaxDepth = "max-depth"
)

// Config holds configuration for C# generation.
type Config struct {
	// Alias enables alias extension discovery during selection.
	Alias bool

	// MaxDepth bounds enum reference chains.
	MaxDepth int
}

// ParseConfig reads the C# options from cfg.
func ParseConfig(cfg generator.Config) (Config, error) {
	alias, err := cfg.BoolOption(OptionAlias, false)
	if err != nil {
		return Config{}, err
	}

	depth, err := cfg.IntOption(OptionMaxDepth, DefaultMaxDepth)
	if err != nil {
		return Config{}, err
	}
	if depth <= 0 {
		return Config{}, errors.Newf("option %q must be positive, got %d", OptionMaxDepth, depth)
	}

	return Config{Alias: alias, MaxDepth: depth}, nil
}
