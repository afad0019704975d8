// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output directory.
	OutputDir string

	// Options contains backend-specific options.
	Options map[string]string
}

// Option returns a backend-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// BoolOption returns a boolean option with default.
func (c Config) BoolOption(key string, defaultValue bool) (bool, error) {
	v, ok := c.Options[key]
	if !ok {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.WithHintf(
			errors.Wrapf(err, "option %q", key),
			"use true or false")
	}
	return b, nil
}

// IntOption returns an integer option with default.
func (c Config) IntOption(key string, defaultValue int) (int, error) {
	v, ok := c.Options[key]
	if !ok {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "option %q", key)
	}
	return n, nil
}
