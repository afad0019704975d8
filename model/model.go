// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the specification data consumed by language backends.
//
// A Specification (gl, egl, glx, wgl, ...) is parsed and narrowed into a
// FeatureSet by an external loader: the enums, commands and types selected
// for one API, version, profile and extension list. Backends only read these
// values; nothing in this package mutates a FeatureSet after NewFeatureSet.
package model

import (
	"encoding/json"
	"fmt"
)

// Specification identifies the API family a feature set was selected from.
type Specification struct {
	// Name is the lower-case specification name (e.g., "gl", "egl").
	// It doubles as the identifier prefix stripped by backends.
	Name string `json:"name"`
}

// Selection is the API/version/profile/extension combination a feature set
// is built for.
type Selection struct {
	// API is the API name within the specification (e.g., "gl", "gles2").
	API string `json:"api"`

	// Version is the requested version (e.g., "4.6").
	Version string `json:"version,omitempty"`

	// Profile is "core" or "compatibility" where the API has profiles.
	Profile string `json:"profile,omitempty"`

	// Extensions lists the requested extensions.
	// Nil means every extension; an empty slice means none.
	Extensions []string `json:"extensions,omitempty"`
}

// Enum is a named constant of the specification.
//
// Optional string fields use the empty string for "absent".
type Enum struct {
	// Name is unique within a specification (e.g., "GL_TEXTURE_2D").
	Name string `json:"name"`

	// Value is the raw literal. It may name another enum (a cross-reference)
	// or be a composite expression such as "EGL_CAST(EGLint,-1)".
	Value string `json:"value,omitempty"`

	// Alias names the enum this one is a synonym of.
	Alias string `json:"alias,omitempty"`

	// Type is the explicit type tag from the specification (e.g., "ull").
	Type string `json:"type,omitempty"`

	// ParentType names the grouping type the constant is a member of.
	ParentType string `json:"parent_type,omitempty"`
}

// Param is a single command parameter.
type Param struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Command is a specification function.
type Command struct {
	// Name is the full command name (e.g., "glClear").
	Name string `json:"name"`

	// Alias names the command this one is equivalent to.
	Alias string `json:"alias,omitempty"`

	// Proto is the return type.
	Proto Type `json:"proto"`

	// Params lists the parameters in declaration order.
	Params []Param `json:"params,omitempty"`
}

// FeatureSet is a read-only view of the enums, commands and types selected
// for one generation run.
type FeatureSet struct {
	Selection

	Enums    []*Enum    `json:"enums,omitempty"`
	Commands []*Command `json:"commands,omitempty"`
	Types    []string   `json:"types,omitempty"`

	enums map[string]*Enum
}

// NewFeatureSet builds a feature set and indexes its enums by name.
// Later duplicates of a name win, matching the loader's override order.
func NewFeatureSet(sel Selection, enums []*Enum, commands []*Command, types []string) *FeatureSet {
	fs := &FeatureSet{
		Selection: sel,
		Enums:     enums,
		Commands:  commands,
		Types:     types,
	}
	fs.index()
	return fs
}

func (fs *FeatureSet) index() {
	fs.enums = make(map[string]*Enum, len(fs.Enums))
	for _, e := range fs.Enums {
		fs.enums[e.Name] = e
	}
}

// UnmarshalJSON decodes a feature set and indexes its enums.
func (fs *FeatureSet) UnmarshalJSON(data []byte) error {
	type plain FeatureSet
	if err := json.Unmarshal(data, (*plain)(fs)); err != nil {
		return fmt.Errorf("unmarshal feature set: %w", err)
	}
	fs.index()
	return nil
}

// FindEnum returns the enum with the given name.
func (fs *FeatureSet) FindEnum(name string) (*Enum, bool) {
	if fs == nil || name == "" {
		return nil, false
	}
	if fs.enums == nil {
		// Built as a literal: fall back to a scan rather than mutating fs.
		for i := len(fs.Enums) - 1; i >= 0; i-- {
			if fs.Enums[i].Name == name {
				return fs.Enums[i], true
			}
		}
		return nil, false
	}
	e, ok := fs.enums[name]
	return e, ok
}
