// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package specbase provides specification naming knowledge shared by all
// language backends.
package specbase

// Specification names known to the loader.
const (
	SpecGL  = "gl"
	SpecEGL = "egl"
	SpecGLX = "glx"
	SpecWGL = "wgl"
	SpecVK  = "vk"
)

// knownSpecs is the set of all recognized specification names.
var knownSpecs = map[string]bool{
	SpecGL:  true,
	SpecEGL: true,
	SpecGLX: true,
	SpecWGL: true,
	SpecVK:  true,
}

// IsKnownSpec reports whether name is a recognized specification name.
func IsKnownSpec(name string) bool {
	return knownSpecs[name]
}
