// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Template pairs a template source with the file it renders to.
type Template struct {
	// Source is the template name known to the templating engine.
	Source string

	// Output is the path of the generated file, relative to the output directory.
	Output string
}

// Single returns a template list with one template rendered to a file of
// the same name.
func Single(name string) []Template {
	return []Template{{Source: name, Output: name}}
}
