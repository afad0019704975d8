// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package specbase

import "strings"

// StripPrefix removes the specification prefix from name.
//
// Both spellings used by the specifications are handled, case-insensitively:
// constants and types ("GL_TEXTURE_2D" -> "TEXTURE_2D") and commands
// ("glClear" -> "Clear"). The name is returned unchanged when the prefix is
// absent or when stripping would leave an empty name or one starting with a
// digit ("GL_2D" stays "GL_2D").
func StripPrefix(name, spec string) string {
	if spec == "" || len(name) <= len(spec) {
		return name
	}
	if !strings.EqualFold(name[:len(spec)], spec) {
		return name
	}

	rest := name[len(spec):]
	if rest[0] == '_' {
		rest = rest[1:]
	}
	if !validStart(rest) {
		return name
	}
	return rest
}

func validStart(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
