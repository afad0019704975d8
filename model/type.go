// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Type is a parsed C type as written in the specification.
//
// Only the shape backends care about is kept:
//   - Name: the base type with qualifiers removed ("GLchar", "unsigned int")
//   - Const: the pointee (or the value, without pointers) is const
//   - Pointer: number of pointer levels
//   - Array: fixed array length, 0 for none
type Type struct {
	Name    string
	Const   bool
	Pointer int
	Array   int
}

// ParseType parses a C declarator type such as "const GLchar *",
// "void **", "GLfloat[4]" or "struct _cl_event *".
func ParseType(s string) Type {
	var t Type

	s = strings.TrimSpace(s)
	if open := strings.LastIndexByte(s, '['); open >= 0 && strings.HasSuffix(s, "]") {
		if n, err := strconv.Atoi(strings.TrimSpace(s[open+1 : len(s)-1])); err == nil {
			t.Array = n
			s = strings.TrimSpace(s[:open])
		}
	}

	t.Pointer = strings.Count(s, "*")

	// Qualifiers after the first '*' apply to the pointer itself.
	pointee := s
	if i := strings.IndexByte(s, '*'); i >= 0 {
		pointee = s[:i]
	}

	var base []string
	for _, tok := range strings.Fields(pointee) {
		switch tok {
		case "const":
			t.Const = true
		case "struct", "enum", "union":
		default:
			base = append(base, tok)
		}
	}
	t.Name = strings.Join(base, " ")
	return t
}

// IsVoid reports whether the base type is void.
func (t Type) IsVoid() bool {
	return t.Name == "void" || t.Name == "GLvoid"
}

// String renders t back into C declarator form.
func (t Type) String() string {
	var b strings.Builder
	if t.Const {
		b.WriteString("const ")
	}
	b.WriteString(t.Name)
	if t.Pointer > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Repeat("*", t.Pointer))
	}
	if t.Array > 0 {
		fmt.Fprintf(&b, "[%d]", t.Array)
	}
	return b.String()
}

// MarshalJSON encodes t as its C declarator string.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a C declarator string.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal type: %w", err)
	}
	*t = ParseType(s)
	return nil
}
