// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/glbind/model"
	"github.com/cockroachdb/errors"
)

// TypeMapping maps specification primitive types to C# types.
// Names missing from the table are emitted unchanged.
var TypeMapping = map[string]string{
	"void":     "void",
	"char":     "char",
	"uchar":    "uchar",
	"float":    "float",
	"double":   "double",
	"int":      "int",
	"long":     "long",
	"int8_t":   "sbyte",
	"uint8_t":  "byte",
	"int16_t":  "short",
	"uint16_t": "ushort",
	"int32_t":  "int",
	"int64_t":  "long",
	"uint32_t": "uint",
	"uint64_t": "ulong",

	"GLenum":      "GLEnum",
	"GLbitfield":  "GLEnum",
	"GLboolean":   "bool",
	"GLvoid":      "void",
	"GLbyte":      "sbyte",
	"GLchar":      "sbyte",
	"GLcharARB":   "sbyte",
	"GLubyte":     "byte",
	"GLshort":     "short",
	"GLushort":    "ushort",
	"GLhalf":      "ushort",
	"GLhalfARB":   "ushort",
	"GLhalfNV":    "ushort",
	"GLhandleARB": "ushort",
	"GLint":       "int",
	"GLclampx":    "int",
	"GLsizei":     "int",
	"GLfixed":     "int",
	"GLuint":      "uint",
	"GLfloat":     "float",
	"GLclampf":    "float",
	"GLdouble":    "double",
	"GLclampd":    "double",
	"GLint64":     "long",
	"GLint64EXT":  "long",
	"GLuint64":    "ulong",
	"GLuint64EXT": "ulong",

	// Pointer sized handles
	"GLeglClientBufferEXT": "IntPtr",
	"GLeglImageOES":        "IntPtr",
	"GLintptr":             "IntPtr",
	"GLintptrARB":          "IntPtr",
	"GLvdpauSurfaceNV":     "IntPtr",
	"GLsizeiptr":           "IntPtr",
	"GLsizeiptrARB":        "IntPtr",
	"GLsync":               "IntPtr",

	// Callbacks, declared as delegates by the template
	"GLDEBUGPROC":    "DebugProc",
	"GLDEBUGPROCARB": "DebugProc",
	"GLDEBUGPROCKHR": "DebugProc",
	"GLDEBUGPROCAMD": "DebugProcAMD",
	"GLVULKANPROCNV": "VulkanDebugProcNV",
}

// keywordMapping escapes parameter names that are C# keywords.
var keywordMapping = map[string]string{
	"in":     "@in",
	"out":    "@out",
	"params": "@params",
	"string": "@string",
	"ref":    "@ref",
}

// Identifier returns name escaped for use as a C# identifier.
func Identifier(name string) string {
	if escaped, ok := keywordMapping[name]; ok {
		return escaped
	}
	return name
}

// MapType converts a specification type to its C# equivalent.
//
//   - void without pointers stays void
//   - pointers to void become IntPtr
//   - const pointers get one "*" per level, except for IntPtr
//   - other pointers are write-through and become "out T"
//   - fixed arrays become "[T; N]"
func MapType(t model.Type) string {
	if t.Pointer == 0 && t.Name == "void" {
		return "void"
	}

	typ, ok := TypeMapping[t.Name]
	if !ok {
		typ = t.Name
	}

	var prefix, suffix string
	if t.Pointer > 0 {
		switch {
		case typ == "void":
			typ = "IntPtr"
		case t.Const:
			if typ != "IntPtr" {
				suffix = strings.Repeat("*", t.Pointer)
			}
		default:
			prefix = "out "
		}
	}

	if t.Array > 0 {
		typ = fmt.Sprintf("[%s; %d]", typ, t.Array)
	}

	return strings.TrimSpace(prefix + typ + suffix)
}

// ParamName returns the call-site form of a parameter name: escaped, and
// marked "out" when the parameter is written through.
func ParamName(t model.Type, name string) string {
	if t.Pointer > 0 && !t.IsVoid() && !t.Const {
		return "out " + Identifier(name)
	}
	return Identifier(name)
}

// ParamMode selects what Params renders for each parameter.
type ParamMode string

const (
	// ParamNames renders call-site names ("out data").
	ParamNames ParamMode = "names"

	// ParamTypes renders C# types only.
	ParamTypes ParamMode = "types"

	// ParamFull renders "type name" pairs for declarations.
	ParamFull ParamMode = "full"
)

// Params joins the parameters of c according to mode.
func Params(c *model.Command, mode ParamMode) (string, error) {
	var format func(model.Param) string
	switch mode {
	case ParamNames:
		format = func(p model.Param) string { return ParamName(p.Type, p.Name) }
	case ParamTypes:
		format = func(p model.Param) string { return MapType(p.Type) }
	case ParamFull:
		format = func(p model.Param) string { return MapType(p.Type) + " " + Identifier(p.Name) }
	default:
		return "", errors.WithHint(
			errors.Wrapf(ErrInvalidMode, "mode %q", string(mode)),
			"use names, types or full")
	}

	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = format(p)
	}
	return strings.Join(parts, ", "), nil
}
