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

// TypeTag is the declared type of a generated constant.
type TypeTag string

// Type tags emitted for enum constants. An EGL_CAST value yields its cast
// type verbatim instead of one of these.
const (
	UnsignedInt32     TypeTag = "u32"
	UnsignedInt64     TypeTag = "u64"
	UnsignedIntNative TypeTag = "std::os::raw::c_uint"
	UnsignedChar      TypeTag = "std::os::raw::c_uchar"
	SignedIntNative   TypeTag = "std::os::raw::c_int"
	FloatNative       TypeTag = "std::os::raw::c_float"
	StringRef         TypeTag = "&str"
)

func (t TypeTag) String() string { return string(t) }

// DefaultMaxDepth bounds alias and cross-reference chains.
const DefaultMaxDepth = 16

// Resolver resolves the type and value of enum constants against a
// feature set, following alias and cross-reference chains.
//
// A Resolver only reads its feature set and is safe for concurrent use.
type Resolver struct {
	fs       *model.FeatureSet
	maxDepth int
}

// NewResolver returns a resolver over fs. A non-positive maxDepth selects
// DefaultMaxDepth.
func NewResolver(fs *model.FeatureSet, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Resolver{fs: fs, maxDepth: maxDepth}
}

// EnumType returns the type e is declared as.
func (r *Resolver) EnumType(e *model.Enum) (TypeTag, error) {
	e, member, err := r.chase(e)
	if err != nil {
		return "", err
	}
	if member != nil {
		// Members of a grouping type are all declared u32.
		return UnsignedInt32, nil
	}

	// Explicit types are left to the GLenum style aliases of the template,
	// except 64-bit constants.
	if e.Type != "" {
		if e.Type == "ull" {
			return UnsignedInt64, nil
		}
		return UnsignedIntNative, nil
	}

	v := e.Value
	switch {
	case strings.HasPrefix(v, "0x"):
		if hexDigits(v[2:]) > 8 {
			return UnsignedInt64, nil
		}
		return UnsignedIntNative, nil
	case e.Name == "GL_TRUE" || e.Name == "GL_FALSE":
		return UnsignedChar, nil
	case strings.HasPrefix(v, "-"):
		return SignedIntNative, nil
	case strings.HasSuffix(v, "f"):
		return FloatNative, nil
	case strings.HasPrefix(v, `"`):
		return StringRef, nil
	case strings.HasPrefix(v, "(("):
		return "", errors.Wrapf(ErrUnsupportedCast, "enum %s: %s", e.Name, v)
	case strings.HasPrefix(v, "EGL_CAST"):
		if typ, _, ok := eglCast(v); ok {
			return TypeTag(typ), nil
		}
	}
	return UnsignedIntNative, nil
}

// EnumValue returns the literal expression for the value of e.
func (r *Resolver) EnumValue(e *model.Enum) (string, error) {
	e, member, err := r.chase(e)
	if err != nil {
		return "", err
	}
	if member != nil {
		return fmt.Sprintf("%s::%s as u32", member.ParentType, member.Name), nil
	}

	v := e.Value
	switch {
	case strings.HasSuffix(v, `"`):
		return v[:len(v)-1] + `\0"`, nil
	case strings.HasPrefix(v, "(("):
		return "", errors.Wrapf(ErrUnsupportedCast, "enum %s: %s", e.Name, v)
	case strings.HasPrefix(v, "EGL_CAST"):
		if typ, val, ok := eglCast(v); ok {
			return val + " as " + typ, nil
		}
	}
	return cleanLiteral(v), nil
}

// chase follows aliases and cross-references starting at e. It returns the
// terminal enum carrying a literal value and, when the chain ends in a
// reference to a member of a grouping type, that member.
func (r *Resolver) chase(e *model.Enum) (terminal, member *model.Enum, err error) {
	start := e.Name
	seen := make(map[string]bool)

	for depth := 0; ; depth++ {
		if seen[e.Name] || depth > r.maxDepth {
			return nil, nil, errors.Wrapf(ErrCyclicReference, "enum %s: chain reaches %s", start, e.Name)
		}
		seen[e.Name] = true

		if e.Alias != "" && e.Value == "" {
			aliased, ok := r.fs.FindEnum(e.Alias)
			if !ok {
				return nil, nil, errors.Wrapf(ErrUnresolvedAlias, "enum %s: alias %s", e.Name, e.Alias)
			}
			e = aliased
			continue
		}

		if e.Value == "" {
			return nil, nil, errors.Wrapf(ErrMissingValue, "enum %s", e.Name)
		}

		ref, ok := r.fs.FindEnum(e.Value)
		switch {
		case !ok:
			return e, nil, nil
		case ref.ParentType != "":
			return e, ref, nil
		}
		e = ref
	}
}

// eglCast splits "EGL_CAST(type,value)" into its arguments.
func eglCast(v string) (typ, value string, ok bool) {
	inner, ok := strings.CutPrefix(v, "EGL_CAST(")
	if !ok {
		return "", "", false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return "", "", false
	}
	typ, value, ok = strings.Cut(inner, ",")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(typ), strings.TrimSpace(value), true
}
