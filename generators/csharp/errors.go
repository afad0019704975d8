// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package csharp

import "github.com/cockroachdb/errors"

// Errors returned by the formatting hooks. They are always wrapped with the
// offending enum or mode; test with errors.Is.
var (
	// ErrUnresolvedAlias means an enum aliases a name missing from the feature set.
	ErrUnresolvedAlias = errors.New("unresolved enum alias")

	// ErrUnsupportedCast means an enum value is a C cast such as "((EGLint)-1)".
	ErrUnsupportedCast = errors.New("unsupported cast expression")

	// ErrCyclicReference means an alias or value chain loops or is too deep.
	ErrCyclicReference = errors.New("cyclic enum reference")

	// ErrMissingValue means an enum has neither a value nor an alias.
	ErrMissingValue = errors.New("enum has no value")

	// ErrInvalidMode means a parameter formatting mode is not one of
	// names, types or full.
	ErrInvalidMode = errors.New("invalid parameter mode")
)
