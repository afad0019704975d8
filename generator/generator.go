// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for language backends.
//
// A backend never parses a specification or renders a template itself. The
// loader narrows a specification into a [model.FeatureSet] and the templating
// engine renders the backend's templates, calling back into the formatting
// hooks returned by [Generator.Funcs].
package generator

import (
	"context"
	"text/template"

	"github.com/albertocavalcante/glbind/model"
)

// Generator is the interface that all language backends must implement.
type Generator interface {
	// Metadata returns information about this backend.
	Metadata() Metadata

	// Select builds the feature set to generate for sel, delegating the
	// actual specification walk to the loader.
	Select(ctx context.Context, spec *model.Specification, sel model.Selection, cfg Config, l Loader) (*model.FeatureSet, error)

	// Templates lists the templates to render and the files they produce.
	Templates(spec *model.Specification, fs *model.FeatureSet, cfg Config) []Template

	// Funcs returns the formatting hooks bound to spec and fs.
	Funcs(spec *model.Specification, fs *model.FeatureSet, cfg Config) (template.FuncMap, error)

	// Arguments returns the template arguments for fs.
	Arguments(spec *model.Specification, fs *model.FeatureSet, cfg Config) map[string]any
}

// Loader is the specification loader backends delegate to.
type Loader interface {
	// Load resolves sel against spec into a feature set.
	Load(ctx context.Context, spec *model.Specification, sel model.Selection) (*model.FeatureSet, error)

	// ExtensionsWithAliases lists the extensions that provide aliases for
	// commands of the feature set sel would produce.
	ExtensionsWithAliases(spec *model.Specification, sel model.Selection) []string
}

// Metadata describes a backend.
type Metadata struct {
	// Name is the short identifier (e.g., "csharp", "rust").
	Name string

	// DisplayName is the human readable language name (e.g., "C#").
	DisplayName string

	// Version is the backend version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".cs"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
