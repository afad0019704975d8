// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp is the C# language backend.
//
// It renders a single GL.cs file. The templating engine calls back into the
// hooks returned by [Generator.Funcs]:
//   - feature: feature attribute for a feature or extension name
//   - enum_type, enum_value: declared type and literal of an enum constant
//   - type: C# type of a specification type
//   - params: parameter list of a command ("names", "types" or "full")
//   - identifier: keyword-safe identifier
//   - no_prefix: name without the specification prefix
package csharp

import (
	"context"
	"fmt"
	"slices"
	"text/template"

	"github.com/albertocavalcante/glbind/generator"
	"github.com/albertocavalcante/glbind/internal/specbase"
	"github.com/albertocavalcante/glbind/model"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Version is the backend version passed to templates.
const Version = "1.0.0"

// TemplateName is the single template rendered by this backend.
const TemplateName = "GL.cs"

// Generator implements [generator.Generator] for C#.
type Generator struct {
	log *zap.SugaredLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used during selection.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// NewGenerator creates a new C# generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "csharp",
		DisplayName:    "C#",
		Version:        Version,
		Description:    "Generate C# bindings from Khronos specifications",
		FileExtensions: []string{".cs"},
		URL:            "https://github.com/albertocavalcante/glbind",
	}
}

// Select loads the feature set for sel. With the alias option set and an
// explicit extension list, extensions providing aliases are added first.
func (g *Generator) Select(ctx context.Context, spec *model.Specification, sel model.Selection, cfg generator.Config, l generator.Loader) (*model.FeatureSet, error) {
	c, err := ParseConfig(cfg)
	if err != nil {
		return nil, err
	}

	if !specbase.IsKnownSpec(spec.Name) {
		g.log.Warnw("unknown specification", "spec", spec.Name)
	}

	if sel.Extensions != nil && c.Alias {
		requested := len(sel.Extensions)
		sel.Extensions = mergeExtensions(sel.Extensions, l.ExtensionsWithAliases(spec, sel))
		g.log.Debugw("added alias extensions",
			"api", sel.API,
			"requested", requested,
			"added", len(sel.Extensions)-requested)
	}

	fs, err := l.Load(ctx, spec, sel)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s %s feature set", spec.Name, sel.API)
	}

	g.log.Debugw("selected feature set",
		"api", fs.API,
		"version", fs.Version,
		"profile", fs.Profile,
		"enums", len(fs.Enums),
		"commands", len(fs.Commands))
	return fs, nil
}

// mergeExtensions returns the sorted union of a and b.
func mergeExtensions(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	slices.Sort(merged)
	return slices.Compact(merged)
}

// Templates returns the single GL.cs template.
func (g *Generator) Templates(_ *model.Specification, _ *model.FeatureSet, _ generator.Config) []generator.Template {
	return generator.Single(TemplateName)
}

// Funcs returns the formatting hooks bound to spec and fs.
func (g *Generator) Funcs(spec *model.Specification, fs *model.FeatureSet, cfg generator.Config) (template.FuncMap, error) {
	opts, err := ParseConfig(cfg)
	if err != nil {
		return nil, err
	}
	r := NewResolver(fs, opts.MaxDepth)

	return template.FuncMap{
		"feature": func(name string) string {
			return fmt.Sprintf(`feature = "%s"`, name)
		},
		"enum_type": func(e *model.Enum) (string, error) {
			tag, err := r.EnumType(e)
			return string(tag), err
		},
		"enum_value": r.EnumValue,
		"type":       MapType,
		"params": func(c *model.Command, mode ...string) (string, error) {
			m := ParamFull
			if len(mode) > 0 {
				m = ParamMode(mode[0])
			}
			return Params(c, m)
		},
		"identifier": Identifier,
		"no_prefix": func(name string) string {
			return specbase.StripPrefix(name, spec.Name)
		},
	}, nil
}

// Arguments returns the template arguments for fs.
func (g *Generator) Arguments(spec *model.Specification, fs *model.FeatureSet, _ generator.Config) map[string]any {
	return map[string]any{
		"spec":        spec,
		"feature_set": fs,
		"version":     Version,
		"aliases":     generator.CollectAliases(fs.Commands),
	}
}
