// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"testing"
	"text/template"

	"github.com/albertocavalcante/glbind/model"
)

// mockGenerator is a test implementation of Generator.
type mockGenerator struct {
	name string
}

func (m *mockGenerator) Metadata() Metadata {
	return Metadata{
		Name:           m.name,
		DisplayName:    "Mock",
		Version:        "1.0.0",
		Description:    "Mock backend for testing",
		FileExtensions: []string{".mock"},
	}
}

func (m *mockGenerator) Select(ctx context.Context, spec *model.Specification, sel model.Selection, _ Config, l Loader) (*model.FeatureSet, error) {
	return l.Load(ctx, spec, sel)
}

func (m *mockGenerator) Templates(_ *model.Specification, _ *model.FeatureSet, _ Config) []Template {
	return Single("test.mock")
}

func (m *mockGenerator) Funcs(_ *model.Specification, _ *model.FeatureSet, _ Config) (template.FuncMap, error) {
	return template.FuncMap{}, nil
}

func (m *mockGenerator) Arguments(_ *model.Specification, _ *model.FeatureSet, _ Config) map[string]any {
	return map[string]any{}
}

func TestRegistry(t *testing.T) {
	// Reset registry before and after test
	Reset()
	defer Reset()

	t.Run("Register and Get", func(t *testing.T) {
		gen := &mockGenerator{name: "test"}
		Register(gen)

		got, ok := Get("test")
		if !ok {
			t.Fatal("expected to find registered backend")
		}
		if got.Metadata().Name != "test" {
			t.Errorf("got name %q, want %q", got.Metadata().Name, "test")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Error("expected not to find nonexistent backend")
		}
	})

	t.Run("List", func(t *testing.T) {
		Reset()
		Register(&mockGenerator{name: "zebra"})
		Register(&mockGenerator{name: "alpha"})

		names := List()
		if len(names) != 2 {
			t.Fatalf("got %d backends, want 2", len(names))
		}
		// Should be sorted
		if names[0] != "alpha" || names[1] != "zebra" {
			t.Errorf("got %v, want [alpha zebra]", names)
		}
	})

	t.Run("All", func(t *testing.T) {
		Reset()
		Register(&mockGenerator{name: "two"})
		Register(&mockGenerator{name: "one"})

		all := All()
		if len(all) != 2 {
			t.Fatalf("got %d backends, want 2", len(all))
		}
		if all[0].Metadata().Name != "one" {
			t.Errorf("got first %q, want %q", all[0].Metadata().Name, "one")
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()
		Register(&mockGenerator{name: "dup"})

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(&mockGenerator{name: "dup"})
	})
}

func TestConfig_Option(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"namespace": "OpenGL",
		},
	}

	if got := cfg.Option("namespace", "default"); got != "OpenGL" {
		t.Errorf("got %q, want %q", got, "OpenGL")
	}

	if got := cfg.Option("missing", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestConfig_BoolOption(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"alias": "true",
			"bad":   "sometimes",
		},
	}

	if got, err := cfg.BoolOption("alias", false); err != nil || !got {
		t.Errorf("BoolOption(alias) = %v, %v; want true, nil", got, err)
	}
	if got, err := cfg.BoolOption("missing", true); err != nil || !got {
		t.Errorf("BoolOption(missing) = %v, %v; want default true", got, err)
	}
	if _, err := cfg.BoolOption("bad", false); err == nil {
		t.Error("expected error for malformed boolean")
	}

	var empty Config
	if got, err := empty.BoolOption("alias", false); err != nil || got {
		t.Errorf("nil options: BoolOption = %v, %v", got, err)
	}
}

func TestConfig_IntOption(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"max-depth": "8",
			"bad":       "eight",
		},
	}

	if got, err := cfg.IntOption("max-depth", 16); err != nil || got != 8 {
		t.Errorf("IntOption(max-depth) = %v, %v; want 8, nil", got, err)
	}
	if got, err := cfg.IntOption("missing", 16); err != nil || got != 16 {
		t.Errorf("IntOption(missing) = %v, %v; want 16, nil", got, err)
	}
	if _, err := cfg.IntOption("bad", 16); err == nil {
		t.Error("expected error for malformed integer")
	}
}

func TestSingle(t *testing.T) {
	got := Single("GL.cs")

	if len(got) != 1 {
		t.Fatalf("got %d templates, want 1", len(got))
	}
	if got[0] != (Template{Source: "GL.cs", Output: "GL.cs"}) {
		t.Errorf("got %+v", got[0])
	}
}
