// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for glbind backends.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Archive file names understood by ParseCase.
const (
	InputFile    = "input.json"
	TemplateFile = "template.tmpl"
	ErrorFile    = "error"
	wantPrefix   = "want/"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Path is the archive the case was loaded from, if any.
	Path string

	// Description is the first comment block before any files.
	Description string

	// Options contains backend options parsed from an
	// "Options: key=value, key=value" line in the description.
	Options map[string]string

	// Input is the contents of "input.json".
	Input []byte

	// Template is the contents of "template.tmpl".
	Template []byte

	// Want maps relative paths (e.g., "GL.cs") to expected content.
	Want map[string][]byte

	// WantErr is a substring the generation error must contain.
	// Mutually exclusive with Want.
	WantErr string

	archive *txtar.Archive
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.json" file with the specification and feature set
//   - A "template.tmpl" file rendered with the backend hooks
//   - Either "want/<filename>" files with expected output, or an "error"
//     file holding a substring of the expected error
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Options:     make(map[string]string),
		Want:        make(map[string][]byte),
		archive:     ar,
	}

	if err := c.parseOptions(); err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case f.Name == TemplateFile:
			c.Template = f.Data
		case f.Name == ErrorFile:
			c.WantErr = strings.TrimSpace(string(f.Data))
		case strings.HasPrefix(f.Name, wantPrefix):
			c.Want[strings.TrimPrefix(f.Name, wantPrefix)] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}
	if c.Template == nil {
		return nil, fmt.Errorf("missing %s in archive", TemplateFile)
	}
	if len(c.Want) == 0 && c.WantErr == "" {
		return nil, fmt.Errorf("missing want/* or %s in archive", ErrorFile)
	}
	if len(c.Want) > 0 && c.WantErr != "" {
		return nil, fmt.Errorf("archive has both want/* and %s", ErrorFile)
	}

	return c, nil
}

// parseOptions extracts options from the "Options: ..." line in the description.
func (c *Case) parseOptions() error {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		optStr, ok := strings.CutPrefix(line, "Options:")
		if !ok {
			continue
		}
		for _, opt := range strings.Split(optStr, ",") {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			key, value, ok := strings.Cut(opt, "=")
			if !ok {
				return fmt.Errorf("option %q: want key=value", opt)
			}
			c.Options[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		break
	}
	return nil
}

// GenerateFunc generates output for a case.
// It returns a map of filename to content.
type GenerateFunc func(c *Case) (map[string][]byte, error)

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c)
	if c.WantErr != "" {
		if err == nil {
			t.Fatalf("expected error containing %q, got none", c.WantErr)
		}
		if !strings.Contains(err.Error(), c.WantErr) {
			t.Fatalf("error %q does not contain %q", err, c.WantErr)
		}
		return
	}
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	// Compare contents
	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// Update rewrites the case's archive on disk with got as the expected output.
// Used for golden file updates with -update flag.
func (c *Case) Update(got map[string][]byte) error {
	if c.Path == "" {
		return fmt.Errorf("case %q was not loaded from a file", c.Name)
	}
	return os.WriteFile(c.Path, txtar.Format(UpdateArchive(c.archive, got)), 0o644)
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	result := strings.Join(lines, "\n")
	return strings.TrimRight(result, "\n")
}

// UpdateArchive returns ar with its want/* files replaced by got.
// The comment, input and template are kept.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == InputFile || f.Name == TemplateFile {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		// Ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: wantPrefix + name,
			Data: content,
		})
	}

	return result
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		c.Path = file

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
