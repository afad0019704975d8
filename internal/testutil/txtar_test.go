// SPDX-License-Identifier: MIT

package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

const sampleArchive = `Sample case.

Options: alias=true, max-depth=4

-- input.json --
{}
-- template.tmpl --
{{ .version }}
-- want/GL.cs --
1.0.0
`

func TestParseCase(t *testing.T) {
	c, err := ParseCase("sample", txtar.Parse([]byte(sampleArchive)))
	if err != nil {
		t.Fatalf("ParseCase: %v", err)
	}

	wantOptions := map[string]string{"alias": "true", "max-depth": "4"}
	if diff := cmp.Diff(wantOptions, c.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if got := string(c.Template); got != "{{ .version }}\n" {
		t.Errorf("template = %q", got)
	}
	if got := string(c.Want["GL.cs"]); got != "1.0.0\n" {
		t.Errorf("want GL.cs = %q", got)
	}
	if c.WantErr != "" {
		t.Errorf("WantErr = %q, want empty", c.WantErr)
	}
}

func TestParseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		wantErr string
	}{
		{
			name:    "missing input",
			archive: "-- template.tmpl --\nx\n-- want/GL.cs --\nx\n",
			wantErr: "missing input.json",
		},
		{
			name:    "missing template",
			archive: "-- input.json --\n{}\n-- want/GL.cs --\nx\n",
			wantErr: "missing template.tmpl",
		},
		{
			name:    "no expectation",
			archive: "-- input.json --\n{}\n-- template.tmpl --\nx\n",
			wantErr: "missing want/*",
		},
		{
			name:    "both expectations",
			archive: "-- input.json --\n{}\n-- template.tmpl --\nx\n-- want/GL.cs --\nx\n-- error --\nboom\n",
			wantErr: "both want/*",
		},
		{
			name:    "unexpected file",
			archive: "-- input.json --\n{}\n-- notes.txt --\nx\n",
			wantErr: "unexpected file",
		},
		{
			name:    "bad option",
			archive: "Options: alias\n-- input.json --\n{}\n",
			wantErr: "want key=value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCase(tt.name, txtar.Parse([]byte(tt.archive)))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseCase error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseCase_ErrorFile(t *testing.T) {
	ar := txtar.Parse([]byte("-- input.json --\n{}\n-- template.tmpl --\nx\n-- error --\n  cyclic enum reference\n"))

	c, err := ParseCase("err", ar)
	if err != nil {
		t.Fatalf("ParseCase: %v", err)
	}
	if c.WantErr != "cyclic enum reference" {
		t.Errorf("WantErr = %q", c.WantErr)
	}
}

func TestUpdateArchive(t *testing.T) {
	ar := txtar.Parse([]byte(sampleArchive))

	got := UpdateArchive(ar, map[string][]byte{
		"b.cs":  []byte("b"),
		"GL.cs": []byte("2.0.0\n"),
	})

	var names []string
	for _, f := range got.Files {
		names = append(names, f.Name)
	}
	want := []string{InputFile, TemplateFile, "want/GL.cs", "want/b.cs"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if string(got.Comment) != string(ar.Comment) {
		t.Errorf("comment = %q, want %q", got.Comment, ar.Comment)
	}
	if data := string(got.Files[3].Data); data != "b\n" {
		t.Errorf("want/b.cs = %q, want trailing newline added", data)
	}
}

func TestNormalizeContent(t *testing.T) {
	got := normalizeContent([]byte("a  \r\nb\t\n\n\n"))
	if got != "a\nb" {
		t.Errorf("normalizeContent = %q", got)
	}
}

func TestLoadTestCases_Update(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txtar")
	if err := os.WriteFile(path, []byte(sampleArchive), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := LoadTestCases(t, dir)
	if len(cases) != 1 {
		t.Fatalf("got %d cases, want 1", len(cases))
	}
	c := cases[0]
	if c.Name != "sample" || c.Path != path {
		t.Errorf("case = %q at %q", c.Name, c.Path)
	}

	if err := c.Update(map[string][]byte{"GL.cs": []byte("2.0.0\n")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded := LoadTestCases(t, dir)[0]
	if got := string(reloaded.Want["GL.cs"]); got != "2.0.0\n" {
		t.Errorf("updated want GL.cs = %q", got)
	}
	if diff := cmp.Diff(c.Options, reloaded.Options); diff != "" {
		t.Errorf("options lost on update (-want +got):\n%s", diff)
	}
}

func TestRun_WantErr(t *testing.T) {
	c := &Case{Name: "err", WantErr: "boom"}
	c.Run(t, func(*Case) (map[string][]byte, error) {
		return nil, errors.New("render: boom")
	})
}
