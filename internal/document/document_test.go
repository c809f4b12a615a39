package document

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nibzard/todosort/internal/todo"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		text string
		reps []todo.Replacement
		want string
	}{
		{
			name: "single span",
			text: "# T\n- [x] b\n- [ ] a\n",
			reps: []todo.Replacement{{Text: "- [ ] a\n- [x] b\n", StartLine: 1, EndLine: 3}},
			want: "# T\n- [ ] a\n- [x] b\n",
		},
		{
			name: "two spans",
			text: "- [x] b\n- [ ] a\n\n- [x] d\n- [ ] c\n",
			reps: []todo.Replacement{
				{Text: "- [ ] a\n- [x] b\n", StartLine: 0, EndLine: 2},
				{Text: "- [ ] c\n- [x] d\n", StartLine: 3, EndLine: 5},
			},
			want: "- [ ] a\n- [x] b\n\n- [ ] c\n- [x] d\n",
		},
		{
			name: "no trailing newline",
			text: "- [x] b\n- [ ] a",
			reps: []todo.Replacement{{Text: "- [ ] a\n- [x] b\n", StartLine: 0, EndLine: 2}},
			want: "- [ ] a\n- [x] b",
		},
		{
			name: "nothing to apply",
			text: "plain\n",
			reps: nil,
			want: "plain\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New("test.md", tt.text).Apply(tt.reps)
			if err != nil {
				t.Fatalf("Apply error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply:\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestApplyRejectsBadRanges(t *testing.T) {
	doc := New("test.md", "a\nb\nc\n")
	tests := []struct {
		name string
		reps []todo.Replacement
	}{
		{"past end", []todo.Replacement{{Text: "x\n", StartLine: 2, EndLine: 9}}},
		{"inverted", []todo.Replacement{{Text: "x\n", StartLine: 2, EndLine: 1}}},
		{"overlap", []todo.Replacement{
			{Text: "x\n", StartLine: 0, EndLine: 2},
			{Text: "y\n", StartLine: 1, EndLine: 2},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doc.Apply(tt.reps)
			if !errors.Is(err, ErrBadRange) {
				t.Errorf("expected ErrBadRange, got %v", err)
			}
		})
	}
}

func TestSortCRLF(t *testing.T) {
	doc := New("win.md", "# T\r\n- [x] b\r\n- [ ] a\r\n")
	if !doc.CRLF {
		t.Fatal("expected CRLF to be detected")
	}

	out, reps, changed, err := doc.Sort(todo.NewSorter(todo.DefaultOptions()))
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if !changed {
		t.Error("expected changed=true")
	}
	if len(reps) != 1 {
		t.Fatalf("expected 1 replacement, got %d", len(reps))
	}
	if want := "# T\r\n- [ ] a\r\n- [x] b\r\n"; out != want {
		t.Errorf("Sort:\n got: %q\nwant: %q", out, want)
	}
}

func TestSortMixedLineEndings(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "lines outside the region keep their endings",
			text:        "# notes\r\nplain\nline\n\n- [ ] a\n- [!] b\n",
			want:        "# notes\r\nplain\nline\n\n- [!] b\n- [ ] a\n",
			wantChanged: true,
		},
		{
			name:        "sorted input is returned byte for byte",
			text:        "# notes\r\nplain\n- [!] b\n",
			want:        "# notes\r\nplain\n- [!] b\n",
			wantChanged: false,
		},
		{
			name:        "replaced lines take the ending of their position",
			text:        "- [x] b\r\n- [ ] a\ntail\r\n",
			want:        "- [ ] a\r\n- [x] b\ntail\r\n",
			wantChanged: true,
		},
		{
			name:        "carriage return without newline at end of file",
			text:        "- [x] b\r\n- [ ] a\r",
			want:        "- [ ] a\r\n- [x] b",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := New("mixed.md", tt.text)
			out, _, changed, err := doc.Sort(todo.NewSorter(todo.DefaultOptions()))
			if err != nil {
				t.Fatalf("Sort error: %v", err)
			}
			if out != tt.want {
				t.Errorf("Sort:\n got: %q\nwant: %q", out, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed: got %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestApplyNilReproducesInput(t *testing.T) {
	for _, text := range []string{
		"",
		"a",
		"a\r\nb\nc",
		"a\r\n\r\nb\r\n",
		"a\r\r\nb\n",
	} {
		got, err := New("x.md", text).Apply(nil)
		if err != nil {
			t.Fatalf("Apply(%q): %v", text, err)
		}
		if got != text {
			t.Errorf("Apply(nil) = %q, want %q", got, text)
		}
	}
}

func TestSortUnchanged(t *testing.T) {
	doc := New("ok.md", "- [!] a\n- [ ] b\n- [x] c\n")
	out, _, changed, err := doc.Sort(todo.NewSorter(todo.DefaultOptions()))
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if changed {
		t.Error("expected changed=false for sorted input")
	}
	if out != doc.Text {
		t.Errorf("output differs from input: %q", out)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.md")
	if err := os.WriteFile(path, []byte("- [x] b\n- [ ] a\n"), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if doc.Name != path {
		t.Errorf("Name: got %q, want %q", doc.Name, path)
	}

	out, _, _, err := doc.Sort(todo.NewSorter(todo.DefaultOptions()))
	if err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if err := Save(path, out, doc.Mode); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "- [ ] a\n- [x] b\n" {
		t.Errorf("saved content: %q", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode: got %v, want 0600", info.Mode().Perm())
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.md"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "directory") {
			t.Fatalf("expected directory error, got %v", err)
		}
	})
}

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader("- [ ] a\n"), "<stdin>")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if doc.Name != "<stdin>" || doc.Text != "- [ ] a\n" {
		t.Errorf("unexpected document: %+v", doc)
	}
}
