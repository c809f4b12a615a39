// Package document loads text files, applies checklist replacements, and
// writes the result back.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nibzard/todosort/internal/todo"
)

// ErrBadRange is returned when a replacement does not fit the document.
var ErrBadRange = errors.New("replacement range out of bounds")

// Document is a snapshot of a text file. Text has "\n" line endings; the
// original ending of each line is kept so output only changes the lines a
// replacement covers.
type Document struct {
	Name string
	Text string
	CRLF bool // at least one line ended in "\r\n"
	Mode os.FileMode

	cr []bool // cr[i] is set when line i ended in "\r\n"
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc := New(path, string(data))
	doc.Mode = info.Mode().Perm()
	return doc, nil
}

// Read reads a document from r. name is used for messages only.
func Read(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return New(name, string(data)), nil
}

// New builds a document from raw text, converting CRLF to LF and recording
// which lines used CRLF.
func New(name, raw string) *Document {
	lines := strings.Split(raw, "\n")
	cr := make([]bool, len(lines))
	// The last element has no newline after it, so it never ends in CRLF.
	for i := 0; i < len(lines)-1; i++ {
		if strings.HasSuffix(lines[i], "\r") {
			lines[i] = lines[i][:len(lines[i])-1]
			cr[i] = true
		}
	}

	doc := &Document{Name: name, Mode: 0644, cr: cr}
	doc.Text = strings.Join(lines, "\n")
	for _, c := range cr {
		if c {
			doc.CRLF = true
			break
		}
	}
	return doc
}

// Apply returns the document text with every replacement applied.
// Replacements must be in document order and must not overlap. A replaced
// line takes the line ending of the source line at the same position in
// the span; lines outside every span keep their own ending.
func (d *Document) Apply(reps []todo.Replacement) (string, error) {
	lines := strings.Split(d.Text, "\n")

	prevEnd := 0
	for i, r := range reps {
		if r.StartLine < prevEnd || r.EndLine < r.StartLine || r.EndLine > len(lines) {
			return "", fmt.Errorf("replacement %d [%d,%d) of %d lines: %w",
				i, r.StartLine, r.EndLine, len(lines), ErrBadRange)
		}
		prevEnd = r.EndLine
	}

	cr := make([]bool, len(lines))
	copy(cr, d.cr)

	// Work from the end so earlier spans keep their line numbers.
	for i := len(reps) - 1; i >= 0; i-- {
		r := reps[i]
		var repl []string
		if r.Text != "" {
			repl = strings.Split(strings.TrimSuffix(r.Text, "\n"), "\n")
		}

		replCR := make([]bool, len(repl))
		for j := range repl {
			src := min(r.StartLine+j, r.EndLine-1)
			replCR[j] = src >= r.StartLine && cr[src]
		}

		lines = splice(lines, r.StartLine, r.EndLine, repl)
		cr = splice(cr, r.StartLine, r.EndLine, replCR)
	}

	return join(lines, cr), nil
}

// splice replaces s[start:end] with repl in a new slice.
func splice[T any](s []T, start, end int, repl []T) []T {
	out := make([]T, 0, len(s)-(end-start)+len(repl))
	out = append(out, s[:start]...)
	out = append(out, repl...)
	return append(out, s[end:]...)
}

// join is the inverse of the split done by New.
func join(lines []string, cr []bool) string {
	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if i == len(lines)-1 {
			break
		}
		if cr[i] {
			b.WriteByte('\r')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Sort runs s over the document and returns the rewritten text, the
// replacements that were applied, and whether the text changed.
func (d *Document) Sort(s *todo.Sorter) (string, []todo.Replacement, bool, error) {
	reps, err := s.Sort(d.Text)
	if err != nil {
		return "", nil, false, fmt.Errorf("%s: %w", d.Name, err)
	}

	out, err := d.Apply(reps)
	if err != nil {
		return "", nil, false, fmt.Errorf("%s: %w", d.Name, err)
	}

	orig, err := d.Apply(nil)
	if err != nil {
		return "", nil, false, fmt.Errorf("%s: %w", d.Name, err)
	}
	return out, reps, out != orig, nil
}

// Save writes content to path through a temporary file in the same
// directory, then renames it into place.
func Save(path, content string, mode os.FileMode) error {
	if mode == 0 {
		mode = 0644
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
