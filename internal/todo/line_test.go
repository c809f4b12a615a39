package todo

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		indent string
		bullet rune
		status rune
		text   string
	}{
		{"unchecked", "- [ ] a", true, "", '-', ' ', "a"},
		{"done", "- [x] buy milk", true, "", '-', 'x', "buy milk"},
		{"star bullet", "* [!] urgent", true, "", '*', '!', "urgent"},
		{"tab indent", "\t- [/] wip", true, "\t", '-', '/', "wip"},
		{"no spaces", "-[x]foo", true, "", '-', 'x', "foo"},
		{"padded text", "  * [?]  spaced out  ", true, "  ", '*', '?', "spaced out"},
		{"empty text", "- [x]", true, "", '-', 'x', ""},
		{"upper case status", "- [X] kept", true, "", '-', 'X', "kept"},
		{"unicode status", "- [✓] tick", true, "", '-', '✓', "tick"},
		{"plus bullet", "+ [ ] a", false, "", 0, 0, ""},
		{"empty box", "- [] a", false, "", 0, 0, ""},
		{"two chars", "- [ab] a", false, "", 0, 0, ""},
		{"plain list", "- a", false, "", 0, 0, ""},
		{"paragraph", "some text", false, "", 0, 0, ""},
		{"heading", "## Tasks", false, "", 0, 0, ""},
		{"rule", "---", false, "", 0, 0, ""},
		{"blank", "", false, "", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Indent != tt.indent {
				t.Errorf("Indent: got %q, want %q", got.Indent, tt.indent)
			}
			if got.Bullet != tt.bullet {
				t.Errorf("Bullet: got %q, want %q", got.Bullet, tt.bullet)
			}
			if got.Status != tt.status {
				t.Errorf("Status: got %q, want %q", got.Status, tt.status)
			}
			if got.Text != tt.text {
				t.Errorf("Text: got %q, want %q", got.Text, tt.text)
			}
		})
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		indent string
		want   int
	}{
		{"", 0},
		{"\t", 1},
		{"\t\t", 2},
		{"    ", 1},
		{"        ", 2},
		{"\t    ", 2},
		{"    \t", 2},
		// Leftover spaces are truncated, not rounded.
		{"  ", 0},
		{"   ", 0},
		{"      ", 1},
		{"       ", 1},
		{"\t  ", 1},
		{"  \t  ", 2},
	}

	for _, tt := range tests {
		if got := Depth(tt.indent); got != tt.want {
			t.Errorf("Depth(%q) = %d, want %d", tt.indent, got, tt.want)
		}
	}
}

func TestLineDepth(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"text", 0},
		{"\ttext", 1},
		{"    text", 1},
		{"\t", 1},
		{"", 0},
		{"\t\t- [ ] a", 2},
	}

	for _, tt := range tests {
		if got := LineDepth(tt.line); got != tt.want {
			t.Errorf("LineDepth(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}
