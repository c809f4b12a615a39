package todo

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// itemPattern matches "<indent><bullet> [<status>] <text>".
var itemPattern = regexp.MustCompile(`^(\s*)([-*])\s*\[(.)\]\s*(.*)$`)

// spacesPerLevel is the number of spaces that count as one depth level.
const spacesPerLevel = 4

// Line is a classified item line.
type Line struct {
	Indent string
	Bullet rune
	Status rune
	Text   string
}

// ParseLine classifies a single line. It returns false if the line is
// not a checklist item.
func ParseLine(line string) (Line, bool) {
	m := itemPattern.FindStringSubmatch(line)
	if m == nil {
		return Line{}, false
	}
	bullet, _ := utf8.DecodeRuneInString(m[2])
	status, _ := utf8.DecodeRuneInString(m[3])
	return Line{
		Indent: m[1],
		Bullet: bullet,
		Status: status,
		Text:   strings.TrimSpace(m[4]),
	}, true
}

// Depth returns the normalized depth of the line.
func (l Line) Depth() int {
	return Depth(l.Indent)
}

// IsItem reports whether line is a checklist item line.
func IsItem(line string) bool {
	return itemPattern.MatchString(line)
}

// Depth converts a whitespace prefix to a depth: one level per tab plus
// one level per full group of four spaces. Leftover spaces are dropped,
// so two spaces count as depth 0 and six spaces as depth 1.
func Depth(indent string) int {
	tabs, spaces := 0, 0
	for _, r := range indent {
		switch r {
		case '\t':
			tabs++
		case ' ':
			spaces++
		}
	}
	return tabs + spaces/spacesPerLevel
}

// LeadingWhitespace returns the whitespace prefix of line.
func LeadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t\f\r"))]
}

// LineDepth returns the normalized depth of any line's leading whitespace.
func LineDepth(line string) int {
	return Depth(LeadingWhitespace(line))
}
