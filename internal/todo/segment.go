package todo

import "math"

// noDepth marks that no item line has been seen in the open section.
const noDepth = math.MinInt32

// Section is a contiguous run of source lines forming one checklist.
type Section struct {
	StartLine int
	Lines     []string
}

// Segment groups lines into sections. A section opens on an item line and
// continues through item lines and through non-item lines indented exactly
// one level deeper than the most recent item. Any other line closes it.
func Segment(lines []string) []Section {
	var (
		sections  []Section
		current   *Section
		prevDepth = noDepth
	)

	for idx, line := range lines {
		depth := LineDepth(line)

		if !IsItem(line) {
			if current == nil {
				continue
			}
			if depth == prevDepth+1 {
				current.Lines = append(current.Lines, line)
				continue
			}
			sections = append(sections, *current)
			current = nil
			prevDepth = noDepth
			continue
		}

		prevDepth = depth
		if current == nil {
			current = &Section{StartLine: idx}
		}
		current.Lines = append(current.Lines, line)
	}

	// Input without a trailing newline can end inside a section.
	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}
