package todo

import "strings"

// Build turns a section into a region of nested items. Each item becomes a
// child of the nearest preceding open item with a strictly smaller depth.
// Non-item lines attach to the innermost open item.
func Build(section Section) (*Region, error) {
	region := NewRegion()
	region.SourceLines = len(section.Lines)
	region.Indent = detectIndent(section.Lines)

	var stack []*Item
	for idx, raw := range section.Lines {
		parsed, ok := ParseLine(raw)
		if !ok {
			if len(stack) == 0 {
				return nil, &ConsistencyError{Line: section.StartLine + idx, Err: ErrOrphanText}
			}
			top := stack[len(stack)-1]
			top.Attached = append(top.Attached, strings.TrimSpace(raw))
			continue
		}

		if region.StartLine == -1 {
			region.StartLine = section.StartLine + idx
		}

		item := &Item{
			Text:   parsed.Text,
			Status: parsed.Status,
			Bullet: parsed.Bullet,
			Depth:  parsed.Depth(),
		}

		for len(stack) > 0 && stack[len(stack)-1].Depth >= item.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, item)
		} else {
			region.Items = append(region.Items, item)
		}
		stack = append(stack, item)
	}

	if got := region.LineCount(); got != region.SourceLines {
		return nil, &ConsistencyError{Line: section.StartLine, Err: ErrLineAccounting}
	}

	return region, nil
}

// detectIndent picks the rendering unit from the first indented line.
func detectIndent(lines []string) string {
	for _, line := range lines {
		ws := LeadingWhitespace(line)
		if ws == "" {
			continue
		}
		if ws[0] == ' ' {
			return strings.Repeat(" ", spacesPerLevel)
		}
		return "\t"
	}
	return "\t"
}
