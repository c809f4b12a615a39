package todo

import "strings"

// Render writes the item, its attached text, and its children using
// indent as the per-level unit.
func (it *Item) Render(indent string) string {
	var b strings.Builder
	it.render(&b, indent)
	return b.String()
}

func (it *Item) render(b *strings.Builder, indent string) {
	bullet := it.Bullet
	if bullet == 0 {
		bullet = '-'
	}

	b.WriteString(strings.Repeat(indent, it.Depth))
	b.WriteRune(bullet)
	b.WriteString(" [")
	b.WriteRune(it.Status)
	b.WriteString("] ")
	b.WriteString(it.Text)
	b.WriteByte('\n')

	nested := strings.Repeat(indent, it.Depth+1)
	for _, line := range it.Attached {
		b.WriteString(nested)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for _, child := range it.Children {
		child.render(b, indent)
	}
}

// Render writes every top-level item of the region in order.
func (r *Region) Render() string {
	var b strings.Builder
	for _, it := range r.Items {
		it.render(&b, r.Indent)
	}
	return b.String()
}

// Replacement returns the rendered region and the source span it replaces.
func (r *Region) Replacement() Replacement {
	return Replacement{
		Text:      r.Render(),
		StartLine: r.StartLine,
		EndLine:   r.EndLine(),
	}
}
