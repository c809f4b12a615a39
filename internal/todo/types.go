package todo

import (
	"errors"
	"fmt"
)

// Well-known status characters.
const (
	StatusUnchecked  = ' '
	StatusDone       = 'x'
	StatusImportant  = '!'
	StatusCancelled  = '-'
	StatusInProgress = '/'
	StatusQuestion   = '?'
	StatusStar       = '*'
)

var statusNames = map[rune]string{
	StatusUnchecked:  "unchecked",
	StatusDone:       "done",
	StatusImportant:  "important",
	StatusCancelled:  "cancelled",
	StatusInProgress: "in progress",
	StatusQuestion:   "question",
	StatusStar:       "star",
}

// StatusName returns a display name for a status character,
// or "" if the character has no well-known meaning.
func StatusName(r rune) string {
	return statusNames[r]
}

// Item is one checklist entry and the subtree nested under it.
type Item struct {
	Text     string
	Status   rune
	Bullet   rune
	Depth    int
	Children []*Item
	// Attached holds trimmed free-text lines that followed the item
	// before the next item line.
	Attached []string
}

// LineCount returns the number of lines the item renders to,
// including attached text and all descendants.
func (it *Item) LineCount() int {
	n := 1 + len(it.Attached)
	for _, child := range it.Children {
		n += child.LineCount()
	}
	return n
}

// Region is one independently sortable checklist block.
type Region struct {
	Items []*Item
	// StartLine is the 0-based source line of the first item, or -1
	// before any item has been seen.
	StartLine int
	// Indent is the unit repeated once per depth level when rendering.
	Indent string
	// SourceLines is the number of source lines assigned to the region.
	SourceLines int
}

// NewRegion returns an empty region with an unset start line.
func NewRegion() *Region {
	return &Region{StartLine: -1, Indent: "\t"}
}

// LineCount returns the total rendered line count of the region.
func (r *Region) LineCount() int {
	n := 0
	for _, it := range r.Items {
		n += it.LineCount()
	}
	return n
}

// EndLine returns the exclusive end of the region's replacement span.
func (r *Region) EndLine() int {
	return r.StartLine + r.LineCount()
}

// Replacement describes how to overwrite the half-open line range
// [StartLine, EndLine) of the original document.
type Replacement struct {
	Text      string
	StartLine int
	EndLine   int
}

// Options controls how sibling items are ordered.
type Options struct {
	Order Order
	// AlphabeticalTies orders items of equal rank by text. When false,
	// items of equal rank keep their source order.
	AlphabeticalTies bool
}

// DefaultOptions returns the default order with alphabetical tie-break.
func DefaultOptions() Options {
	return Options{Order: DefaultOrder(), AlphabeticalTies: true}
}

var (
	// ErrOrphanText is returned when free text is found before any item
	// in a region.
	ErrOrphanText = errors.New("attached text without an open item")
	// ErrLineAccounting is returned when a region renders to a different
	// number of lines than it occupied in the source.
	ErrLineAccounting = errors.New("rendered line count does not match source")
)

// ConsistencyError reports an internal pipeline defect at a source line.
// Applying a replacement after such an error would corrupt the document.
type ConsistencyError struct {
	Line int // 0-based source line
	Err  error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line+1, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConsistencyError) Unwrap() error {
	return e.Err
}
