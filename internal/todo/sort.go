package todo

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// itemSorter orders siblings by rank, then optionally by text.
// A collator keeps internal buffers, so each sort request gets its own.
type itemSorter struct {
	opts     Options
	collator *collate.Collator
}

func newItemSorter(opts Options) *itemSorter {
	s := &itemSorter{opts: opts}
	if opts.AlphabeticalTies {
		s.collator = collate.New(language.Und)
	}
	return s
}

// less reports whether a sorts before b.
func (s *itemSorter) less(a, b *Item) bool {
	ra, rb := s.opts.Order.Rank(a.Status), s.opts.Order.Rank(b.Status)
	if ra != rb {
		return ra < rb
	}
	if s.collator != nil {
		return s.collator.CompareString(a.Text, b.Text) < 0
	}
	return false
}

// sortItems sorts one level, then recurses into each child list.
func (s *itemSorter) sortItems(items []*Item) {
	if len(items) > 1 {
		sort.SliceStable(items, func(i, j int) bool {
			return s.less(items[i], items[j])
		})
	}
	for _, it := range items {
		s.sortItems(it.Children)
	}
}

// SortItems stably reorders items and all their descendants in place.
func SortItems(items []*Item, opts Options) {
	newItemSorter(opts).sortItems(items)
}
