package todo

import "strings"

// Sorter runs the full pipeline over a document snapshot. A Sorter holds
// only immutable options and is safe for concurrent use.
type Sorter struct {
	opts Options
}

// NewSorter returns a Sorter using opts. A nil order is treated as empty,
// which leaves every status unranked.
func NewSorter(opts Options) *Sorter {
	if opts.Order == nil {
		opts.Order = Order{}
	}
	return &Sorter{opts: opts}
}

// Options returns the sorter's options.
func (s *Sorter) Options() Options {
	return s.opts
}

// Regions segments text, builds every region and sorts it.
func (s *Sorter) Regions(text string) ([]*Region, error) {
	sections := Segment(strings.Split(text, "\n"))
	sorter := newItemSorter(s.opts)

	regions := make([]*Region, 0, len(sections))
	for _, section := range sections {
		region, err := Build(section)
		if err != nil {
			return nil, err
		}
		if len(region.Items) == 0 {
			continue
		}
		sorter.sortItems(region.Items)
		regions = append(regions, region)
	}

	return regions, nil
}

// Sort returns one replacement per checklist region in document order.
// Line numbers are 0-based and refer to text split on "\n".
func (s *Sorter) Sort(text string) ([]Replacement, error) {
	regions, err := s.Regions(text)
	if err != nil {
		return nil, err
	}

	reps := make([]Replacement, 0, len(regions))
	for _, region := range regions {
		reps = append(reps, region.Replacement())
	}
	return reps, nil
}
