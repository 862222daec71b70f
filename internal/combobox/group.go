package combobox

// OptionGroup is one named bucket of options, in filtered order.
type OptionGroup struct {
	Name    string
	Options []Option
}

// Grouped partitions a filtered option list into an ungrouped bucket followed
// by named groups in the order each group was first seen. The flattened order
// (ungrouped first, then each group) drives highlight and keyboard math.
type Grouped struct {
	Ungrouped []Option
	Groups    []OptionGroup

	flat []Option
}

// Group buckets filtered options. Group order is discovery order, never map
// iteration order.
func Group(filtered []Option) Grouped {
	var g Grouped
	position := make(map[string]int)

	for _, opt := range filtered {
		if !opt.Grouped() {
			g.Ungrouped = append(g.Ungrouped, opt)
			continue
		}
		idx, ok := position[opt.Group]
		if !ok {
			idx = len(g.Groups)
			position[opt.Group] = idx
			g.Groups = append(g.Groups, OptionGroup{Name: opt.Group})
		}
		g.Groups[idx].Options = append(g.Groups[idx].Options, opt)
	}

	g.flat = make([]Option, 0, len(filtered))
	g.flat = append(g.flat, g.Ungrouped...)
	for _, group := range g.Groups {
		g.flat = append(g.flat, group.Options...)
	}
	return g
}

// Len returns the number of options across all buckets.
func (g Grouped) Len() int {
	return len(g.flat)
}

// Flatten returns options in flattened index order.
func (g Grouped) Flatten() []Option {
	return g.flat
}

// OptionAt returns the option at a flattened index.
func (g Grouped) OptionAt(index int) (Option, bool) {
	if index < 0 || index >= len(g.flat) {
		return Option{}, false
	}
	return g.flat[index], true
}

// IndexOf returns the flattened index of the first entry matching opt, or -1.
func (g Grouped) IndexOf(opt Option) int {
	for i, candidate := range g.flat {
		if candidate.sameEntry(opt) {
			return i
		}
	}
	return -1
}

// GroupOffset returns the flattened index at which the named group starts, or
// -1 when no such group exists.
func (g Grouped) GroupOffset(name string) int {
	offset := len(g.Ungrouped)
	for _, group := range g.Groups {
		if group.Name == name {
			return offset
		}
		offset += len(group.Options)
	}
	return -1
}
