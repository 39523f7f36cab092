package access

import "github.com/dshills/mnemonic/internal/element"

// SortByHierarchy orders candidates so that each element is followed
// immediately by its not-yet-placed logical descendants, preserving input
// order within every group. Elements with no ancestor relationship to any
// other candidate keep their relative order. The input slice is not
// modified.
func SortByHierarchy(elements []*element.Node) []*element.Node {
	if len(elements) < 2 {
		return elements
	}

	placed := make([]bool, len(elements))
	out := make([]*element.Node, 0, len(elements))

	for i, el := range elements {
		if placed[i] {
			continue
		}
		placed[i] = true
		out = append(out, el)

		for j := i + 1; j < len(elements); j++ {
			if placed[j] {
				continue
			}
			if el.IsAncestorOf(elements[j]) {
				placed[j] = true
				out = append(out, elements[j])
			}
		}
	}
	return out
}
