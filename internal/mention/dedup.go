package mention

import "sort"

// Dedupe collapses raw matches from all pattern variants into one
// canonical list: sorted ascending by start offset, with zero pairwise
// overlaps. When two matches overlap, the one encountered first wins;
// the stable sort preserves variant order for matches starting at the
// same offset, so a more specific variant beats a plainer one there.
func Dedupe(matches []Mention) []Mention {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]Mention, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	kept := sorted[:0]
	lastEnd := -1
	for _, m := range sorted {
		if m.Start >= lastEnd {
			kept = append(kept, m)
			lastEnd = m.End
		}
	}
	return kept
}
