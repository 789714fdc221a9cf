package vokram

import "slices"

// Prune returns a new model containing only the transitions observed at
// least minCount times, which is useful for cutting rare, often noisy
// transitions out of models built from large corpora. Prefixes left with no
// successors are dropped entirely. The receiver is not modified, and prefix
// encounter order is preserved in the result.
func (m *Model) Prune(minCount int) *Model {
	pruned := newModel(m.order)

	for _, p := range m.prefixes {
		succ := m.chain[p.String()]

		counts := make(map[string]int, len(succ))
		for _, word := range succ {
			counts[word]++
		}

		kept := make([]string, 0, len(succ))
		for _, word := range succ {
			if counts[word] >= minCount {
				kept = append(kept, word)
			}
		}
		if len(kept) == 0 {
			continue
		}

		pruned.chain[p.String()] = kept
		pruned.prefixes = append(pruned.prefixes, slices.Clone(p))
	}

	return pruned
}
