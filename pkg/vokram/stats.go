package vokram

import "strings"

// Stats holds aggregated statistics for a single model.
type Stats struct {
	Prefixes       int // The number of distinct prefix keys.
	Transitions    int // The total number of recorded prefix->successor pairs.
	Vocabulary     int // The number of unique tokens across prefixes and successors.
	SentenceStarts int // The number of prefixes ending in a period.
}

// Stats returns a snapshot of the model's statistics. For a model built
// from a single corpus, Transitions equals len(tokens)-order.
func (m *Model) Stats() Stats {
	s := Stats{Prefixes: len(m.prefixes)}
	seen := make(map[string]struct{})

	for _, p := range m.prefixes {
		for _, word := range p {
			seen[word] = struct{}{}
		}
		if strings.HasSuffix(p[len(p)-1], ".") {
			s.SentenceStarts++
		}

		succ := m.chain[p.String()]
		s.Transitions += len(succ)
		for _, word := range succ {
			seen[word] = struct{}{}
		}
	}

	s.Vocabulary = len(seen)
	return s
}
