package vokram

import (
	"strings"
	"testing"
)

// pickFirst is a Rand that always chooses the first candidate, making
// generation fully deterministic.
type pickFirst struct{}

func (pickFirst) IntN(int) int { return 0 }

// scripted is a Rand that plays back a fixed sequence of draws, then zeros.
type scripted struct {
	draws []int
	pos   int
}

func (s *scripted) IntN(n int) int {
	if s.pos >= len(s.draws) {
		return 0
	}
	draw := s.draws[s.pos] % n
	s.pos++
	return draw
}

// mustBuild builds a model from a whitespace-separated corpus, failing the
// test on error.
func mustBuild(t *testing.T, corpus string, order int) *Model {
	t.Helper()
	m, err := Build(Fields(corpus), order)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return m
}

// benchmarkCorpus builds a repetitive but branching corpus of roughly n words.
func benchmarkCorpus(n int) string {
	var sb strings.Builder
	sentences := []string{
		"the quick brown fox jumps over the lazy dog.",
		"the lazy dog sleeps under the old oak tree.",
		"a quick fox runs past the sleeping dog again.",
	}
	words := 0
	for i := 0; words < n; i++ {
		s := sentences[i%len(sentences)]
		sb.WriteString(s)
		sb.WriteByte(' ')
		words += len(Fields(s))
	}
	return sb.String()
}
