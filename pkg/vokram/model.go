package vokram

import (
	"slices"
	"strings"
)

// Prefix is an ordered tuple of tokens used as a model lookup key. Two
// prefixes are equal iff their tokens are equal elementwise and in order.
type Prefix []string

// String returns the prefix joined with single spaces, the form used as a
// map key. Tokens never contain whitespace, so the joined form is unique
// per prefix.
func (p Prefix) String() string {
	return strings.Join(p, " ")
}

// Next returns the prefix that follows p after generating token: the oldest
// token is dropped and the new one appended. The receiver is not modified.
func (p Prefix) Next(token string) Prefix {
	next := make(Prefix, len(p))
	copy(next, p[1:])
	next[len(next)-1] = token
	return next
}

// Model maps every prefix of `order` consecutive corpus tokens to the
// ordered sequence of tokens observed to follow it. Repetition in a
// successor sequence encodes frequency: a token recorded k times is k times
// as likely to be sampled. A Model is immutable after construction and may
// be shared freely across goroutines.
type Model struct {
	order    int
	chain    map[string][]string
	prefixes []Prefix // insertion order, for reproducible start selection
}

func newModel(order int) *Model {
	return &Model{
		order: order,
		chain: make(map[string][]string),
	}
}

// add records one prefix -> next observation. Only called during
// construction; the model is read-only afterwards.
func (m *Model) add(window []string, next string) {
	key := strings.Join(window, " ")
	if _, ok := m.chain[key]; !ok {
		m.prefixes = append(m.prefixes, Prefix(slices.Clone(window)))
	}
	m.chain[key] = append(m.chain[key], next)
}

// Order returns the n-gram order the model was built with.
func (m *Model) Order() int {
	return m.order
}

// Len returns the number of distinct prefixes in the model.
func (m *Model) Len() int {
	return len(m.prefixes)
}

// Contains reports whether p is a key of the model.
func (m *Model) Contains(p Prefix) bool {
	_, ok := m.chain[p.String()]
	return ok
}

// Prefixes returns a copy of the model's prefixes in the order they were
// first encountered in the corpus.
func (m *Model) Prefixes() []Prefix {
	out := make([]Prefix, len(m.prefixes))
	for i, p := range m.prefixes {
		out[i] = slices.Clone(p)
	}
	return out
}

// Successors returns a copy of the successor sequence recorded for p, in
// encounter order, or nil if p is not a key of the model. Every key has at
// least one successor.
func (m *Model) Successors(p Prefix) []string {
	succ, ok := m.chain[p.String()]
	if !ok {
		return nil
	}
	return slices.Clone(succ)
}
