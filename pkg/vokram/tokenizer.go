package vokram

import (
	"bufio"
	"io"
	"strings"
)

// Tokenizer is the contract for splitting raw text into tokens, keeping the
// model construction logic independent of the tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
}

// StreamTokenizer is a stateful tokenizer over a stream of text, returning
// one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (string, error)
}

// WhitespaceTokenizer splits text on runs of whitespace. Tokens are used
// verbatim: no case folding and no punctuation stripping, so a trailing
// comma is part of its word and affects prefix matching. Empty tokens are
// never produced.
type WhitespaceTokenizer struct{}

// NewStream returns the stream processor.
func (WhitespaceTokenizer) NewStream(r io.Reader) StreamTokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &whitespaceStream{scanner: sc}
}

type whitespaceStream struct {
	scanner *bufio.Scanner
}

// Next returns the next whitespace-delimited word, or io.EOF when the
// stream is exhausted. Any other error indicates a problem reading from the
// underlying stream.
func (s *whitespaceStream) Next() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Fields tokenizes an in-memory corpus with the same whitespace policy as
// WhitespaceTokenizer.
func Fields(corpus string) []string {
	return strings.Fields(corpus)
}
