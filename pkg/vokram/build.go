package vokram

import (
	"errors"
	"fmt"
	"io"
)

// DefaultOrder is the n-gram order used when callers have no reason to pick
// another one.
const DefaultOrder = 2

// Build constructs a model from an already-tokenized corpus using n-grams
// of size order. A window of order+1 tokens slides across the corpus with
// stride 1; for each position the first order tokens form the prefix and
// the last token is appended to that prefix's successors.
//
// A corpus of order tokens or fewer yields a valid empty model. Build is
// deterministic: the same tokens and order always produce the same model,
// with successor sequences in encounter order.
func Build(tokens []string, order int) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	m := newModel(order)
	for i := 0; i+order < len(tokens); i++ {
		m.add(tokens[i:i+order], tokens[i+order])
	}
	return m, nil
}

// BuildReader constructs a model from a raw text stream, tokenizing it with
// tok as it reads. The corpus is never materialized in memory; only a
// window of order+1 tokens is held at a time. A nil tok falls back to
// WhitespaceTokenizer. The resulting model is identical to calling Build on
// the token sequence the tokenizer would produce.
func BuildReader(r io.Reader, order int, tok Tokenizer) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	if tok == nil {
		tok = WhitespaceTokenizer{}
	}

	m := newModel(order)
	stream := tok.NewStream(r)
	window := make([]string, 0, order+1)

	for {
		word, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizer error: %w", err)
		}

		window = append(window, word)
		if len(window) == order+1 {
			m.add(window[:order], window[order])
			copy(window, window[1:])
			window = window[:order]
		}
	}

	return m, nil
}
