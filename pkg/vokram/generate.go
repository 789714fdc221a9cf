package vokram

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// DefaultMaxWords is the word budget used when WithMaxWords is not given.
const DefaultMaxWords = 25

// sentenceEnd lists the characters treated as ending a sentence when
// trimming the output of Sentence.
const sentenceEnd = ".!?\"'"

// Rand is the source of randomness consumed during generation, one draw
// per sampling step. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand falls back to the shared top-level source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// generateOptions is used by the generate functions to configure default options.
type generateOptions struct {
	maxWords int
	start    Prefix
	rng      Rand
	logger   *slog.Logger
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument in Generate, Sentence and GenerateStream.
type GenerateOption func(*generateOptions)

// WithMaxWords sets the maximum number of words to generate. Generation may
// stop earlier when the walk reaches a prefix with no recorded successors.
func WithMaxWords(n int) GenerateOption {
	return func(o *generateOptions) { o.maxWords = n }
}

// WithStartPrefix sets the prefix the walk starts from. It must be a key of
// the model. When not given, a start prefix is chosen uniformly at random.
func WithStartPrefix(p Prefix) GenerateOption {
	return func(o *generateOptions) { o.start = p }
}

// WithRand sets the random source consumed during generation. Passing a
// seeded source makes the output reproducible, since models preserve
// corpus encounter order.
func WithRand(r Rand) GenerateOption {
	return func(o *generateOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithLogger sets the logger used during generation. By default all logs
// are discarded.
func WithLogger(logger *slog.Logger) GenerateOption {
	return func(o *generateOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newGenerateOptions(opts []GenerateOption) *generateOptions {
	o := &generateOptions{
		maxWords: DefaultMaxWords,
		rng:      globalRand{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Generate synthesizes a new word sequence by random walk over the model.
// The start prefix's tokens are emitted first, then each step samples one
// successor of the current prefix (weighted by observed frequency), emits
// it, and slides the prefix forward. The walk stops once the word budget is
// spent or the current prefix has no recorded successors; the latter is a
// normal termination and returns the partial output.
//
// The returned sequence is at most maxWords long. A zero budget returns an
// empty sequence regardless of model contents. Generating from a model with
// no prefixes fails with ErrEmptyModel.
func Generate(m *Model, opts ...GenerateOption) ([]string, error) {
	o := newGenerateOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.maxWords == 0 {
		return nil, nil
	}
	if m.Len() == 0 {
		return nil, ErrEmptyModel
	}

	start, err := o.chooseStart(m, m.prefixes)
	if err != nil {
		return nil, err
	}
	return o.walk(m, start), nil
}

// Sentence synthesizes text the way Generate does, but tries to shape the
// output into something resembling complete sentences: the start prefix is
// chosen among prefixes ending in a period when any exist, and trailing
// words after the last sentence-ending punctuation are dropped. The words
// are joined with single spaces.
func Sentence(m *Model, opts ...GenerateOption) (string, error) {
	o := newGenerateOptions(opts)
	if err := o.validate(); err != nil {
		return "", err
	}
	if o.maxWords == 0 {
		return "", nil
	}
	if m.Len() == 0 {
		return "", ErrEmptyModel
	}

	candidates := m.sentenceStarts()
	if len(candidates) == 0 {
		candidates = m.prefixes
	}
	start, err := o.chooseStart(m, candidates)
	if err != nil {
		return "", err
	}

	words := trimToSentence(o.walk(m, start))
	return strings.Join(words, " "), nil
}

func (o *generateOptions) validate() error {
	if o.maxWords < 0 {
		return fmt.Errorf("max words %d: %w", o.maxWords, ErrInvalidLength)
	}
	return nil
}

// chooseStart resolves the walk's starting prefix: an explicit one must be
// present in the model, otherwise one is drawn uniformly from candidates.
func (o *generateOptions) chooseStart(m *Model, candidates []Prefix) (Prefix, error) {
	if o.start != nil {
		if !m.Contains(o.start) {
			return nil, fmt.Errorf("prefix %q: %w", o.start.String(), ErrUnknownPrefix)
		}
		return o.start, nil
	}
	return candidates[o.rng.IntN(len(candidates))], nil
}

// walk runs the random walk itself. The caller has already resolved the
// start prefix and checked the model is non-empty.
func (o *generateOptions) walk(m *Model, start Prefix) []string {
	out := make([]string, 0, o.maxWords)
	for _, word := range start {
		if len(out) == o.maxWords {
			return out
		}
		out = append(out, word)
	}

	prefix := start
	for len(out) < o.maxWords {
		succ, ok := m.chain[prefix.String()]
		if !ok {
			o.logger.Debug("generation hit a dead end",
				slog.String("prefix", prefix.String()),
				slog.Int("generated_length", len(out)),
			)
			break
		}
		word := succ[o.rng.IntN(len(succ))]
		out = append(out, word)
		prefix = prefix.Next(word)
	}
	return out
}

// sentenceStarts returns the prefixes whose final token ends in a period,
// in encounter order. Starting a walk from one of these makes it likely the
// first generated word begins a sentence in the corpus.
func (m *Model) sentenceStarts() []Prefix {
	var starts []Prefix
	for _, p := range m.prefixes {
		last := p[len(p)-1]
		if strings.HasSuffix(last, ".") {
			starts = append(starts, p)
		}
	}
	return starts
}

// trimToSentence drops any words dangling after the last sentence-ending
// word. When no word ends a sentence the sequence is returned unchanged.
func trimToSentence(words []string) []string {
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		if w != "" && strings.IndexByte(sentenceEnd, w[len(w)-1]) >= 0 {
			return words[:i+1]
		}
	}
	return words
}
