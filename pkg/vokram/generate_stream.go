package vokram

import (
	"context"
	"log/slog"
)

// GenerateStream runs the same random walk as Generate but delivers words
// on a read-only channel, which is useful for very long outputs or
// real-time consumers. The channel is closed once generation completes, the
// walk dead-ends, or ctx is cancelled. Argument errors and ErrEmptyModel
// are returned synchronously before any goroutine is started.
func GenerateStream(ctx context.Context, m *Model, opts ...GenerateOption) (<-chan string, error) {
	o := newGenerateOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	words := make(chan string)
	if o.maxWords == 0 {
		close(words)
		return words, nil
	}
	if m.Len() == 0 {
		return nil, ErrEmptyModel
	}

	start, err := o.chooseStart(m, m.prefixes)
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(words)

		emitted := 0
		emit := func(word string) bool {
			select {
			case <-ctx.Done():
				return false
			case words <- word:
				emitted++
				return true
			}
		}

		for _, word := range start {
			if emitted == o.maxWords || !emit(word) {
				return
			}
		}

		prefix := start
		for emitted < o.maxWords {
			succ, ok := m.chain[prefix.String()]
			if !ok {
				o.logger.Debug("generation hit a dead end",
					slog.String("prefix", prefix.String()),
					slog.Int("generated_length", emitted),
				)
				return
			}
			word := succ[o.rng.IntN(len(succ))]
			if !emit(word) {
				return
			}
			prefix = prefix.Next(word)
		}
	}()

	return words, nil
}
