package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/revmischa/vokram/pkg/vokram"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	var (
		configPath string
		ngramSize  int64
		numWords   int64
		minCount   int64
		seed       int64
		start      string
		raw        bool
		logLevel   string
	)

	return &cli.Command{
		Name:    "vokram",
		Usage:   "Generates plausible new sentences from a corpus provided on STDIN",
		Version: fmt.Sprintf("%s (%s, built %s)", Version, Commit, BuildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to a JSON config file holding flag defaults (created if missing)",
				Destination: &configPath,
			},
			&cli.Int64Flag{
				Name:        "ngram-size",
				Aliases:     []string{"n"},
				Usage:       "number of words per model prefix",
				Value:       vokram.DefaultOrder,
				Destination: &ngramSize,
			},
			&cli.Int64Flag{
				Name:        "num-words",
				Aliases:     []string{"w"},
				Usage:       "maximum number of words in the resulting sentence",
				Value:       vokram.DefaultMaxWords,
				Destination: &numWords,
			},
			&cli.Int64Flag{
				Name:        "min-count",
				Usage:       "drop transitions observed fewer than this many times",
				Value:       1,
				Destination: &minCount,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "random seed for reproducible output (0 = nondeterministic)",
				Destination: &seed,
			},
			&cli.StringFlag{
				Name:        "start",
				Usage:       "words to start generation from (must appear in the corpus)",
				Destination: &start,
			},
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "emit the raw word walk without sentence trimming",
				Destination: &raw,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       "warn",
				Destination: &logLevel,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				// Explicit flags win over the config file.
				if !cmd.IsSet("ngram-size") {
					ngramSize = int64(cfg.NgramSize)
				}
				if !cmd.IsSet("num-words") {
					numWords = int64(cfg.NumWords)
				}
				if !cmd.IsSet("min-count") {
					minCount = int64(cfg.MinCount)
				}
				if !cmd.IsSet("log-level") {
					logLevel = cfg.LogLevel
				}
			}

			logger := newLogger(logLevel)

			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return errors.New("corpus must be provided on STDIN")
			}

			model, err := vokram.BuildReader(os.Stdin, int(ngramSize), vokram.WhitespaceTokenizer{})
			if err != nil {
				return err
			}
			if minCount > 1 {
				model = model.Prune(int(minCount))
			}

			stats := model.Stats()
			logger.Debug("model built",
				slog.Int("prefixes", stats.Prefixes),
				slog.Int("transitions", stats.Transitions),
				slog.Int("vocabulary", stats.Vocabulary),
				slog.Int("sentence_starts", stats.SentenceStarts),
			)

			opts := []vokram.GenerateOption{
				vokram.WithMaxWords(int(numWords)),
				vokram.WithLogger(logger),
			}
			if seed != 0 {
				opts = append(opts, vokram.WithRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)))))
			}
			if start != "" {
				opts = append(opts, vokram.WithStartPrefix(vokram.Prefix(strings.Fields(start))))
			}

			var output string
			if raw {
				var words []string
				words, err = vokram.Generate(model, opts...)
				output = strings.Join(words, " ")
			} else {
				output, err = vokram.Sentence(model, opts...)
			}
			if err != nil {
				if errors.Is(err, vokram.ErrEmptyModel) {
					return fmt.Errorf("not enough input text: the corpus must contain more than %d words", model.Order())
				}
				return err
			}

			fmt.Println(output)
			return nil
		},
	}
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
