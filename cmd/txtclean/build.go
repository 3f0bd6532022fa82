package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"txtcleaner/internal/config"
	"txtcleaner/internal/customdict"
	"txtcleaner/internal/lexicon"
	"txtcleaner/internal/pipeline"
	"txtcleaner/pkg/options"
)

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// loadFrequencies counts the corpus when one is configured and reads the
// "word count" table otherwise.
func loadFrequencies(paths config.PathsConfig) (lexicon.Frequencies, error) {
	if paths.CorpusPath != "" {
		f, err := os.Open(paths.CorpusPath)
		if err != nil {
			return nil, fmt.Errorf("open corpus: %w", err)
		}
		defer f.Close()

		freq, err := lexicon.CountCorpus(f)
		if err != nil {
			return nil, fmt.Errorf("count corpus %s: %w", paths.CorpusPath, err)
		}
		return freq, nil
	}

	freq, err := lexicon.LoadFrequencies(paths.FrequencyPath)
	if err != nil {
		return nil, fmt.Errorf("load frequencies %s: %w", paths.FrequencyPath, err)
	}
	return freq, nil
}

func buildPipeline(cfg config.Config) (*pipeline.Pipeline, error) {
	freq, err := loadFrequencies(cfg.Paths)
	if err != nil {
		return nil, err
	}

	contractions := lexicon.DefaultContractions()
	if cfg.Paths.ContractionsPath != "" {
		contractions, err = lexicon.LoadContractions(cfg.Paths.ContractionsPath)
		if err != nil {
			return nil, fmt.Errorf("load contractions %s: %w", cfg.Paths.ContractionsPath, err)
		}
	}

	opts := []options.Options{
		options.WithWorkers(cfg.Pipeline.Workers),
		options.WithAlphabet(cfg.Pipeline.Alphabet),
		options.WithLogger(slog.Default()),
	}
	if cfg.Paths.WordListPath != "" {
		words, err := lexicon.LoadWordList(cfg.Paths.WordListPath)
		if err != nil {
			return nil, fmt.Errorf("load word list %s: %w", cfg.Paths.WordListPath, err)
		}
		opts = append(opts, options.WithWordList(words))
	}
	if cfg.Pipeline.FoldAccents {
		opts = append(opts, options.WithAccentFolding())
	}

	slog.Debug("pipeline tables loaded",
		slog.Int("frequencies", len(freq)),
		slog.Int("contractions", len(contractions)),
	)
	return pipeline.New(freq, contractions, opts...), nil
}

// withCustomWords extends p with the Redis word set when Redis is enabled.
func withCustomWords(ctx context.Context, cfg config.Config, p *pipeline.Pipeline) (*pipeline.Pipeline, error) {
	if !cfg.Redis.Enabled {
		return p, nil
	}
	client := newRedisClient(cfg.Redis)
	defer client.Close()

	words, err := customdict.New(client, cfg.Redis.Key).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load custom words: %w", err)
	}
	return p.WithKnown(words...), nil
}
