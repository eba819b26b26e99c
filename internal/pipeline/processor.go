// Package pipeline drives the daily vocabulary run: word selection fans out
// to bounded parallel workers, each worker walks one word through the model,
// parser and audio stages, and the coordinator hands results to persistence
// and delivery.
package pipeline

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/audio"
	"github.com/quat/dailyvocab/internal/llm"
	"github.com/quat/dailyvocab/internal/parser"
	"github.com/quat/dailyvocab/internal/vocab"
)

// DefaultWorkers is the fixed pool size, independent of input length.
const DefaultWorkers = 8

// AudioGenerator is the audio stage the per-word pipeline drives.
// *audio.Orchestrator implements it.
type AudioGenerator interface {
	GenerateForWord(ctx context.Context, word, example, monologue string) audio.Pair
}

// WordProcessor fans a word list out to a fixed worker pool and fans the
// completed records back in. Collaborators are shared read-only across
// workers and must be safe for concurrent use.
type WordProcessor struct {
	client  llm.Client
	parser  *parser.Parser
	audio   AudioGenerator
	workers int
	logger  *zap.Logger
}

// NewWordProcessor creates a processor with the given collaborators.
// workers <= 0 selects DefaultWorkers.
func NewWordProcessor(client llm.Client, p *parser.Parser, gen AudioGenerator, workers int, logger *zap.Logger) *WordProcessor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WordProcessor{
		client:  client,
		parser:  p,
		audio:   gen,
		workers: workers,
		logger:  logger,
	}
}

// ProcessAll processes every word and blocks until all tasks have finished,
// success or failure; stragglers are never cancelled. A failed word is
// simply absent from the result (that filtering is the sole error channel),
// so the output is a duplicate-free subset of the input. Order is not
// preserved.
func (wp *WordProcessor) ProcessAll(ctx context.Context, words []string) []*vocab.Record {
	words = dedupe(words)
	if len(words) == 0 {
		return nil
	}

	jobs := make(chan string)
	results := make(chan *vocab.Record, len(words))

	var wg sync.WaitGroup
	for i := 0; i < wp.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for word := range jobs {
				results <- wp.processWord(ctx, word)
			}
		}()
	}

	for _, w := range words {
		jobs <- w
	}
	close(jobs)
	wg.Wait()
	close(results)

	var records []*vocab.Record
	for rec := range results {
		if rec != nil {
			records = append(records, rec)
		}
	}

	wp.logger.Info("word processing finished",
		zap.Int("requested", len(words)),
		zap.Int("completed", len(records)))
	return records
}

// processWord runs the five per-word stages in order. Every stage degrades
// on failure instead of aborting; only a panic drops the word entirely.
func (wp *WordProcessor) processWord(ctx context.Context, word string) (rec *vocab.Record) {
	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error("word task panicked",
				zap.String("word", word), zap.Any("panic", r))
			rec = nil
		}
	}()

	logger := wp.logger.With(zap.String("word", word))

	// Stage 1: detailed explanation. A failed call degrades to a
	// placeholder so the record still exists.
	raw, err := wp.client.Explain(ctx, word)
	if err != nil {
		logger.Warn("explanation request failed", zap.Error(err))
		raw = "Error retrieving explanation for: " + word
	}

	// Stage 2: parse. Never fails; worst case is word + raw text.
	rec = wp.parser.Parse(word, raw)

	// Stage 3: monologue. Optional enrichment, appended to the raw text.
	var monologueText string
	if monoRaw, err := wp.client.Monologue(ctx, word); err != nil {
		logger.Warn("monologue request failed", zap.Error(err))
	} else if mono := wp.parser.ParseMonologue(monoRaw); mono == nil {
		logger.Warn("monologue response had no narrative body")
	} else {
		rec.AppendExplanation(parser.FormatMonologue(mono))
		monologueText = parser.CleanText(mono.Text)
	}

	// Stage 4: audio, monologue-first with sentence fallback. No audio is
	// not an error.
	pair := wp.audio.GenerateForWord(ctx, word, rec.FirstExample(), monologueText)
	if pair.Pronunciation != nil {
		rec.PronunciationAudioPath = pair.Pronunciation.Path
		rec.PronunciationAudioURL = pair.Pronunciation.URL
	}
	if pair.Secondary != nil {
		rec.SecondaryAudioPath = pair.Secondary.Path
		rec.SecondaryAudioURL = pair.Secondary.URL
	}

	return rec
}

// dedupe drops case-insensitive duplicates, keeping first occurrences.
func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0:0]
	for _, w := range words {
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup || w == "" {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}
