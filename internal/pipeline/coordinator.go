package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/history"
	"github.com/quat/dailyvocab/internal/report"
	"github.com/quat/dailyvocab/internal/selector"
	"github.com/quat/dailyvocab/internal/vocab"
)

// WordSource picks the day's word list. *selector.Selector implements it.
type WordSource interface {
	Select(ctx context.Context, total, reviewCount int, usedWords map[string]struct{}) []string
}

// Processor runs the per-word pipeline. *WordProcessor implements it.
type Processor interface {
	ProcessAll(ctx context.Context, words []string) []*vocab.Record
}

// DocumentBuilder writes the transcript attachment. *report.Builder
// implements it.
type DocumentBuilder interface {
	Build(records []*vocab.Record) (string, error)
}

// CoordinatorConfig carries the run-shaping knobs.
type CoordinatorConfig struct {
	// WordsPerDay is the total list size for one run.
	WordsPerDay int
	// ReviewCount slots are reserved for previously studied words.
	ReviewCount int
}

// Coordinator runs one complete daily cycle: read history, select words,
// process them, build and deliver the digest, then append to history.
type Coordinator struct {
	source    WordSource
	processor Processor
	store     history.Store
	builder   DocumentBuilder
	deliverer report.Deliverer
	cfg       CoordinatorConfig
	logger    *zap.Logger
}

// NewCoordinator wires the run collaborators together.
func NewCoordinator(source WordSource, proc Processor, store history.Store, builder DocumentBuilder, deliverer report.Deliverer, cfg CoordinatorConfig, logger *zap.Logger) *Coordinator {
	if cfg.WordsPerDay <= 0 {
		cfg.WordsPerDay = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		source:    source,
		processor: proc,
		store:     store,
		builder:   builder,
		deliverer: deliverer,
		cfg:       cfg,
		logger:    logger,
	}
}

// RunDaily executes one cycle. Per-word failures were already absorbed by
// the processor; only run-level collaborators (history reads and appends,
// delivery, an entirely empty result) abort the run.
func (c *Coordinator) RunDaily(ctx context.Context) error {
	used, err := c.store.UsedWords()
	if err != nil {
		return fmt.Errorf("reading word history: %w", err)
	}
	c.logger.Info("starting daily run",
		zap.Int("words_per_day", c.cfg.WordsPerDay),
		zap.Int("history_size", len(used)))

	words := c.source.Select(ctx, c.cfg.WordsPerDay, c.cfg.ReviewCount, used)
	if len(words) == 0 {
		c.logger.Warn("selection came back empty, using fallback word list")
		words = selector.FallbackWords(c.cfg.WordsPerDay)
	}

	records := c.processor.ProcessAll(ctx, words)
	if len(records) == 0 {
		return fmt.Errorf("no words processed successfully out of %d selected", len(words))
	}

	// A missing attachment degrades the mail, it does not abort the run.
	attachment, err := c.builder.Build(records)
	if err != nil {
		c.logger.Warn("building transcript document failed", zap.Error(err))
		attachment = ""
	}

	if err := c.deliverer.RenderAndDeliver(records, attachment); err != nil {
		return fmt.Errorf("delivering digest: %w", err)
	}

	if err := c.store.AppendSummary(records); err != nil {
		return fmt.Errorf("appending word history: %w", err)
	}
	if err := c.store.AppendDetailed(records); err != nil {
		return fmt.Errorf("appending detailed history: %w", err)
	}

	c.logger.Info("daily run finished",
		zap.Int("selected", len(words)),
		zap.Int("completed", len(records)))
	return nil
}
