package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal"
)

// Artifact is one synthesized clip: where it landed on disk and the public
// URL it will be served under. Artifacts are written once per run; a re-run
// for the same word on the same day overwrites the same filename, which
// callers treat as an idempotent refresh.
type Artifact struct {
	Path    string
	URL     string
	Purpose Purpose
}

// Pair is the audio output for one word: the pronunciation clip and an
// optional secondary clip (monologue, or example sentence as fallback).
// Either field may be nil; a word without audio is not an error.
type Pair struct {
	Pronunciation *Artifact
	Secondary     *Artifact
}

// OrchestratorConfig configures clip placement.
type OrchestratorConfig struct {
	// StorageDir is the root of the date-partitioned audio tree.
	StorageDir string
	// BaseURL is the public prefix clips are served under.
	BaseURL string
	Logger  *zap.Logger
}

// Orchestrator decides which text gets synthesized for a word and in what
// order the fallbacks run. Safe for concurrent use.
type Orchestrator struct {
	synth      Synthesizer
	storageDir string
	baseURL    string
	logger     *zap.Logger
	now        func() time.Time
}

// NewOrchestrator wires a synthesizer to the storage layout.
func NewOrchestrator(synth Synthesizer, cfg *OrchestratorConfig) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		synth:      synth,
		storageDir: cfg.StorageDir,
		baseURL:    cfg.BaseURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Synthesize produces one clip for a word under the current day's directory.
// The filename is a pure function of the word and purpose, so repeated runs
// on the same day overwrite the same file.
func (o *Orchestrator) Synthesize(ctx context.Context, word, text string, purpose Purpose) (*Artifact, error) {
	day := o.now().Format("2006-01-02")
	name := fmt.Sprintf("%s_%s.mp3", internal.SanitizeFilename(word), purpose.fileSuffix())
	path := filepath.Join(o.storageDir, day, name)

	if err := o.synth.Synthesize(ctx, text, path, purpose); err != nil {
		return nil, err
	}
	return &Artifact{
		Path:    path,
		URL:     fmt.Sprintf("%s/%s/%s", o.baseURL, day, name),
		Purpose: purpose,
	}, nil
}

// GenerateForWord runs the per-word synthesis strategy:
//
//	pronunciation clip for the word itself, then
//	monologue clip (long timeout class) when monologue text is available,
//	falling back to the first example sentence (standard class).
//
// Every failure degrades instead of aborting; the zero-audio case returns an
// empty pair.
func (o *Orchestrator) GenerateForWord(ctx context.Context, word, example, monologue string) Pair {
	var pair Pair

	pron, err := o.Synthesize(ctx, word, word, PurposeWord)
	if err != nil {
		o.logger.Warn("pronunciation synthesis failed",
			zap.String("word", word), zap.Error(err))
	} else {
		pair.Pronunciation = pron
	}

	if monologue != "" {
		sec, err := o.Synthesize(ctx, word, monologue, PurposeMonologue)
		if err == nil {
			pair.Secondary = sec
			return pair
		}
		o.logger.Warn("monologue synthesis failed, falling back to example",
			zap.String("word", word), zap.Error(err))
	}

	if example != "" {
		sec, err := o.Synthesize(ctx, word, word+". "+example, PurposeSentence)
		if err != nil {
			o.logger.Warn("example synthesis failed",
				zap.String("word", word), zap.Error(err))
		} else {
			pair.Secondary = sec
		}
	}
	return pair
}
