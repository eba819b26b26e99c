package selector

import (
	"context"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

const (
	maxAttempts    = 5
	minBatch       = 20
	broadenedBatch = 10
)

// Selector assembles the day's word list from a candidate source and the
// set of previously studied words.
type Selector struct {
	source CandidateSource
	logger *zap.Logger
}

// New creates a selector over the given candidate source.
func New(source CandidateSource, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{source: source, logger: logger}
}

// Select returns up to total words in randomized order. reviewCount slots are
// reserved for words drawn uniformly at random from usedWords (skipped when
// history is empty, those slots fall back to fresh generation); the rest are
// fresh words absent from usedWords, matched case-insensitively. The result
// may be shorter than total when the candidate space is exhausted; callers
// substitute a fallback set rather than failing.
func (s *Selector) Select(ctx context.Context, total, reviewCount int, usedWords map[string]struct{}) []string {
	if total <= 0 {
		return nil
	}
	if reviewCount > total {
		reviewCount = total
	}

	reviews := s.pickReviews(reviewCount, usedWords)
	fresh := s.pickFresh(ctx, total-len(reviews), usedWords)

	out := append(reviews, fresh...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	s.logger.Info("selected words for today",
		zap.Int("requested", total),
		zap.Int("review", len(reviews)),
		zap.Int("fresh", len(fresh)))
	return out
}

// pickReviews draws count distinct words uniformly at random from history.
func (s *Selector) pickReviews(count int, usedWords map[string]struct{}) []string {
	if count <= 0 || len(usedWords) == 0 {
		return nil
	}
	pool := make([]string, 0, len(usedWords))
	for w := range usedWords {
		pool = append(pool, w)
	}
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count < len(pool) {
		pool = pool[:count]
	}
	return pool
}

// pickFresh fills need slots with words outside history. Each attempt
// over-generates so duplicate-heavy responses still make progress; when
// attempts run out, the search broadens across every level and category
// bucket until the quota is met or the space is exhausted.
func (s *Selector) pickFresh(ctx context.Context, need int, usedWords map[string]struct{}) []string {
	if need <= 0 {
		return nil
	}

	chosen := make(map[string]struct{}, need)
	var fresh []string

	add := func(word string) bool {
		key := strings.ToLower(word)
		if _, used := usedWords[key]; used {
			return false
		}
		if _, dup := chosen[key]; dup {
			return false
		}
		chosen[key] = struct{}{}
		fresh = append(fresh, word)
		return true
	}

	for attempt := 1; attempt <= maxAttempts && len(fresh) < need; attempt++ {
		batch := 2 * (need - len(fresh))
		if batch < minBatch {
			batch = minBatch
		}
		candidates, err := s.source.Mixed(ctx, batch)
		if err != nil {
			s.logger.Warn("candidate generation failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		for _, w := range candidates {
			if add(w) && len(fresh) >= need {
				break
			}
		}
		s.logger.Debug("fresh word attempt finished",
			zap.Int("attempt", attempt), zap.Int("have", len(fresh)))
	}

	if len(fresh) < need {
		s.logger.Info("broadening search across all levels and categories",
			zap.Int("missing", need-len(fresh)))
	broaden:
		for _, level := range Levels() {
			for _, category := range Categories() {
				candidates, err := s.source.Words(ctx, level, category, broadenedBatch)
				if err != nil {
					continue
				}
				for _, w := range candidates {
					if add(w) && len(fresh) >= need {
						break broaden
					}
				}
			}
		}
	}

	return fresh
}

// FallbackWords is the hardcoded set callers substitute when selection comes
// back empty-handed.
func FallbackWords(count int) []string {
	words := []string{
		"eloquent", "resilient", "meticulous", "ubiquitous", "serendipity",
		"ephemeral", "pragmatic", "contemplative", "inevitable", "sophisticated",
		"ambiguous", "diligent", "substantiate", "inherent", "prominent",
		"comprehensive", "deteriorate", "facilitate", "preliminary", "substantial",
	}
	rand.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	if count < len(words) {
		words = words[:count]
	}
	return words
}
