package selector

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/llm"
)

// GeneratedSource asks the language model for level/category word lists and
// validates the result. Lists are cached per bucket so one run does not pay
// for the same prompt twice, and the embedded catalog backs every failure
// path.
type GeneratedSource struct {
	client   llm.Client
	fallback *Catalog
	logger   *zap.Logger

	mu    sync.Mutex
	cache map[string][]string
}

// NewGeneratedSource wires a model client in front of the catalog.
func NewGeneratedSource(client llm.Client, fallback *Catalog, logger *zap.Logger) *GeneratedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratedSource{
		client:   client,
		fallback: fallback,
		logger:   logger,
		cache:    make(map[string][]string),
	}
}

// Words returns up to count model-generated words for one bucket, falling
// back to the catalog when the model call or parse fails.
func (g *GeneratedSource) Words(ctx context.Context, level Level, category Category, count int) ([]string, error) {
	key := fmt.Sprintf("%s_%s_%d", level, category, count)

	g.mu.Lock()
	cached, ok := g.cache[key]
	g.mu.Unlock()
	if ok {
		words := append([]string(nil), cached...)
		if count < len(words) {
			words = words[:count]
		}
		return words, nil
	}

	resp, err := g.client.Generate(ctx, wordListPrompt(level, category, count))
	if err != nil {
		g.logger.Warn("word list generation failed, using catalog",
			zap.String("level", string(level)),
			zap.String("category", string(category)),
			zap.Error(err))
		return g.fallback.Words(ctx, level, category, count)
	}

	words := parseWordList(resp)
	if len(words) == 0 {
		g.logger.Warn("no usable words in model response, using catalog",
			zap.String("level", string(level)),
			zap.String("category", string(category)))
		return g.fallback.Words(ctx, level, category, count)
	}

	g.mu.Lock()
	g.cache[key] = words
	g.mu.Unlock()

	if count < len(words) {
		words = words[:count]
	}
	return append([]string(nil), words...), nil
}

// Mixed draws across the buckets the catalog weights highest, mirroring the
// catalog's distribution but with generated words.
func (g *GeneratedSource) Mixed(ctx context.Context, count int) ([]string, error) {
	third := count / 3
	if third < 1 {
		third = 1
	}

	var all []string
	for _, bucket := range []struct {
		level    Level
		category Category
	}{
		{LevelIntermediate, CategoryAcademic},
		{LevelAdvanced, CategoryBusiness},
		{LevelIntermediate, CategoryGeneral},
	} {
		words, err := g.Words(ctx, bucket.level, bucket.category, third)
		if err == nil {
			all = append(all, words...)
		}
	}
	if len(all) < count {
		words, err := g.Words(ctx, LevelAdvanced, CategoryScientific, count-len(all))
		if err == nil {
			all = append(all, words...)
		}
	}

	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, w := range all {
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	if count < len(out) {
		out = out[:count]
	}
	return out, nil
}

func wordListPrompt(level Level, category Category, count int) string {
	return fmt.Sprintf(`Generate exactly %d English vocabulary words suitable for %s level learners.
Focus on %s vocabulary.

Requirements:
- Words should be at %s difficulty level
- Include a mix of nouns, verbs, adjectives, and adverbs
- Avoid very basic words and extremely obscure words
- Return ONLY the words, one per line, no definitions or explanations
- No numbering or bullet points, just the words

Generate %d %s %s vocabulary words now:`,
		count, level, category, level, count, level, category)
}

var wordLine = regexp.MustCompile(`^[a-zA-Z]+$`)

// stopWords are basic words a word-list response should never contribute.
var stopWords = map[string]struct{}{
	"that": {}, "with": {}, "have": {}, "this": {}, "will": {}, "your": {},
	"from": {}, "they": {}, "know": {}, "want": {}, "been": {}, "good": {},
	"much": {}, "some": {}, "time": {}, "very": {}, "when": {}, "come": {},
	"here": {}, "just": {}, "like": {}, "long": {}, "make": {}, "many": {},
	"over": {}, "such": {}, "take": {}, "than": {}, "them": {}, "well": {},
	"were": {}, "what": {},
}

// parseWordList extracts valid vocabulary words from a one-per-line model
// response, tolerating stray numbering and bullets.
func parseWordList(resp string) []string {
	var words []string
	for _, line := range strings.Split(resp, "\n") {
		w := strings.TrimSpace(line)
		w = strings.TrimLeft(w, "-*•0123456789. \t")
		w = strings.ToLower(strings.TrimSpace(w))
		if !validWord(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

func validWord(w string) bool {
	if len(w) < 4 || len(w) > 15 || !wordLine.MatchString(w) {
		return false
	}
	_, stop := stopWords[w]
	return !stop
}
