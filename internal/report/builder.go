// Package report assembles the run's deliverable: a transcript document of
// the day's monologues and an email digest carrying the records and the
// document as attachment.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/vocab"
)

// Builder writes the monologue transcript document for a run. The document
// lets learners read along with the audio clips or review afterwards.
type Builder struct {
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewBuilder creates a builder writing under dir.
func NewBuilder(dir string, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{dir: dir, logger: logger, now: time.Now}
}

// Build renders the transcript document and returns its path.
func (b *Builder) Build(records []*vocab.Record) (string, error) {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create document directory: %w", err)
	}

	day := b.now()
	var doc strings.Builder
	b.writeHeader(&doc, day)
	for i, r := range records {
		b.writeWordSection(&doc, r, i+1)
	}
	doc.WriteString(divider + "\nEnd of today's transcripts. Happy listening!\n")

	name := "vocabulary_monologues_" + day.Format("2006-01-02") + ".txt"
	path := filepath.Join(b.dir, name)
	if err := os.WriteFile(path, []byte(doc.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write transcript document: %w", err)
	}

	b.logger.Info("generated transcript document",
		zap.String("file", name),
		zap.Int("words", len(records)))
	return path, nil
}

const divider = "================================================================================"

func (b *Builder) writeHeader(doc *strings.Builder, day time.Time) {
	fmt.Fprintf(doc, `%s
                         DAILY ENGLISH VOCABULARY
                        Audio Monologue Transcripts
                             %s
%s

This document contains the full text of all audio monologues in today's
vocabulary email. Use it to follow along while listening, or to review the
content after listening.

%s

`, divider, day.Format("Monday, January 02, 2006"), divider, divider)
}

func (b *Builder) writeWordSection(doc *strings.Builder, r *vocab.Record, index int) {
	fmt.Fprintf(doc, "%d. WORD: %s\n", index, strings.ToUpper(r.Word))
	if r.Pronunciation != "" {
		fmt.Fprintf(doc, "   Pronunciation: %s\n", r.Pronunciation)
	}
	if r.SimpleDefinition != "" {
		fmt.Fprintf(doc, "   Definition: %s\n", r.SimpleDefinition)
	}
	doc.WriteString("\n")
	if r.RawExplanation != "" {
		doc.WriteString(r.RawExplanation)
		doc.WriteString("\n")
	}
	fmt.Fprintf(doc, "\n%s\n\n", divider)
}
