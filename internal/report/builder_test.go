package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quat/dailyvocab/internal/vocab"
)

var testDay = time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)

func newTestBuilder(t *testing.T) (*Builder, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBuilder(dir, nil)
	b.now = func() time.Time { return testDay }
	return b, dir
}

func TestBuild(t *testing.T) {
	b, dir := newTestBuilder(t)

	rec := vocab.New("eloquent", "**Monologue:**\nA story about eloquence.")
	rec.Pronunciation = "/ˈɛl.ə.kwənt/"
	rec.SimpleDefinition = "Fluent and persuasive."

	path, err := b.Build([]*vocab.Record{rec})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantName := "vocabulary_monologues_2026-03-15.txt"
	if filepath.Base(path) != wantName {
		t.Errorf("document name = %q, want %q", filepath.Base(path), wantName)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("document dir = %q, want %q", filepath.Dir(path), dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("document not readable: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		"DAILY ENGLISH VOCABULARY",
		"Sunday, March 15, 2026",
		"1. WORD: ELOQUENT",
		"Pronunciation: /ˈɛl.ə.kwənt/",
		"Definition: Fluent and persuasive.",
		"A story about eloquence.",
		"End of today's transcripts",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildNumbersWords(t *testing.T) {
	b, _ := newTestBuilder(t)

	records := []*vocab.Record{
		vocab.New("alpha", "raw a"),
		vocab.New("bravo", "raw b"),
		vocab.New("charlie", "raw c"),
	}
	path, err := b.Build(records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	doc := string(data)

	for _, want := range []string{"1. WORD: ALPHA", "2. WORD: BRAVO", "3. WORD: CHARLIE"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestBuildOmitsEmptyFields(t *testing.T) {
	b, _ := newTestBuilder(t)

	path, err := b.Build([]*vocab.Record{vocab.New("bare", "just raw text")})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	doc := string(data)

	if strings.Contains(doc, "Pronunciation:") {
		t.Error("empty pronunciation should be omitted")
	}
	if strings.Contains(doc, "Definition:") {
		t.Error("empty definition should be omitted")
	}
}

func TestBuildCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "documents")
	b := NewBuilder(dir, nil)
	b.now = func() time.Time { return testDay }

	if _, err := b.Build([]*vocab.Record{vocab.New("w", "raw")}); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}
