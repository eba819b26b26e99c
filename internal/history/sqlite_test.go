package history

import (
	"path/filepath"
	"testing"

	"github.com/quat/dailyvocab/internal/vocab"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUsedWordsEmpty(t *testing.T) {
	s := openTestStore(t)
	used, err := s.UsedWords()
	if err != nil {
		t.Fatalf("UsedWords() error = %v", err)
	}
	if len(used) != 0 {
		t.Errorf("new store has %d used words, want 0", len(used))
	}
}

func TestAppendSummaryAndUsedWords(t *testing.T) {
	s := openTestStore(t)

	records := []*vocab.Record{
		vocab.New("Eloquent", "raw explanation one"),
		vocab.New("resilient", "raw explanation two"),
	}
	if err := s.AppendSummary(records); err != nil {
		t.Fatalf("AppendSummary() error = %v", err)
	}

	used, err := s.UsedWords()
	if err != nil {
		t.Fatalf("UsedWords() error = %v", err)
	}
	if len(used) != 2 {
		t.Fatalf("got %d used words, want 2: %v", len(used), used)
	}
	// Lookup is lowercased regardless of stored casing.
	if _, ok := used["eloquent"]; !ok {
		t.Error("expected lowercased 'eloquent' in used words")
	}
	if _, ok := used["resilient"]; !ok {
		t.Error("expected 'resilient' in used words")
	}
}

func TestUsedWordsDeduplicates(t *testing.T) {
	s := openTestStore(t)

	if err := s.AppendSummary([]*vocab.Record{vocab.New("word", "day one")}); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendSummary([]*vocab.Record{vocab.New("WORD", "day two")}); err != nil {
		t.Fatal(err)
	}

	used, err := s.UsedWords()
	if err != nil {
		t.Fatal(err)
	}
	if len(used) != 1 {
		t.Errorf("got %d used words, want 1 after case-folding: %v", len(used), used)
	}
}

func TestAppendDetailed(t *testing.T) {
	s := openTestStore(t)

	rec := vocab.New("eloquent", "raw text")
	rec.Pronunciation = "/ˈɛl.ə.kwənt/"
	rec.PartOfSpeech = "adjective"
	rec.SimpleDefinition = "Fluent and persuasive."
	rec.Examples = []string{"First example.", "Second example."}
	rec.PronunciationAudioPath = "/audio/2026-03-15/eloquent_pronunciation.mp3"

	if err := s.AppendDetailed([]*vocab.Record{rec}); err != nil {
		t.Fatalf("AppendDetailed() error = %v", err)
	}

	var word, pron, examples, audioPath string
	err := s.db.QueryRow(`SELECT word, pronunciation, examples, pronunciation_audio
		FROM words_detailed`).Scan(&word, &pron, &examples, &audioPath)
	if err != nil {
		t.Fatalf("reading detailed row: %v", err)
	}
	if word != "eloquent" {
		t.Errorf("word = %q", word)
	}
	if pron != "/ˈɛl.ə.kwənt/" {
		t.Errorf("pronunciation = %q", pron)
	}
	if examples != "First example.\nSecond example." {
		t.Errorf("examples = %q", examples)
	}
	if audioPath != rec.PronunciationAudioPath {
		t.Errorf("pronunciation_audio = %q", audioPath)
	}
}

func TestAppendEmptyBatch(t *testing.T) {
	s := openTestStore(t)
	if err := s.AppendSummary(nil); err != nil {
		t.Errorf("AppendSummary(nil) error = %v", err)
	}
	if err := s.AppendDetailed(nil); err != nil {
		t.Errorf("AppendDetailed(nil) error = %v", err)
	}
}

func TestDetailedDoesNotAffectUsedWords(t *testing.T) {
	s := openTestStore(t)
	if err := s.AppendDetailed([]*vocab.Record{vocab.New("detailonly", "raw")}); err != nil {
		t.Fatal(err)
	}
	used, err := s.UsedWords()
	if err != nil {
		t.Fatal(err)
	}
	if len(used) != 0 {
		t.Errorf("detailed rows leaked into dedup set: %v", used)
	}
}
