package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quat/dailyvocab/internal/vocab"
)

// SQLiteStore implements Store on a local SQLite database. Two tables mirror
// the two views the pipeline needs: a slim summary log used for
// deduplication and a detailed log carrying every parsed field and the audio
// paths.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the history database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			explanation TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_words_word ON words(word)`,
		`CREATE TABLE IF NOT EXISTS words_detailed (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL,
			pronunciation TEXT,
			part_of_speech TEXT,
			simple_definition TEXT,
			advanced_definition TEXT,
			examples TEXT,
			collocations TEXT,
			synonyms TEXT,
			antonyms TEXT,
			confused_words TEXT,
			word_family TEXT,
			translation TEXT,
			pronunciation_audio TEXT,
			secondary_audio TEXT,
			created_at TEXT NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to create history tables: %w", err)
		}
	}
	return nil
}

// UsedWords returns all previously studied words, lowercased for
// case-insensitive matching.
func (s *SQLiteStore) UsedWords() (map[string]struct{}, error) {
	rows, err := s.db.Query(`SELECT DISTINCT lower(word) FROM words`)
	if err != nil {
		return nil, fmt.Errorf("failed to read used words: %w", err)
	}
	defer rows.Close()

	used := make(map[string]struct{})
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		used[w] = struct{}{}
	}
	return used, rows.Err()
}

// AppendSummary appends one summary row per record.
func (s *SQLiteStore) AppendSummary(records []*vocab.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO words (word, explanation, created_at) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for _, r := range records {
		if _, err := stmt.Exec(r.Word, r.RawExplanation, now); err != nil {
			return fmt.Errorf("failed to append summary for %q: %w", r.Word, err)
		}
	}
	return tx.Commit()
}

// AppendDetailed appends one detailed row per record.
func (s *SQLiteStore) AppendDetailed(records []*vocab.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO words_detailed (
		word, pronunciation, part_of_speech, simple_definition,
		advanced_definition, examples, collocations, synonyms, antonyms,
		confused_words, word_family, translation,
		pronunciation_audio, secondary_audio, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for _, r := range records {
		_, err := stmt.Exec(
			r.Word, r.Pronunciation, r.PartOfSpeech, r.SimpleDefinition,
			r.AdvancedDef, strings.Join(r.Examples, "\n"), r.Collocations,
			r.Synonyms, r.Antonyms, r.ConfusedWords, r.WordFamily,
			r.Translation, r.PronunciationAudioPath, r.SecondaryAudioPath, now,
		)
		if err != nil {
			return fmt.Errorf("failed to append detail for %q: %w", r.Word, err)
		}
	}
	return tx.Commit()
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
