// Package history persists which words have been studied. The pipeline reads
// the full history before a run to deduplicate selection and appends the
// run's results afterwards; it is the sole writer during a run, so no
// locking contract is needed beyond the database's own.
package history

import "github.com/quat/dailyvocab/internal/vocab"

// Store is the history collaborator.
type Store interface {
	// UsedWords returns every previously studied word, lowercased.
	UsedWords() (map[string]struct{}, error)

	// AppendSummary records word + raw explanation rows for a run.
	AppendSummary(records []*vocab.Record) error

	// AppendDetailed records all parsed fields and audio paths for a run.
	AppendDetailed(records []*vocab.Record) error

	Close() error
}
