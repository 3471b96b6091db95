package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/outlay-dev/outlay/internal/model"
)

// StoreErrorKind classifies store failures.
type StoreErrorKind string

const (
	// IOFailure means an append could not open or write the backing file;
	// the record was not saved and the caller may retry.
	IOFailure StoreErrorKind = "io-failure"
	// LoadFailure means a reload could not read the backing file; the
	// caller gets an empty set and should degrade rather than crash.
	LoadFailure StoreErrorKind = "load-failure"
)

// StoreError reports a failed store operation.
type StoreError struct {
	Kind StoreErrorKind
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store owns the backing expenses file. The file is the source of truth;
// every Reload is a fresh parse of its current contents, with no cache in
// between.
type Store struct {
	path string
}

// NewStore creates a Store over the file at path. The file need not exist
// yet; a missing file means no records.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Append writes exactly one record row to the end of the backing file,
// creating it if needed. Existing content is never truncated or rewritten.
func (s *Store) Append(r model.Record) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &StoreError{Kind: IOFailure, Path: s.path, Err: err}
	}
	defer f.Close()

	if err := AppendRecord(f, r); err != nil {
		return &StoreError{Kind: IOFailure, Path: s.path, Err: err}
	}
	return nil
}

// Reload reads the whole backing file into a fresh RecordSet. A missing
// file is an empty set, not an error (first run). Malformed rows are
// dropped; their count is returned alongside the set. A read failure
// returns an empty set with a LoadFailure error.
func (s *Store) Reload() (model.RecordSet, int, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, &StoreError{Kind: LoadFailure, Path: s.path, Err: err}
	}
	defer f.Close()

	records, skipped, err := ReadRecords(f)
	if err != nil {
		return nil, skipped, &StoreError{Kind: LoadFailure, Path: s.path, Err: err}
	}
	return records, skipped, nil
}
