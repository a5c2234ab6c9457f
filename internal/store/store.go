// Package store persists payload records as one JSON file per record and
// reads them back for listing and summaries.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"auroraledger/internal/payload"
)

var (
	// ErrWriteFailure wraps filesystem errors while saving a record.
	ErrWriteFailure = errors.New("record write failed")
	// ErrReadFailure wraps filesystem or decode errors while reading records.
	ErrReadFailure = errors.New("record read failed")
)

// Store reads and writes records under a single directory.
type Store struct {
	dir string
	log zerolog.Logger
}

// New returns a store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string, log zerolog.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// Dir returns the records directory.
func (s *Store) Dir() string { return s.dir }

// Save writes rec to <dir>/<id>.json, creating the directory if absent, and
// returns the written path.
func (s *Store) Save(rec payload.Record) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %v", ErrWriteFailure, s.dir, err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode %s: %v", ErrWriteFailure, rec.ID, err)
	}
	path := filepath.Join(s.dir, rec.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrWriteFailure, path, err)
	}
	s.log.Debug().Str("path", path).Msg("record saved")
	return path, nil
}

// Files returns the record filenames in directory-listing order. A missing
// directory is an empty store.
func (s *Store) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrReadFailure, s.dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// All returns a lazy, finite, restartable sequence over the saved records in
// filename order. A file that fails to read or decode yields an
// ErrReadFailure element; iteration continues past it.
func (s *Store) All() iter.Seq2[payload.Record, error] {
	return func(yield func(payload.Record, error) bool) {
		names, err := s.Files()
		if err != nil {
			yield(payload.Record{}, err)
			return
		}
		for _, name := range names {
			path := filepath.Join(s.dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				if !yield(payload.Record{}, fmt.Errorf("%w: read %s: %v", ErrReadFailure, path, err)) {
					return
				}
				continue
			}
			var rec payload.Record
			if err := json.Unmarshal(data, &rec); err != nil {
				if !yield(payload.Record{}, fmt.Errorf("%w: decode %s: %v", ErrReadFailure, path, err)) {
					return
				}
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Summary aggregates the saved records.
type Summary struct {
	Count int
	Total decimal.Decimal
	Ops   map[payload.Op]int
}

// OpNames returns the operation kinds present in the summary: the fixed set
// first in display order, then anything unexpected found on disk, sorted.
func (s Summary) OpNames() []payload.Op {
	ops := make([]payload.Op, 0, len(s.Ops))
	ops = append(ops, payload.Ops...)
	var extra []payload.Op
	for op := range s.Ops {
		known := false
		for _, k := range payload.Ops {
			if op == k {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, op)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(ops, extra...)
}

// Summarize folds All() into per-operation counts and an exact total amount.
// Every supported operation appears in the counts, zeros included.
// Unreadable files are skipped with a warning.
func (s *Store) Summarize() Summary {
	sum := Summary{Ops: make(map[payload.Op]int, len(payload.Ops))}
	for _, op := range payload.Ops {
		sum.Ops[op] = 0
	}
	for rec, err := range s.All() {
		if err != nil {
			s.log.Warn().Err(err).Msg("skipping unreadable record")
			continue
		}
		sum.Count++
		sum.Total = sum.Total.Add(rec.Amount)
		sum.Ops[rec.Op]++
	}
	return sum
}
