// Package plan keeps an append-only journal of free-text planning notes,
// one JSON file per note. It is unrelated to the payload record store.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Urgency levels accepted for a plan entry.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// ErrWriteFailure wraps filesystem errors while appending a note.
var ErrWriteFailure = errors.New("plan write failed")

// ValidUrgency checks an urgency against the accepted set. Empty is allowed
// and becomes low on append.
func ValidUrgency(u string) error {
	switch u {
	case "", UrgencyLow, UrgencyMedium, UrgencyHigh:
		return nil
	}
	return fmt.Errorf("invalid urgency %q (want low, medium, or high)", u)
}

// Entry is one persisted planning note.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Urgency   string    `json:"urgency"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Book appends entries to a directory.
type Book struct {
	dir string
	log zerolog.Logger
}

// NewBook returns a book rooted at dir, created lazily on first append.
func NewBook(dir string, log zerolog.Logger) *Book {
	return &Book{dir: dir, log: log}
}

// Dir returns the plans directory.
func (b *Book) Dir() string { return b.dir }

// Append persists one note and returns the stored entry and its path.
func (b *Book) Append(text, urgency string, tags []string) (Entry, string, error) {
	if urgency == "" {
		urgency = UrgencyLow
	}
	entry := Entry{
		ID:        "plan-" + uuid.NewString()[:8],
		Text:      text,
		Urgency:   urgency,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return Entry{}, "", fmt.Errorf("%w: mkdir %s: %v", ErrWriteFailure, b.dir, err)
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return Entry{}, "", fmt.Errorf("%w: encode %s: %v", ErrWriteFailure, entry.ID, err)
	}
	path := filepath.Join(b.dir, entry.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Entry{}, "", fmt.Errorf("%w: write %s: %v", ErrWriteFailure, path, err)
	}
	b.log.Debug().Str("path", path).Str("urgency", entry.Urgency).Msg("plan logged")
	return entry, path, nil
}
