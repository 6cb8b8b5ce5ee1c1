// Package feedback records like/dislike verdicts on suggested outfits in a
// local JSON file. Entries are keyed by the outfit key (sorted pipe-joined
// item URIs). The store is write-only today: nothing reads verdicts back
// into scoring.
package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Verdict string

const (
	VerdictLike    Verdict = "like"
	VerdictDislike Verdict = "dislike"
)

// Entry captures one verdict together with the suggestion context at the
// time it was recorded.
type Entry struct {
	Verdict    Verdict   `json:"verdict"`
	Score      float64   `json:"score"`
	Style      string    `json:"style"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Store struct {
	path    string
	entries map[string]*Entry
}

// Open loads the feedback file. A missing or empty file yields an empty
// store.
func Open(path string) (*Store, error) {
	store := &Store{
		path:    path,
		entries: make(map[string]*Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("reading feedback file %q: %w", path, err)
	}

	if len(data) == 0 {
		return store, nil
	}

	if err := json.Unmarshal(data, &store.entries); err != nil {
		return nil, fmt.Errorf("parsing feedback file %q: %w", path, err)
	}

	return store, nil
}

// Record stores a verdict for an outfit key, replacing any earlier one.
func (s *Store) Record(key string, verdict Verdict, score float64, style string) {
	s.entries[key] = &Entry{
		Verdict:    verdict,
		Score:      score,
		Style:      style,
		RecordedAt: time.Now().UTC(),
	}
}

func (s *Store) Get(key string) *Entry {
	return s.entries[key]
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding feedback: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing feedback file %q: %w", s.path, err)
	}
	return nil
}
