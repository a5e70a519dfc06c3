package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"careproxy/pkg/models"
)

const (
	latestFile   = "latest.json"
	historyFile  = "history.json"
	historyLimit = 10
)

// Store persists conversation records under a base directory as two JSON
// documents: latest.json holds the most recent record and history.json
// holds the last 10, oldest first. Both are replaced whole on every save.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	baseDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", dir, err)
	}

	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create conversation dir %s: %w", baseDir, err)
	}

	return &Store{dir: baseDir}, nil
}

func (s *Store) latestPath() string  { return filepath.Join(s.dir, latestFile) }
func (s *Store) historyPath() string { return filepath.Join(s.dir, historyFile) }

// Save overwrites the latest record and appends to the capped history log,
// evicting the oldest entry beyond the cap. Saves are serialized under a
// mutex so concurrent writers cannot lose history entries. A corrupt history
// document aborts the whole save; nothing is written in that case.
func (s *Store) Save(record models.ConversationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.readHistory()
	if err != nil {
		return err
	}

	history = append(history, record)
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	if err := s.writeJSON(s.latestPath(), record); err != nil {
		return err
	}

	return s.writeJSON(s.historyPath(), history)
}

// Latest returns the most recently saved record. The second return value is
// false when no conversation has ever been saved.
func (s *Store) Latest() (models.ConversationRecord, bool, error) {
	data, err := os.ReadFile(s.latestPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.ConversationRecord{}, false, nil
		}
		return models.ConversationRecord{}, false, fmt.Errorf("failed to read latest conversation: %w", err)
	}

	var record models.ConversationRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.ConversationRecord{}, false, fmt.Errorf("latest document is corrupt: %w", err)
	}

	return record, true, nil
}

// History returns saved records oldest first, at most 10. A missing history
// document yields an empty slice, not an error.
func (s *Store) History() ([]models.ConversationRecord, error) {
	return s.readHistory()
}

func (s *Store) readHistory() ([]models.ConversationRecord, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.ConversationRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var history []models.ConversationRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("history document is corrupt: %w", err)
	}

	if history == nil {
		history = []models.ConversationRecord{}
	}
	return history, nil
}

// writeJSON replaces path atomically via a temp file and rename, so readers
// never observe a partially written document.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
