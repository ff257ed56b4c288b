// Package localstore is the local storage backend: the four fitness
// collections serialized as JSON documents under fixed namespaced keys,
// persisted together in a single file. It mirrors what the web client keeps
// in browser local storage, for deployments without a postgres instance.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Fixed namespaced keys, one per collection.
const (
	KeyWorkouts = "fitprogress/workouts"
	KeySessions = "fitprogress/sessions"
	KeyLogs     = "fitprogress/logs"
)

type Store struct {
	path  string
	mutex sync.RWMutex
	data  map[string]json.RawMessage
}

// NewStore opens (or creates) the store file at the given path. A present
// but malformed file is a hard error, not a silent reset - the caller
// decides what to do with a corrupt store.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store path cannot be empty")
	}

	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("local store file [%s] not found, starting empty", path)
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(raw) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("malformed store file [%s]: %w", path, err)
	}

	return s, nil
}

// Read unmarshals the document stored under key into v.
// Returns false when the key holds nothing yet.
func (s *Store) Read(key string, v interface{}) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	raw, ok := s.data[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("malformed document under key [%s]: %w", key, err)
	}
	return true, nil
}

// Write replaces the document under key and persists the whole store to
// disk. The file is written to a temp file first and renamed over the old
// one, so a failed write never leaves a half-written store behind.
func (s *Store) Write(key string, v interface{}) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document for key [%s]: %w", key, err)
	}
	s.data[key] = raw

	return s.persist()
}

func (s *Store) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmpFile, err := os.CreateTemp(dir, "fitprogress-store-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(raw); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
