package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alex-pricope/idea-board/logging"
)

// FileStore keeps every key in one JSON object on disk.
type FileStore struct {
	Path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return "", err
	}
	v, ok := items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	items[key] = value

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal file store: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Log.Errorf("FILE: failed to create dir %s: %v", dir, err)
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	// Replace the file in one rename.
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logging.Log.Errorf("FILE: failed to write %s: %v", tmp, err)
		return fmt.Errorf("write file store: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		logging.Log.Errorf("FILE: failed to rename %s: %v", tmp, err)
		return fmt.Errorf("replace file store: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		logging.Log.Errorf("FILE: failed to read %s: %v", s.Path, err)
		return nil, fmt.Errorf("read file store: %w", err)
	}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		logging.Log.Errorf("FILE: failed to parse %s: %v", s.Path, err)
		return nil, fmt.Errorf("parse file store: %w", err)
	}
	return items, nil
}
