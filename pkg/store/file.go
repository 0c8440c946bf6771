package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/matzehuels/showviz/pkg/errors"
)

// File is a file-based store. Each plot is a JSON file in one directory.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file store.
// If baseDir is empty, defaults to ~/.cache/showviz/plots/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
		baseDir = filepath.Join(dir, "showviz", "plots")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create plot dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (s *File) recordPath(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid plot id %q", id)
	}
	return filepath.Join(s.baseDir, id+".json"), nil
}

func (s *File) Get(_ context.Context, id string) (*Record, error) {
	path, err := s.recordPath(id)
	if err != nil {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read plot file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse plot %s: %w", id, err)
	}
	return &rec, nil
}

func (s *File) Put(_ context.Context, rec Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}
	path, err := s.recordPath(rec.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write plot file: %w", err)
	}
	return nil
}

func (s *File) Delete(_ context.Context, id string) error {
	path, err := s.recordPath(id)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove plot file: %w", err)
	}
	return nil
}

func (s *File) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read plot dir: %w", err)
	}

	var recs []Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	sortNewestFirst(recs)
	return recs, nil
}

func (s *File) Close() error { return nil }

// Path returns the directory holding plot files.
func (s *File) Path() string {
	return s.baseDir
}

var _ Store = (*File)(nil)
