package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/billdue/internal/model"
)

const (
	peopleFileName = "people.json"
	schemaVersion  = 1
)

// envelope is the on-disk layout: a version tag around the person list.
// Earlier versions wrote the bare array; Load still accepts that form.
type envelope struct {
	Version int            `json:"version"`
	People  []model.Person `json:"people"`
}

// FileSlot persists the list as a single JSON document under dataDir.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file slot rooted at dataDir.
func NewFileSlot(dataDir string) *FileSlot {
	return &FileSlot{path: filepath.Join(dataDir, peopleFileName)}
}

// Path returns the backing file location.
func (f *FileSlot) Path() string {
	return f.path
}

// Load reads the saved list. A missing file or unparseable content is an
// empty list; only I/O failures on an existing file surface as errors.
func (f *FileSlot) Load() ([]model.Person, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Version > 0 {
		return env.People, nil
	}

	// Legacy layout: bare array of people.
	var people []model.Person
	if err := json.Unmarshal(data, &people); err == nil {
		return people, nil
	}

	// Corrupt content counts as no data.
	return nil, nil
}

// Save atomically rewrites the file with the current list.
func (f *FileSlot) Save(people []model.Person) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(envelope{Version: schemaVersion, People: people}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding people: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replacing %s: %w", f.path, err)
	}
	return nil
}

// Close implements Slot. File handles aren't held between operations.
func (f *FileSlot) Close() error {
	return nil
}
