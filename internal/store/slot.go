// Package store owns the person list and mirrors it to a persistence slot.
package store

import (
	"fmt"

	"github.com/theirongolddev/billdue/internal/model"
)

// Slot is a persistence target for the whole person list. Every save rewrites
// the full list; the data is human-entered and stays small.
type Slot interface {
	// Load reads the previously saved list. Absent or unreadable content
	// loads as an empty list, not an error.
	Load() ([]model.Person, error)

	// Save replaces the persisted list.
	Save(people []model.Person) error

	Close() error
}

// OpenSlot opens the slot for the configured backend.
func OpenSlot(backend, dataDir string) (Slot, error) {
	switch backend {
	case "", BackendFile:
		return NewFileSlot(dataDir), nil
	case BackendSQLite:
		return OpenSQLiteSlot(dataDir)
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Storage backend names accepted in config.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)
