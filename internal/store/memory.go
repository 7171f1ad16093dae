package store

import "github.com/theirongolddev/billdue/internal/model"

// MemorySlot keeps the list in memory only. Used in tests and as a scratch
// backend; nothing survives process exit.
type MemorySlot struct {
	people []model.Person
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load() ([]model.Person, error) {
	out := make([]model.Person, len(m.people))
	copy(out, m.people)
	return out, nil
}

func (m *MemorySlot) Save(people []model.Person) error {
	m.people = make([]model.Person, len(people))
	copy(m.people, people)
	return nil
}

func (m *MemorySlot) Close() error {
	return nil
}
