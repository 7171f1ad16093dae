package store

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/billdue/internal/model"
)

// ErrNotFound reports that an id or name matched nobody in the list.
var ErrNotFound = errors.New("no matching person")

// Store is the single owner of the person list. It hydrates from its slot
// once at construction and rewrites the slot after every mutation. All
// access happens on the caller's goroutine; there is no background work.
type Store struct {
	slot   Slot
	people []model.Person
	now    func() time.Time
}

// New hydrates a store from the slot. A load failure is logged and treated
// as an empty list so a corrupt data file never blocks startup.
func New(slot Slot) *Store {
	people, err := slot.Load()
	if err != nil {
		slog.Warn("could not load saved people, starting empty", "err", err)
		people = nil
	}
	slog.Debug("store hydrated", "people", len(people))

	return &Store{
		slot:   slot,
		people: people,
		now:    time.Now,
	}
}

// People returns a copy of the list in insertion order.
func (s *Store) People() []model.Person {
	out := make([]model.Person, len(s.people))
	copy(out, s.people)
	return out
}

// Len returns the number of tracked people.
func (s *Store) Len() int {
	return len(s.people)
}

// Get returns the person with the given id.
func (s *Store) Get(id string) (model.Person, bool) {
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return model.Person{}, false
}

// Add appends a new person built from the draft and persists the list.
// The caller validates the draft; Add only assigns identity and position.
func (s *Store) Add(d model.Draft) (model.Person, error) {
	p := model.Person{
		ID:           s.newID(),
		Name:         d.Name,
		CardLastFour: d.CardLastFour,
		BillingDate:  d.BillingDate,
		Amount:       d.Amount,
		IsPaid:       false,
	}

	s.people = append(s.people, p)
	if err := s.persist(); err != nil {
		// Keep memory and slot in step: a person that never hit the slot
		// must not linger in the list and ride along on the next save.
		s.people = s.people[:len(s.people)-1]
		return model.Person{}, err
	}

	slog.Debug("person added", "id", p.ID, "name", p.Name)
	return p, nil
}

// Remove deletes the person with the given id. Unknown ids are a no-op.
func (s *Store) Remove(id string) error {
	kept := make([]model.Person, 0, len(s.people))
	for _, p := range s.people {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.people) {
		return nil
	}

	prev := s.people
	s.people = kept
	if err := s.persist(); err != nil {
		s.people = prev
		return err
	}

	slog.Debug("person removed", "id", id)
	return nil
}

// TogglePaid flips isPaid on the matching person. Unknown ids are a no-op.
func (s *Store) TogglePaid(id string) error {
	for i := range s.people {
		if s.people[i].ID == id {
			s.people[i].IsPaid = !s.people[i].IsPaid
			if err := s.persist(); err != nil {
				s.people[i].IsPaid = !s.people[i].IsPaid
				return err
			}
			slog.Debug("paid toggled", "id", id, "isPaid", s.people[i].IsPaid)
			return nil
		}
	}
	return nil
}

// Resolve maps an id or a person's name to an id. Names match
// case-insensitively and must be unique among the tracked people.
func (s *Store) Resolve(arg string) (string, error) {
	if _, ok := s.Get(arg); ok {
		return arg, nil
	}

	var matches []model.Person
	for _, p := range s.people {
		if strings.EqualFold(p.Name, arg) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNotFound, arg)
	case 1:
		return matches[0].ID, nil
	default:
		return "", fmt.Errorf("%q matches %d people, use an id", arg, len(matches))
	}
}

func (s *Store) persist() error {
	if err := s.slot.Save(s.people); err != nil {
		return fmt.Errorf("saving people: %w", err)
	}
	return nil
}

// newID returns the creation timestamp in milliseconds as a string, bumped
// past any existing id so two adds in the same millisecond stay distinct.
func (s *Store) newID() string {
	candidate := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(candidate, 10)
		if _, taken := s.Get(id); !taken {
			return id
		}
		candidate++
	}
}
