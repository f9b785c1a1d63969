package guest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

// Deck is a deck saved without an account. Guest decks have no folders.
type Deck struct {
	ID        string       `json:"id"`
	Topic     string       `json:"topic" validate:"required,max=250"`
	Cards     []model.Card `json:"cards" validate:"required,min=1,max=25,dive"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Store persists guest decks in a single JSON file.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
	now   func() time.Time
	v     *validator.Validate
}

// NewStore opens (lazily) dir/guest_decks.json.
func NewStore(dir string) *Store {
	return &Store{
		path:  filepath.Join(dir, "guest_decks.json"),
		limit: model.GuestDeckLimit,
		now:   time.Now,
		v:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns decks newest first.
func (s *Store) List() ([]Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	decks, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(decks, func(i, j int) bool { return decks[i].CreatedAt.After(decks[j].CreatedAt) })
	return decks, nil
}

// Get returns the deck with id or errs.ErrNotFound.
func (s *Store) Get(id string) (*Deck, error) {
	decks, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range decks {
		if decks[i].ID == id {
			return &decks[i], nil
		}
	}
	return nil, fmt.Errorf("guest deck %s: %w", id, errs.ErrNotFound)
}

// Save stores a new deck and returns it with its id.
func (s *Store) Save(topic string, cards []model.Card) (*Deck, error) {
	now := s.now()
	d := Deck{
		ID:        fmt.Sprintf("guest_%d", now.UnixMilli()),
		Topic:     strings.TrimSpace(topic),
		Cards:     append([]model.Card(nil), cards...),
		CreatedAt: now.UTC(),
	}
	if err := s.v.Struct(d); err != nil {
		return nil, errs.Invalid("validation: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	decks, err := s.load()
	if err != nil {
		return nil, err
	}
	if len(decks) >= s.limit {
		return nil, fmt.Errorf("guest decks: %d of %d used: %w", len(decks), s.limit, errs.ErrCapacityExceeded)
	}
	for _, e := range decks {
		if e.ID == d.ID {
			d.ID = fmt.Sprintf("guest_%d_%d", now.UnixMilli(), len(decks))
		}
	}
	decks = append(decks, d)
	if err := s.write(decks); err != nil {
		return nil, err
	}
	return &d, nil
}

// Delete removes a deck; unknown ids are ignored.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	decks, err := s.load()
	if err != nil {
		return err
	}
	out := decks[:0]
	for _, d := range decks {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return s.write(out)
}

func (s *Store) load() ([]Deck, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var decks []Deck
	if err := json.Unmarshal(b, &decks); err != nil {
		return nil, fmt.Errorf("guest store %s: %w", s.path, err)
	}
	return decks, nil
}

func (s *Store) write(decks []Deck) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(decks, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
