package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/repository"
)

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// memFolders keeps insertion order so listings are deterministic before sorting.
type memFolders struct {
	rows []model.Folder
	err  error
}

var _ repository.FolderRepository = (*memFolders)(nil)

func (m *memFolders) find(owner string, id uuid.UUID) int {
	for i := range m.rows {
		if m.rows[i].OwnerID == owner && m.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memFolders) Create(_ context.Context, f model.Folder) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, f)
	return nil
}

func (m *memFolders) Get(_ context.Context, owner string, id uuid.UUID) (*model.Folder, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := m.find(owner, id)
	if i < 0 {
		return nil, errs.ErrNotFound
	}
	f := m.rows[i]
	return &f, nil
}

func (m *memFolders) CountByOwner(_ context.Context, owner string) (int, error) {
	n := 0
	for _, f := range m.rows {
		if f.OwnerID == owner {
			n++
		}
	}
	return n, m.err
}

func (m *memFolders) ListByParent(_ context.Context, owner string, parent *uuid.UUID) ([]model.Folder, error) {
	var out []model.Folder
	for _, f := range m.rows {
		if f.OwnerID == owner && sameParent(f.ParentID, parent) {
			out = append(out, f)
		}
	}
	return out, m.err
}

func (m *memFolders) Rename(_ context.Context, owner string, id uuid.UUID, name string) error {
	i := m.find(owner, id)
	if i < 0 {
		return errs.ErrNotFound
	}
	m.rows[i].Name = name
	return nil
}

func (m *memFolders) ToggleFavorite(_ context.Context, owner string, id uuid.UUID) (bool, error) {
	i := m.find(owner, id)
	if i < 0 {
		return false, errs.ErrNotFound
	}
	m.rows[i].IsFavorite = !m.rows[i].IsFavorite
	return m.rows[i].IsFavorite, nil
}

func (m *memFolders) Delete(_ context.Context, owner string, id uuid.UUID) error {
	i := m.find(owner, id)
	if i < 0 {
		return errs.ErrNotFound
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

type memDecks struct {
	rows []model.Deck
}

var _ repository.DeckRepository = (*memDecks)(nil)

func (m *memDecks) find(owner string, id uuid.UUID) int {
	for i := range m.rows {
		if m.rows[i].OwnerID == owner && m.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memDecks) Create(_ context.Context, d model.Deck) error {
	m.rows = append(m.rows, d)
	return nil
}

func (m *memDecks) Get(_ context.Context, owner string, id uuid.UUID) (*model.Deck, error) {
	i := m.find(owner, id)
	if i < 0 {
		return nil, errs.ErrNotFound
	}
	d := m.rows[i]
	return &d, nil
}

func (m *memDecks) CountByFolder(_ context.Context, owner string, folder *uuid.UUID) (int, error) {
	n := 0
	for _, d := range m.rows {
		if d.OwnerID == owner && sameParent(d.FolderID, folder) {
			n++
		}
	}
	return n, nil
}

func (m *memDecks) ListByFolder(_ context.Context, owner string, folder *uuid.UUID) ([]model.Deck, error) {
	var out []model.Deck
	for _, d := range m.rows {
		if d.OwnerID == owner && sameParent(d.FolderID, folder) {
			d.NumCards, d.Cards = len(d.Cards), nil
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDecks) Rename(_ context.Context, owner string, id uuid.UUID, topic string) error {
	i := m.find(owner, id)
	if i < 0 {
		return errs.ErrNotFound
	}
	m.rows[i].Topic = topic
	return nil
}

func (m *memDecks) ToggleFavorite(_ context.Context, owner string, id uuid.UUID) (bool, error) {
	i := m.find(owner, id)
	if i < 0 {
		return false, errs.ErrNotFound
	}
	m.rows[i].IsFavorite = !m.rows[i].IsFavorite
	return m.rows[i].IsFavorite, nil
}

func (m *memDecks) Delete(_ context.Context, owner string, id uuid.UUID) error {
	if i := m.find(owner, id); i >= 0 {
		m.rows = append(m.rows[:i], m.rows[i+1:]...)
	}
	return nil
}
