// Package repository declares storage contracts consumed by the service layer.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashdeck/internal/model"
)

// FolderRepository stores workspace folders. Every call is scoped to ownerID.
type FolderRepository interface {
	// Create inserts a new folder.
	Create(ctx context.Context, f model.Folder) error
	// Get returns a single folder or errs.ErrNotFound.
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Folder, error)
	// CountByOwner counts all folders of the owner regardless of parent.
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	// ListByParent returns folders whose parent equals parentID (root when nil),
	// ordered by created_at, id.
	ListByParent(ctx context.Context, ownerID string, parentID *uuid.UUID) ([]model.Folder, error)
	// Rename replaces the folder name.
	Rename(ctx context.Context, ownerID string, id uuid.UUID, name string) error
	// ToggleFavorite flips the favorite flag and returns the new value.
	ToggleFavorite(ctx context.Context, ownerID string, id uuid.UUID) (bool, error)
	// Delete removes the folder.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// DeckRepository stores decks with their cards.
type DeckRepository interface {
	Create(ctx context.Context, d model.Deck) error
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Deck, error)
	// CountByFolder counts the owner's decks in one folder bucket (root when nil).
	CountByFolder(ctx context.Context, ownerID string, folderID *uuid.UUID) (int, error)
	// ListByFolder returns decks of one bucket ordered by created_at, id. Cards
	// are not loaded; Deck.NumCards carries their count.
	ListByFolder(ctx context.Context, ownerID string, folderID *uuid.UUID) ([]model.Deck, error)
	Rename(ctx context.Context, ownerID string, id uuid.UUID, topic string) error
	ToggleFavorite(ctx context.Context, ownerID string, id uuid.UUID) (bool, error)
	// Delete removes the deck; deleting an absent deck is not an error.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}

// PromptRepository reads system-instruction templates.
type PromptRepository interface {
	Get(ctx context.Context, id string) (*model.Prompt, error)
}
