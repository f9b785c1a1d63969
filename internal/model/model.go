// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Workspace and gate limits.
const (
	FolderLimit        = 50  // folders per owner, counted globally
	DeckLimitPerFolder = 75  // decks per owner within one folder bucket (root included)
	GuestDeckLimit     = 75  // decks kept in the local guest store
	MaxCardsPerDeck    = 25  // cards per deck
	MaxTopicLength     = 250 // runes
	QuotaLimit         = 200
	QuotaWindow        = 5 * time.Hour
)

// Kind distinguishes the two node types of the workspace tree.
type Kind string

const (
	KindFolder Kind = "folder"
	KindDeck   Kind = "deck"
)

// Card is an immutable question/answer pair.
type Card struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Folder is a container node; ParentID == nil means the root.
type Folder struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    string     `db:"owner_id"`
	Name       string     `db:"name"`
	ParentID   *uuid.UUID `db:"parent_id"`
	IsFavorite bool       `db:"is_favorite"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Deck is a named card collection; FolderID == nil means the root bucket.
// Listings load NumCards instead of Cards.
type Deck struct {
	ID         uuid.UUID
	OwnerID    string
	Topic      string
	Cards      []Card
	NumCards   int
	FolderID   *uuid.UUID
	IsFavorite bool
	CreatedAt  time.Time
}

// CardCount reports len(Cards), falling back to NumCards for listings.
func (d Deck) CardCount() int {
	if len(d.Cards) > 0 {
		return len(d.Cards)
	}
	return d.NumCards
}

// Children is the sorted result of listing one folder (or the root).
type Children struct {
	Folders []Folder
	Decks   []Deck
}

// Empty reports whether the listing has no folders and no decks.
func (c Children) Empty() bool { return len(c.Folders) == 0 && len(c.Decks) == 0 }

// QuotaRecord is the persisted admission counter of one identity.
type QuotaRecord struct {
	Identity        string
	Count           int
	WindowExpiresAt time.Time
}

// Prompt is a stored system-instruction template for the generation provider.
type Prompt struct {
	ID       string `db:"id"`
	Template string `db:"template"`
}
