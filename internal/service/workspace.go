// Package service implements workspace and generation use cases on top of the repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
	"github.com/and161185/flashdeck/internal/repository"
)

// WorkspaceService manages the per-owner tree of folders and decks.
type WorkspaceService interface {
	CreateFolder(ctx context.Context, owner, name string, parentID *uuid.UUID) (*model.Folder, error)
	CreateDeck(ctx context.Context, owner, topic string, cards []model.Card, folderID *uuid.UUID) (*model.Deck, error)
	GetDeck(ctx context.Context, owner string, id uuid.UUID) (*model.Deck, error)
	ListChildren(ctx context.Context, owner string, folderID *uuid.UUID) (model.Children, error)
	ResolvePath(ctx context.Context, owner string, folderID *uuid.UUID) ([]model.Folder, error)
	DeleteFolder(ctx context.Context, owner string, id uuid.UUID) error
	DeleteDeck(ctx context.Context, owner string, id uuid.UUID) error
	RenameFolder(ctx context.Context, owner string, id uuid.UUID, name string) error
	RenameDeck(ctx context.Context, owner string, id uuid.UUID, topic string) error
	ToggleFavorite(ctx context.Context, owner string, id uuid.UUID, kind model.Kind) (bool, error)
}

// Limits caps the size of one owner's workspace.
type Limits struct {
	Folders        int
	DecksPerFolder int
}

// DefaultLimits are 50 folders per owner and 75 decks per folder bucket.
var DefaultLimits = Limits{Folders: model.FolderLimit, DecksPerFolder: model.DeckLimitPerFolder}

type WorkspaceServiceImpl struct {
	folders repository.FolderRepository
	decks   repository.DeckRepository
	limits  Limits
	now     func() time.Time
}

// NewWorkspaceService constructs the workspace service. Zero limits fall back to DefaultLimits.
func NewWorkspaceService(folders repository.FolderRepository, decks repository.DeckRepository, limits Limits) *WorkspaceServiceImpl {
	if limits.Folders <= 0 {
		limits.Folders = DefaultLimits.Folders
	}
	if limits.DecksPerFolder <= 0 {
		limits.DecksPerFolder = DefaultLimits.DecksPerFolder
	}
	return &WorkspaceServiceImpl{folders: folders, decks: decks, limits: limits, now: time.Now}
}

type folderInput struct {
	Name string `validate:"required"`
}

type deckInput struct {
	Topic string       `validate:"required,max=250"`
	Cards []model.Card `validate:"required,min=1,max=25,dive"`
}

// CreateFolder adds a folder under parentID (root when nil).
//
// The capacity check and the insert are separate statements; concurrent
// creations may overshoot the limit by the number of racing callers minus one.
func (s *WorkspaceServiceImpl) CreateFolder(ctx context.Context, owner, name string, parentID *uuid.UUID) (*model.Folder, error) {
	if owner == "" {
		return nil, errs.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if err := check(folderInput{Name: name}); err != nil {
		return nil, err
	}
	if parentID != nil {
		if _, err := s.folders.Get(ctx, owner, *parentID); err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}
	n, err := s.folders.CountByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if n >= s.limits.Folders {
		return nil, fmt.Errorf("folders: %d of %d used: %w", n, s.limits.Folders, errs.ErrCapacityExceeded)
	}

	f := model.Folder{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   owner,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.folders.Create(ctx, f); err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateDeck stores a deck in folderID's bucket (root when nil). Decks with
// more than 25 cards are rejected, not truncated.
func (s *WorkspaceServiceImpl) CreateDeck(ctx context.Context, owner, topic string, cards []model.Card, folderID *uuid.UUID) (*model.Deck, error) {
	if owner == "" {
		return nil, errs.ErrUnauthenticated
	}
	topic = strings.TrimSpace(topic)
	if err := check(deckInput{Topic: topic, Cards: cards}); err != nil {
		return nil, err
	}
	if folderID != nil {
		if _, err := s.folders.Get(ctx, owner, *folderID); err != nil {
			return nil, fmt.Errorf("folder: %w", err)
		}
	}
	n, err := s.decks.CountByFolder(ctx, owner, folderID)
	if err != nil {
		return nil, err
	}
	if n >= s.limits.DecksPerFolder {
		return nil, fmt.Errorf("decks: %d of %d used in folder: %w", n, s.limits.DecksPerFolder, errs.ErrCapacityExceeded)
	}

	d := model.Deck{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   owner,
		Topic:     topic,
		Cards:     append([]model.Card(nil), cards...),
		FolderID:  folderID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.decks.Create(ctx, d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *WorkspaceServiceImpl) GetDeck(ctx context.Context, owner string, id uuid.UUID) (*model.Deck, error) {
	if owner == "" {
		return nil, errs.ErrUnauthenticated
	}
	return s.decks.Get(ctx, owner, id)
}

// ListChildren returns the direct sub-folders and decks of folderID, each
// sorted favorites first and then by name or topic.
func (s *WorkspaceServiceImpl) ListChildren(ctx context.Context, owner string, folderID *uuid.UUID) (model.Children, error) {
	if owner == "" {
		return model.Children{}, errs.ErrUnauthenticated
	}
	folders, err := s.folders.ListByParent(ctx, owner, folderID)
	if err != nil {
		return model.Children{}, err
	}
	decks, err := s.decks.ListByFolder(ctx, owner, folderID)
	if err != nil {
		return model.Children{}, err
	}
	SortFolders(folders)
	SortDecks(decks)
	return model.Children{Folders: folders, Decks: decks}, nil
}

// SortFolders orders favorites first, then by byte-wise name. Equal keys keep their order.
func SortFolders(fs []model.Folder) {
	sort.SliceStable(fs, func(i, j int) bool {
		return favFirst(fs[i].IsFavorite, fs[j].IsFavorite, fs[i].Name, fs[j].Name)
	})
}

// SortDecks is SortFolders for decks, keyed by topic.
func SortDecks(ds []model.Deck) {
	sort.SliceStable(ds, func(i, j int) bool {
		return favFirst(ds[i].IsFavorite, ds[j].IsFavorite, ds[i].Topic, ds[j].Topic)
	})
}

func favFirst(favA, favB bool, a, b string) bool {
	if favA != favB {
		return favA
	}
	return a < b
}

// ResolvePath returns the folders from the root down to folderID inclusive.
// A missing ancestor ends the walk as if the root had been reached.
func (s *WorkspaceServiceImpl) ResolvePath(ctx context.Context, owner string, folderID *uuid.UUID) ([]model.Folder, error) {
	if owner == "" {
		return nil, errs.ErrUnauthenticated
	}
	var path []model.Folder
	cur := folderID
	// an acyclic chain cannot be longer than the folder limit
	for hops := 0; cur != nil && hops <= s.limits.Folders; hops++ {
		f, err := s.folders.Get(ctx, owner, *cur)
		if errors.Is(err, errs.ErrNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
		path = append(path, *f)
		cur = f.ParentID
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// DeleteFolder removes an empty folder.
func (s *WorkspaceServiceImpl) DeleteFolder(ctx context.Context, owner string, id uuid.UUID) error {
	children, err := s.ListChildren(ctx, owner, &id)
	if err != nil {
		return err
	}
	if !children.Empty() {
		return fmt.Errorf("folder %s has %d folders and %d decks: %w",
			id, len(children.Folders), len(children.Decks), errs.ErrNotEmpty)
	}
	return s.folders.Delete(ctx, owner, id)
}

func (s *WorkspaceServiceImpl) DeleteDeck(ctx context.Context, owner string, id uuid.UUID) error {
	if owner == "" {
		return errs.ErrUnauthenticated
	}
	return s.decks.Delete(ctx, owner, id)
}

func (s *WorkspaceServiceImpl) RenameFolder(ctx context.Context, owner string, id uuid.UUID, name string) error {
	if owner == "" {
		return errs.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if err := check(folderInput{Name: name}); err != nil {
		return err
	}
	return s.folders.Rename(ctx, owner, id, name)
}

func (s *WorkspaceServiceImpl) RenameDeck(ctx context.Context, owner string, id uuid.UUID, topic string) error {
	if owner == "" {
		return errs.ErrUnauthenticated
	}
	topic = strings.TrimSpace(topic)
	if err := validate.Var(topic, "required,max=250"); err != nil {
		return errs.Invalid("validation: topic %v", err)
	}
	return s.decks.Rename(ctx, owner, id, topic)
}

// ToggleFavorite flips the favorite flag of a folder or deck and returns the new value.
func (s *WorkspaceServiceImpl) ToggleFavorite(ctx context.Context, owner string, id uuid.UUID, kind model.Kind) (bool, error) {
	if owner == "" {
		return false, errs.ErrUnauthenticated
	}
	switch kind {
	case model.KindFolder:
		return s.folders.ToggleFavorite(ctx, owner, id)
	case model.KindDeck:
		return s.decks.ToggleFavorite(ctx, owner, id)
	default:
		return false, errs.Invalid("validation: unknown kind %q", kind)
	}
}
