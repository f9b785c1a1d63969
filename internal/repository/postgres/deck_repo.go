package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

// deckListColumns leave the cards out; a listing only needs their count.
var deckListColumns = []string{
	"id", "owner_id", "topic", "jsonb_array_length(cards) AS card_count",
	"folder_id", "is_favorite", "created_at",
}

// deckRow is the storage shape of a deck; cards live in a jsonb column.
type deckRow struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    string     `db:"owner_id"`
	Topic      string     `db:"topic"`
	Cards      []byte     `db:"cards"`
	CardCount  int        `db:"card_count"`
	FolderID   *uuid.UUID `db:"folder_id"`
	IsFavorite bool       `db:"is_favorite"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r deckRow) toModel() (model.Deck, error) {
	d := model.Deck{
		ID: r.ID, OwnerID: r.OwnerID, Topic: r.Topic, FolderID: r.FolderID,
		IsFavorite: r.IsFavorite, CreatedAt: r.CreatedAt, NumCards: r.CardCount,
	}
	if r.Cards == nil {
		return d, nil
	}
	if err := json.Unmarshal(r.Cards, &d.Cards); err != nil {
		return model.Deck{}, fmt.Errorf("deck %s: decode cards: %w", r.ID, err)
	}
	return d, nil
}

// DeckRepo implements repository.DeckRepository using PostgreSQL.
type DeckRepo struct{ db *DB }

// NewDeckRepo constructs a deck repository.
func NewDeckRepo(db *DB) *DeckRepo { return &DeckRepo{db: db} }

func (r *DeckRepo) Create(ctx context.Context, d model.Deck) error {
	cards, err := json.Marshal(d.Cards)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO decks (id, owner_id, topic, cards, folder_id, is_favorite, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err = r.db.Pool.Exec(ctx, q, d.ID, d.OwnerID, d.Topic, cards, d.FolderID, d.IsFavorite, d.CreatedAt)
	return wrap("create deck", err)
}

func (r *DeckRepo) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Deck, error) {
	const q = `
SELECT id, owner_id, topic, cards, folder_id, is_favorite, created_at
FROM decks WHERE owner_id=$1 AND id=$2`
	var row deckRow
	if err := pgxscan.Get(ctx, r.db.Pool, &row, q, ownerID, id); err != nil {
		return nil, wrap("get deck", err)
	}
	d, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeckRepo) CountByFolder(ctx context.Context, ownerID string, folderID *uuid.UUID) (int, error) {
	q, args, err := byParent(psql.Select("count(*)").From("decks"), ownerID, "folder_id", folderID).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.Pool.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, wrap("count decks", err)
	}
	return n, nil
}

func (r *DeckRepo) ListByFolder(ctx context.Context, ownerID string, folderID *uuid.UUID) ([]model.Deck, error) {
	q, args, err := byParent(psql.Select(deckListColumns...).From("decks"), ownerID, "folder_id", folderID).
		OrderBy(listOrder...).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []deckRow
	if err := pgxscan.Select(ctx, r.db.Pool, &rows, q, args...); err != nil {
		return nil, wrap("list decks", err)
	}
	out := make([]model.Deck, 0, len(rows))
	for _, row := range rows {
		d, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DeckRepo) Rename(ctx context.Context, ownerID string, id uuid.UUID, topic string) error {
	const q = `UPDATE decks SET topic=$3 WHERE owner_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ownerID, id, topic)
	if err != nil {
		return wrap("rename deck", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *DeckRepo) ToggleFavorite(ctx context.Context, ownerID string, id uuid.UUID) (bool, error) {
	const q = `UPDATE decks SET is_favorite = NOT is_favorite WHERE owner_id=$1 AND id=$2 RETURNING is_favorite`
	var fav bool
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, id).Scan(&fav); err != nil {
		return false, wrap("toggle deck", err)
	}
	return fav, nil
}

func (r *DeckRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const q = `DELETE FROM decks WHERE owner_id=$1 AND id=$2`
	_, err := r.db.Pool.Exec(ctx, q, ownerID, id)
	return wrap("delete deck", err)
}
