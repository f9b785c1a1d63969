package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

var folderColumns = []string{"id", "owner_id", "name", "parent_id", "is_favorite", "created_at"}

// FolderRepo implements repository.FolderRepository using PostgreSQL.
type FolderRepo struct{ db *DB }

// NewFolderRepo constructs a folder repository.
func NewFolderRepo(db *DB) *FolderRepo { return &FolderRepo{db: db} }

func (r *FolderRepo) Create(ctx context.Context, f model.Folder) error {
	const q = `
INSERT INTO folders (id, owner_id, name, parent_id, is_favorite, created_at)
VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.Pool.Exec(ctx, q, f.ID, f.OwnerID, f.Name, f.ParentID, f.IsFavorite, f.CreatedAt)
	return wrap("create folder", err)
}

func (r *FolderRepo) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.Folder, error) {
	const q = `
SELECT id, owner_id, name, parent_id, is_favorite, created_at
FROM folders WHERE owner_id=$1 AND id=$2`
	var f model.Folder
	if err := pgxscan.Get(ctx, r.db.Pool, &f, q, ownerID, id); err != nil {
		return nil, wrap("get folder", err)
	}
	return &f, nil
}

func (r *FolderRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	const q = `SELECT count(*) FROM folders WHERE owner_id=$1`
	var n int
	if err := r.db.Pool.QueryRow(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, wrap("count folders", err)
	}
	return n, nil
}

func (r *FolderRepo) ListByParent(ctx context.Context, ownerID string, parentID *uuid.UUID) ([]model.Folder, error) {
	q, args, err := byParent(psql.Select(folderColumns...).From("folders"), ownerID, "parent_id", parentID).
		OrderBy(listOrder...).
		ToSql()
	if err != nil {
		return nil, err
	}
	var out []model.Folder
	if err := pgxscan.Select(ctx, r.db.Pool, &out, q, args...); err != nil {
		return nil, wrap("list folders", err)
	}
	return out, nil
}

func (r *FolderRepo) Rename(ctx context.Context, ownerID string, id uuid.UUID, name string) error {
	const q = `UPDATE folders SET name=$3 WHERE owner_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ownerID, id, name)
	if err != nil {
		return wrap("rename folder", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *FolderRepo) ToggleFavorite(ctx context.Context, ownerID string, id uuid.UUID) (bool, error) {
	const q = `UPDATE folders SET is_favorite = NOT is_favorite WHERE owner_id=$1 AND id=$2 RETURNING is_favorite`
	var fav bool
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, id).Scan(&fav); err != nil {
		return false, wrap("toggle folder", err)
	}
	return fav, nil
}

func (r *FolderRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	const q = `DELETE FROM folders WHERE owner_id=$1 AND id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, ownerID, id)
	if err != nil {
		return wrap("delete folder", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
