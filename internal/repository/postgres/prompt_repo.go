package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/and161185/flashdeck/internal/model"
)

// PromptRepo reads generation prompt templates.
type PromptRepo struct{ db *DB }

// NewPromptRepo constructs a prompt repository.
func NewPromptRepo(db *DB) *PromptRepo { return &PromptRepo{db: db} }

// Get returns the template stored under id or errs.ErrNotFound.
func (r *PromptRepo) Get(ctx context.Context, id string) (*model.Prompt, error) {
	const q = `SELECT id, template FROM prompts WHERE id=$1`
	var p model.Prompt
	if err := pgxscan.Get(ctx, r.db.Pool, &p, q, id); err != nil {
		return nil, wrap("get prompt", err)
	}
	return &p, nil
}
