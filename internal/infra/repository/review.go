package repository

import (
	"context"

	"campuscoffee/internal/domain/review"
	"campuscoffee/internal/infra"
	"campuscoffee/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const insertReviewSQL = `
INSERT INTO reviews (id, pos_id, author_id, content, approval_count, approved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReviewSQL,
		rev.ID(), rev.PosID(), rev.AuthorID(), rev.Content().String(),
		rev.ApprovalCount(), rev.Approved(), rev.CreatedAt(), rev.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

const upsertReviewSQL = `
INSERT INTO reviews (id, pos_id, author_id, content, approval_count, approved, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    content        = EXCLUDED.content,
    approval_count = EXCLUDED.approval_count,
    approved       = EXCLUDED.approved,
    updated_at     = EXCLUDED.updated_at`

func (r *ReviewRepository) Save(ctx context.Context, dbtx db.DBTX, rev *review.Review) error {
	_, err := dbtx.Exec(ctx, upsertReviewSQL,
		rev.ID(), rev.PosID(), rev.AuthorID(), rev.Content().String(),
		rev.ApprovalCount(), rev.Approved(), rev.CreatedAt(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save review", err)
	}
	return nil
}
