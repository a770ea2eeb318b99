package readstore

import (
	"context"
	"time"

	"campuscoffee/internal/infra"
	"campuscoffee/internal/infra/db"
	"campuscoffee/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewViewSQL = `
SELECT r.id, r.pos_id, p.name, r.author_id, u.email, r.content, r.approval_count, r.approved, r.created_at, r.updated_at
FROM reviews r
JOIN pos p ON p.id = r.pos_id
JOIN users u ON u.id = r.author_id`

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row := r.db.QueryRow(ctx, reviewViewSQL+` WHERE r.id = $1`, id)
	view, err := scanReviewView(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return view, nil
}

func (r *ReviewReadStore) FindByPosAndAuthor(ctx context.Context, posID, authorID uuid.UUID) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, reviewViewSQL+` WHERE r.pos_id = $1 AND r.author_id = $2`, posID, authorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews by pos and author", err)
	}
	defer rows.Close()

	var result []*queries.ReviewView
	for rows.Next() {
		view, scanErr := scanReviewView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

const reviewListSQL = `
SELECT r.id, u.email, r.content, r.approval_count, r.approved, r.created_at
FROM reviews r
JOIN users u ON u.id = r.author_id`

func (r *ReviewReadStore) FindByPosFirstPage(ctx context.Context, posID uuid.UUID, approved *bool, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSQL+`
WHERE r.pos_id = $1 AND ($2::boolean IS NULL OR r.approved = $2)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $3`, posID, approved, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by pos", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

func (r *ReviewReadStore) FindByPosKeyset(ctx context.Context, posID uuid.UUID, approved *bool, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSQL+`
WHERE r.pos_id = $1 AND ($2::boolean IS NULL OR r.approved = $2)
  AND (r.created_at, r.id) < ($3, $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $5`, posID, approved, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by pos", err)
	}
	defer rows.Close()

	return collectReviewListItems(rows)
}

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(&v.ID, &v.PosID, &v.PosName, &v.AuthorID, &v.AuthorEmail,
		&v.Content, &v.ApprovalCount, &v.Approved, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectReviewListItems(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	var result []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.AuthorEmail, &item.Content,
			&item.ApprovalCount, &item.Approved, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review list row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review list rows", err)
	}
	return result, nil
}
