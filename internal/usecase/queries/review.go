package queries

import (
	"context"
	"time"

	"campuscoffee/internal/infra"
	"campuscoffee/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrInvalidCursor  = errs.New("invalid cursor")
)

type ReviewView struct {
	ID            uuid.UUID `json:"id"`
	PosID         uuid.UUID `json:"pos_id"`
	PosName       string    `json:"pos_name"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorEmail   string    `json:"author_email"`
	Content       string    `json:"content"`
	ApprovalCount int32     `json:"approval_count"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID            uuid.UUID `json:"id"`
	AuthorEmail   string    `json:"author_email"`
	Content       string    `json:"content"`
	ApprovalCount int32     `json:"approval_count"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReviewFilters narrows a POS listing; Approved=nil lists both states.
type ReviewFilters struct {
	Approved *bool
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByPosFirstPage(ctx context.Context, posID uuid.UUID, approved *bool, limit int32) ([]*ReviewListItem, error)
	FindByPosKeyset(ctx context.Context, posID uuid.UUID, approved *bool, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByPos(ctx context.Context, posID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo     ReviewReadStore
	posStore PosReadStore
}

func NewReviewQueries(repo ReviewReadStore, posStore PosReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, posStore: posStore}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

// ListByPos resolves the POS before touching reviews, so listing against an
// unknown POS fails with ErrPosNotFound rather than an empty page.
func (q *reviewQueriesImpl) ListByPos(ctx context.Context, posID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	if _, err := q.posStore.FindByID(ctx, posID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrPosNotFound
		}
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByPosFirstPage(ctx, posID, filters.Approved, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByPosKeyset(ctx, posID, filters.Approved, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
