package queries

import (
	"context"
	"time"

	"campuscoffee/internal/infra"
	"campuscoffee/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPosNotFound = errs.New("pos not found")

type PosView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	Campus      string    `json:"campus"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	PostalCode  string    `json:"postal_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PosReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PosView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*PosView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PosView, error)
}

type PosQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PosView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*PosView, *Cursor, error)
}

type posQueriesImpl struct {
	repo PosReadStore
}

func NewPosQueries(repo PosReadStore) PosQueries {
	return &posQueriesImpl{repo: repo}
}

func (q *posQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PosView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPosNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *posQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*PosView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PosView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
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
