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

type PosReadStore struct {
	db db.DBTX
}

func NewPosReadStore(dbtx db.DBTX) *PosReadStore {
	return &PosReadStore{db: dbtx}
}

const posViewSQL = `
SELECT id, name, description, kind, campus, street, house_number, postal_code, created_at, updated_at
FROM pos`

func (r *PosReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PosView, error) {
	row := r.db.QueryRow(ctx, posViewSQL+` WHERE id = $1`, id)
	view, err := scanPosView(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("pos not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pos by id", err)
	}
	return view, nil
}

func (r *PosReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.PosView, error) {
	rows, err := r.db.Query(ctx, posViewSQL+`
ORDER BY created_at DESC, id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pos first page", err)
	}
	defer rows.Close()

	return collectPosViews(rows)
}

func (r *PosReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PosView, error) {
	rows, err := r.db.Query(ctx, posViewSQL+`
WHERE (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pos keyset page", err)
	}
	defer rows.Close()

	return collectPosViews(rows)
}

func scanPosView(row pgx.Row) (*queries.PosView, error) {
	var v queries.PosView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Kind, &v.Campus,
		&v.Street, &v.HouseNumber, &v.PostalCode, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectPosViews(rows pgx.Rows) ([]*queries.PosView, error) {
	var result []*queries.PosView
	for rows.Next() {
		view, err := scanPosView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pos row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pos rows", err)
	}
	return result, nil
}
