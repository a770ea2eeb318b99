package repository

import (
	"context"

	"campuscoffee/internal/domain/pos"
	"campuscoffee/internal/infra"
	"campuscoffee/internal/infra/db"

	"github.com/google/uuid"
)

type PosRepository struct{}

func NewPosRepository() *PosRepository {
	return &PosRepository{}
}

const insertPosSQL = `
INSERT INTO pos (id, name, description, kind, campus, street, house_number, postal_code, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id`

func (r *PosRepository) Create(ctx context.Context, dbtx db.DBTX, p *pos.Pos) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertPosSQL,
		p.ID(), p.Name().String(), p.Description(), p.Kind().String(), p.Campus(),
		p.Address().Street(), p.Address().HouseNumber(), p.Address().PostalCode(),
		p.CreatedAt(), p.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pos", err)
	}
	return id, nil
}

const updatePosSQL = `
UPDATE pos SET
    name         = $2,
    description  = $3,
    kind         = $4,
    campus       = $5,
    street       = $6,
    house_number = $7,
    postal_code  = $8,
    updated_at   = $9
WHERE id = $1`

func (r *PosRepository) Update(ctx context.Context, dbtx db.DBTX, p *pos.Pos) error {
	tag, err := dbtx.Exec(ctx, updatePosSQL,
		p.ID(), p.Name().String(), p.Description(), p.Kind().String(), p.Campus(),
		p.Address().Street(), p.Address().HouseNumber(), p.Address().PostalCode(),
		p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pos", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pos not found", nil, infra.KindNotFound)
	}
	return nil
}
