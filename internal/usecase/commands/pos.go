package commands

import (
	"context"

	dompos "campuscoffee/internal/domain/pos"
	"campuscoffee/internal/pkg/clock"
	"campuscoffee/internal/pkg/errs"
	"campuscoffee/internal/usecase/shared"

	"github.com/google/uuid"
)

type PosInput struct {
	Name        string
	Description string
	Kind        string
	Campus      string
	Street      string
	HouseNumber string
	PostalCode  string
}

type RegisterPosResult struct {
	PosID uuid.UUID
}

type PosCommands interface {
	Register(ctx context.Context, input PosInput) (*RegisterPosResult, error)
	Update(ctx context.Context, posID uuid.UUID, input PosInput) error
}

type posUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPosCommands(uow shared.UnitOfWork, clk clock.Clock) PosCommands {
	return &posUseCaseImpl{uow: uow, clock: clk}
}

func (uc *posUseCaseImpl) Register(ctx context.Context, input PosInput) (*RegisterPosResult, error) {
	p, err := uc.buildPos(input)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Pos().Create(ctx, tx.DB(), p)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RegisterPosResult{PosID: createdID}, nil
}

func (uc *posUseCaseImpl) Update(ctx context.Context, posID uuid.UUID, input PosInput) error {
	p, err := uc.buildPos(input)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, derr := tx.Reads().PosByID(ctx, posID)
		if derr != nil {
			return markNotFound(derr, errs.ErrPosNotFound)
		}

		updated := dompos.ReconstructPos(stored.ID, p.Name(), p.Description(), p.Kind(),
			p.Campus(), p.Address(), p.CreatedAt(), uc.clock.Now())
		return tx.Pos().Update(ctx, tx.DB(), updated)
	})
}

func (uc *posUseCaseImpl) buildPos(input PosInput) (*dompos.Pos, error) {
	address, err := dompos.NewAddress(input.Street, input.HouseNumber, input.PostalCode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	p, err := dompos.NewPos(input.Name, input.Description, input.Kind, input.Campus, address, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return p, nil
}
