//go:build unit || e2e

package builder

import (
	"time"

	dompos "campuscoffee/internal/domain/pos"
	reqdto "campuscoffee/internal/handler/dto/request"
	"campuscoffee/internal/usecase/queries"
	"campuscoffee/internal/usecase/shared"

	"github.com/google/uuid"
)

type PosBuilder struct {
	Name        string
	Description string
	Kind        string
	Campus      string
	Street      string
	HouseNumber string
	PostalCode  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPosBuilder() *PosBuilder {
	now := time.Now()
	return &PosBuilder{
		Name:        "North Campus Cafe",
		Description: "Coffee and pastries next to the main lecture hall",
		Kind:        "cafe",
		Campus:      "North Campus",
		Street:      "University Ave",
		HouseNumber: "12",
		PostalCode:  "90210",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *PosBuilder) With(mutate func(*PosBuilder)) *PosBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PosBuilder) BuildDomain() (*dompos.Pos, error) {
	address, err := dompos.NewAddress(p.Street, p.HouseNumber, p.PostalCode)
	if err != nil {
		return nil, err
	}
	return dompos.NewPos(p.Name, p.Description, p.Kind, p.Campus, address, p.CreatedAt)
}

func (p *PosBuilder) BuildRequestDTO() reqdto.PosRequest {
	return reqdto.PosRequest{
		Name:        p.Name,
		Description: p.Description,
		Kind:        p.Kind,
		Campus:      p.Campus,
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
	}
}

func (p *PosBuilder) BuildViewQuery() *queries.PosView {
	return &queries.PosView{
		ID:          uuid.New(),
		Name:        p.Name,
		Description: p.Description,
		Kind:        p.Kind,
		Campus:      p.Campus,
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		PostalCode:  p.PostalCode,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PosBuilder) BuildSnapshot() *shared.PosSnapshot {
	return &shared.PosSnapshot{
		ID:   uuid.New(),
		Name: p.Name,
	}
}

// Fluent builder methods
func (p *PosBuilder) WithName(name string) *PosBuilder {
	p.Name = name
	return p
}

func (p *PosBuilder) WithKind(kind string) *PosBuilder {
	p.Kind = kind
	return p
}

func (p *PosBuilder) WithCampus(campus string) *PosBuilder {
	p.Campus = campus
	return p
}

func (p *PosBuilder) WithPostalCode(postalCode string) *PosBuilder {
	p.PostalCode = postalCode
	return p
}

func (p *PosBuilder) AsVendingMachine() *PosBuilder {
	p.Kind = "vending_machine"
	p.Name = "Hall B Vending Machine"
	return p
}
