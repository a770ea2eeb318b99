package pos

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pos is a point of sale on campus that reviews attach to.
type Pos struct {
	id          uuid.UUID
	name        Name
	description string
	kind        Kind
	campus      string
	address     Address
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPos(nameText string, description string, kindText string, campus string, address Address, now time.Time) (*Pos, error) {
	name, err := NewName(nameText)
	if err != nil {
		return nil, err
	}

	kind, err := NewKind(kindText)
	if err != nil {
		return nil, err
	}

	campus = strings.TrimSpace(campus)
	if campus == "" {
		return nil, ErrEmptyCampus
	}

	return &Pos{
		id:          uuid.New(),
		name:        name,
		description: description,
		kind:        kind,
		campus:      campus,
		address:     address,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPos(id uuid.UUID, name Name, description string, kind Kind, campus string, address Address, createdAt, updatedAt time.Time) *Pos {
	return &Pos{
		id:          id,
		name:        name,
		description: description,
		kind:        kind,
		campus:      campus,
		address:     address,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Pos) ID() uuid.UUID        { return p.id }
func (p *Pos) Name() Name           { return p.name }
func (p *Pos) Description() string  { return p.description }
func (p *Pos) Kind() Kind           { return p.kind }
func (p *Pos) Campus() string       { return p.campus }
func (p *Pos) Address() Address     { return p.address }
func (p *Pos) CreatedAt() time.Time { return p.createdAt }
func (p *Pos) UpdatedAt() time.Time { return p.updatedAt }
