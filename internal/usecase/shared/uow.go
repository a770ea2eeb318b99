package shared

import (
	"context"
	"time"

	"campuscoffee/internal/domain/pos"
	"campuscoffee/internal/domain/review"
	"campuscoffee/internal/domain/user"
	"campuscoffee/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reviews() ReviewRepository
	Pos() PosRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookup collaborators the command layer validates
// against: user and pos resolution, plus stored-review reads.
type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	PosByID(ctx context.Context, id uuid.UUID) (*PosSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewsByPosAndAuthor(ctx context.Context, posID, authorID uuid.UUID) ([]*ReviewSnapshot, error)
}

// Minimal snapshots for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type PosSnapshot struct {
	ID   uuid.UUID
	Name string
}

type ReviewSnapshot struct {
	ID            uuid.UUID
	PosID         uuid.UUID
	AuthorID      uuid.UUID
	Content       string
	ApprovalCount int32
	Approved      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReviewRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error)
	// Save upserts by review id, mirroring the storage port's upsert contract.
	Save(ctx context.Context, dbtx db.DBTX, rev *review.Review) error
}

type PosRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *pos.Pos) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, p *pos.Pos) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
