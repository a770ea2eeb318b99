package components

import (
	"campuscoffee/internal/infra/db"
	"campuscoffee/internal/infra/readstore"
	"campuscoffee/internal/infra/uow"
	"campuscoffee/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write side; repositories are constructed per
		// transaction inside it.
		uow.NewPostgresUoW,
		// Readstores over the pool for the query side
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewPosReadStore,
			fx.As(new(queries.PosReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
