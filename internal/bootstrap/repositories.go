package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/database/postgres"
	"github.com/osse101/aion2-tracker/internal/ledger"
)

// Repositories holds the postgres-backed repositories
type Repositories struct {
	Characters character.Repository
	Ledger     ledger.Repository
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Characters: postgres.NewCharacterRepository(dbPool),
		Ledger:     postgres.NewLedgerRepository(dbPool),
	}
}
