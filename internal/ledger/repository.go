package ledger

import (
	"context"
	"time"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// Repository stores ledger entries
type Repository interface {
	Insert(ctx context.Context, e *domain.LedgerEntry) error
	// Delete returns domain.ErrEntryNotFound when id does not exist
	Delete(ctx context.Context, id string) error
	// List returns entries with from <= OccurredAt < to, oldest first
	List(ctx context.Context, characterID string, from, to time.Time) ([]domain.LedgerEntry, error)
}

// CharacterLookup confirms the owning character exists
type CharacterLookup interface {
	Get(ctx context.Context, id string) (*domain.Character, error)
}
