package character

import (
	"context"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// Repository stores character snapshots
type Repository interface {
	// Upsert inserts or replaces the snapshot with c.ID
	Upsert(ctx context.Context, c *domain.Character) error

	// Get returns domain.ErrCharacterNotFound when no snapshot exists
	Get(ctx context.Context, id string) (*domain.Character, error)

	// List returns every character matching the filter, in no particular order
	List(ctx context.Context, filter domain.CharacterFilter) ([]domain.Character, error)

	// TopByScore returns up to limit characters ordered by score desc, then name.
	// A non-positive limit returns all matches.
	TopByScore(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.Character, error)
}
