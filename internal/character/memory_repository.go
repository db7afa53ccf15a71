package character

import (
	"context"
	"sort"
	"sync"

	"github.com/osse101/aion2-tracker/internal/domain"
)

// MemoryRepository is an in-memory Repository for tests and offline tools.
type MemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]domain.Character
}

// NewMemoryRepository creates an empty MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{characters: make(map[string]domain.Character)}
}

func (m *MemoryRepository) Upsert(_ context.Context, c *domain.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.characters[c.ID] = *c
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, id string) (*domain.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.characters[id]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	return &c, nil
}

func (m *MemoryRepository) List(_ context.Context, filter domain.CharacterFilter) ([]domain.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Character
	for _, c := range m.characters {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryRepository) TopByScore(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.Character, error) {
	out, _ := m.List(ctx, filter)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
