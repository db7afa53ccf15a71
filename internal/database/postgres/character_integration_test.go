package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/combat"
	"github.com/osse101/aion2-tracker/internal/domain"
)

func TestCharacterRepository_Integration(t *testing.T) {
	pool := requireDB(t)
	truncate(t, pool)
	ctx := context.Background()
	repo := NewCharacterRepository(pool)

	updated := time.Date(2026, 4, 1, 9, 30, 0, 123000, time.UTC)
	sheet := domain.CharacterSheet{
		Equipment: []domain.EquipmentItem{{Slot: 1, Name: "대검", Enhancement: 10, MainStats: []domain.StatLine{{Name: "공격력", Value: "400", Extra: "+40"}}}},
		Titles:    []domain.Title{{ID: 7, Name: "정복자", Equipped: true, Description: "공격력 +3%"}},
	}

	t.Run("upsert and get", func(t *testing.T) {
		c := &domain.Character{ID: "c1", Server: "이스라펠", Name: "Aria", Class: "검성", Level: 45, Sheet: sheet, Score: 500, Grade: domain.GradeB, UpdatedAt: updated}
		require.NoError(t, repo.Upsert(ctx, c))

		got, err := repo.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, *c, *got)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		c := &domain.Character{ID: "c1", Server: "이스라펠", Name: "Aria", Class: "검성", Level: 46, Sheet: sheet, Score: 700, Grade: domain.GradeA, UpdatedAt: updated.Add(time.Hour)}
		require.NoError(t, repo.Upsert(ctx, c))

		got, err := repo.Get(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 46, got.Level)
		assert.Equal(t, int64(700), got.Score)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("list and top by score", func(t *testing.T) {
		for _, c := range []domain.Character{
			{ID: "c2", Server: "이스라펠", Name: "Bela", Class: "궁성", Score: 700, UpdatedAt: updated},
			{ID: "c3", Server: "이스라펠", Name: "Cain", Class: "검성", Score: 100, UpdatedAt: updated},
			{ID: "c4", Server: "지켈", Name: "Dora", Class: "검성", Score: 900, UpdatedAt: updated},
		} {
			require.NoError(t, repo.Upsert(ctx, &c))
		}

		all, err := repo.List(ctx, domain.CharacterFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 4)

		swords, err := repo.List(ctx, domain.CharacterFilter{Server: "이스라펠", Class: "검성"})
		require.NoError(t, err)
		assert.Len(t, swords, 2)

		top, err := repo.TopByScore(ctx, domain.CharacterFilter{Server: "이스라펠"}, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "Aria", top[0].Name, "ties on score order by name")
		assert.Equal(t, "Bela", top[1].Name)

		everyone, err := repo.TopByScore(ctx, domain.CharacterFilter{}, 0)
		require.NoError(t, err)
		assert.Len(t, everyone, 4)
		assert.Equal(t, "Dora", everyone[0].Name)
	})
}

func TestCharacterService_WithPostgres(t *testing.T) {
	pool := requireDB(t)
	truncate(t, pool)
	ctx := context.Background()

	svc := character.NewService(NewCharacterRepository(pool), combat.NewRegistry(combat.DefaultTables()), character.Config{})
	stored, err := svc.Ingest(ctx, domain.Character{Server: "이스라펠", Name: "Aria", Sheet: domain.CharacterSheet{
		BaseStats: []domain.BaseStat{{Name: "공격력", Value: 1000}},
	}})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Score, profile.Score.TotalScore)
}
