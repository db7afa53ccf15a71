package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/domain"
)

const characterColumns = `character_id, server, name, class, level, sheet, score, grade, updated_at`

type characterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a PostgreSQL character repository
func NewCharacterRepository(db *pgxpool.Pool) character.Repository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Upsert(ctx context.Context, c *domain.Character) error {
	sheet, err := json.Marshal(c.Sheet)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeSheetFailed, err)
	}

	query := `
		INSERT INTO characters (` + characterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (character_id) DO UPDATE SET
			server = EXCLUDED.server,
			name = EXCLUDED.name,
			class = EXCLUDED.class,
			level = EXCLUDED.level,
			sheet = EXCLUDED.sheet,
			score = EXCLUDED.score,
			grade = EXCLUDED.grade,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, c.ID, c.Server, c.Name, c.Class, c.Level, sheet, c.Score, string(c.Grade), c.UpdatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgUpsertCharacter, err)
	}
	return nil
}

func (r *characterRepository) Get(ctx context.Context, id string) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE character_id = $1`
	c, err := scanCharacter(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCharacterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacter, err)
	}
	return c, nil
}

func (r *characterRepository) List(ctx context.Context, filter domain.CharacterFilter) ([]domain.Character, error) {
	where := characterFilter(filter)
	return r.query(ctx, `SELECT `+characterColumns+` FROM characters`+where.String(), where.args...)
}

func (r *characterRepository) TopByScore(ctx context.Context, filter domain.CharacterFilter, limit int) ([]domain.Character, error) {
	where := characterFilter(filter)
	query := `SELECT ` + characterColumns + ` FROM characters` + where.String() + ` ORDER BY score DESC, name ASC`
	args := where.args
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return r.query(ctx, query, args...)
}

func (r *characterRepository) query(ctx context.Context, query string, args ...any) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryCharacters, err)
	}
	defer rows.Close()

	var out []domain.Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanCharacter, err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryCharacters, err)
	}
	return out, nil
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var (
		c     domain.Character
		sheet []byte
		grade string
	)
	if err := row.Scan(&c.ID, &c.Server, &c.Name, &c.Class, &c.Level, &sheet, &c.Score, &grade, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sheet, &c.Sheet); err != nil {
		return nil, fmt.Errorf(ErrMsgDecodeSheetFailed, c.ID, err)
	}
	c.Grade = domain.Grade(grade)
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}
