package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/ledger"
)

type ledgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a PostgreSQL ledger repository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Insert(ctx context.Context, e *domain.LedgerEntry) error {
	id, err := parseEntryUUID(e.ID)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ledger_entries (entry_id, character_id, category, amount, note, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Exec(ctx, query, id, e.CharacterID, string(e.Category), e.Amount, e.Note, e.OccurredAt, e.CreatedAt)
	if isPgError(err, PgErrorCodeForeignKeyViolation) {
		return domain.ErrCharacterNotFound
	}
	if err != nil {
		return fmt.Errorf(ErrMsgInsertEntry, err)
	}
	return nil
}

func (r *ledgerRepository) Delete(ctx context.Context, id string) error {
	u, err := parseEntryUUID(id)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM ledger_entries WHERE entry_id = $1`, u)
	if err != nil {
		return fmt.Errorf(ErrMsgDeleteEntry, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *ledgerRepository) List(ctx context.Context, characterID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, character_id, category, amount, note, occurred_at, created_at
		FROM ledger_entries
		WHERE character_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at ASC, entry_id ASC
	`
	rows, err := r.db.Query(ctx, query, characterID, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryEntries, err)
	}
	defer rows.Close()

	var out []domain.LedgerEntry
	for rows.Next() {
		var (
			e        domain.LedgerEntry
			id       uuid.UUID
			category string
		)
		if err := rows.Scan(&id, &e.CharacterID, &category, &e.Amount, &e.Note, &e.OccurredAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf(ErrMsgScanEntry, err)
		}
		e.ID = id.String()
		e.Category = domain.LedgerCategory(category)
		e.OccurredAt = e.OccurredAt.UTC()
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryEntries, err)
	}
	return out, nil
}
