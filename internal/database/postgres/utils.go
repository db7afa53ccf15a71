package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/aion2-tracker/internal/domain"
)

func parseEntryUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf(ErrMsgInvalidEntryID, err)
	}
	return u, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// whereBuilder accumulates AND conditions with numbered placeholders
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func characterFilter(f domain.CharacterFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Server != "" {
		w.add("server = $%d", f.Server)
	}
	if f.Class != "" {
		w.add("class = $%d", f.Class)
	}
	return w
}
