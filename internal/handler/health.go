package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/database"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK})
	}
}

// HandleReadyz reports ready while the database answers a ping and stat
// tables are loaded. Each dependency is listed under checks.
func HandleReadyz(dbPool database.Pool, tables character.TableSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{
			checkDatabase:   statusOK,
			checkStatTables: statusOK,
		}
		var failed string

		if tables == nil || tables.Tables() == nil {
			checks[checkStatTables] = statusUnavailable
			failed = ErrMsgStatTablesNotLoaded
		}
		if err := dbPool.Ping(ctx); err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err)
			checks[checkDatabase] = statusUnavailable
			failed = ErrMsgDatabaseUnavailable
		}

		if failed != "" {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  statusUnavailable,
				Message: failed,
				Checks:  checks,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Checks: checks})
	}
}
