package handler

import (
	"bytes"
	"net/http"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/export"
	"github.com/osse101/aion2-tracker/internal/logger"
	"github.com/osse101/aion2-tracker/internal/ranking"
)

func characterFilter(r *http.Request) domain.CharacterFilter {
	return domain.CharacterFilter{
		Server: GetOptionalQueryParam(r, paramServer, ""),
		Class:  GetOptionalQueryParam(r, paramClass, ""),
	}
}

// HandleLeaderboard returns the ranked characters for an optional server/class filter
func HandleLeaderboard(svc ranking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w)
		if !ok {
			return
		}
		filter := characterFilter(r)

		entries, err := svc.Leaderboard(r.Context(), filter, limit)
		if err != nil {
			respondServiceError(w, r, "Leaderboard", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgLeaderboardServed,
			"server", filter.Server, "class", filter.Class, "count", len(entries))
		respondJSON(w, http.StatusOK, entries)
	}
}

// HandleTierList returns per-class score tiers
func HandleTierList(svc ranking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiers, err := svc.TierList(r.Context(), GetOptionalQueryParam(r, paramServer, ""))
		if err != nil {
			respondServiceError(w, r, "Tier list", err)
			return
		}
		respondJSON(w, http.StatusOK, tiers)
	}
}

// HandleExportRankings streams the leaderboard and tier list as a workbook
func HandleExportRankings(svc ranking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w)
		if !ok {
			return
		}
		filter := characterFilter(r)

		entries, err := svc.Leaderboard(r.Context(), filter, limit)
		if err != nil {
			respondServiceError(w, r, "Export leaderboard", err)
			return
		}
		tiers, err := svc.TierList(r.Context(), filter.Server)
		if err != nil {
			respondServiceError(w, r, "Export tier list", err)
			return
		}

		writeWorkbook(w, r, rankingsExportFile, func(buf *bytes.Buffer) error {
			return export.Rankings(buf, entries, tiers)
		})
	}
}

// writeWorkbook renders into a buffer first so a failure can still return 500.
func writeWorkbook(w http.ResponseWriter, r *http.Request, filename string, render func(*bytes.Buffer) error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := render(buf); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgExportFailed, "file", filename, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}

	setAttachment(w, export.ContentTypeXLSX, filename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgWriteFailed, "error", err)
	}
}
