package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/export"
	"github.com/osse101/aion2-tracker/internal/ledger"
)

// RecordEntryRequest records one kinah movement. Negative amounts are expenses.
type RecordEntryRequest struct {
	CharacterID string     `json:"character_id" validate:"required,max=64"`
	Category    string     `json:"category" validate:"required,ledger_category"`
	Amount      int64      `json:"amount" validate:"required"`
	Note        string     `json:"note,omitempty" validate:"max=200"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

func (req RecordEntryRequest) toEntry() domain.LedgerEntry {
	e := domain.LedgerEntry{
		CharacterID: req.CharacterID,
		Category:    domain.LedgerCategory(strings.ToLower(req.Category)),
		Amount:      req.Amount,
		Note:        req.Note,
	}
	if req.OccurredAt != nil {
		e.OccurredAt = *req.OccurredAt
	}
	return e
}

// LedgerHandler serves the kinah ledger endpoints
type LedgerHandler struct {
	svc ledger.Service
}

// NewLedgerHandler creates a ledger handler
func NewLedgerHandler(svc ledger.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// HandleRecord handles POST /ledger
func (h *LedgerHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req RecordEntryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record ledger entry"); err != nil {
		return
	}

	entry, err := h.svc.Record(r.Context(), req.toEntry())
	if err != nil {
		respondServiceError(w, r, "Record ledger entry", err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// HandleDelete handles DELETE /ledger/{id}
func (h *LedgerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, paramID)); err != nil {
		respondServiceError(w, r, "Delete ledger entry", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEntryDeleted})
}

// HandleList handles GET /ledger
func (h *LedgerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characterID, from, to, ok := ledgerQuery(r, w)
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), characterID, from, to)
	if err != nil {
		respondServiceError(w, r, "List ledger entries", err)
		return
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleSummary handles GET /ledger/summary
func (h *LedgerHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	characterID, from, to, ok := ledgerQuery(r, w)
	if !ok {
		return
	}

	sum, err := h.svc.Summarize(r.Context(), characterID, from, to)
	if err != nil {
		respondServiceError(w, r, "Summarize ledger", err)
		return
	}
	respondJSON(w, http.StatusOK, sum)
}

// HandleExport handles GET /ledger/export
func (h *LedgerHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	characterID, from, to, ok := ledgerQuery(r, w)
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), characterID, from, to)
	if err != nil {
		respondServiceError(w, r, "Export ledger", err)
		return
	}
	sum, err := h.svc.Summarize(r.Context(), characterID, from, to)
	if err != nil {
		respondServiceError(w, r, "Export ledger", err)
		return
	}

	writeWorkbook(w, r, fmt.Sprintf(ledgerExportFile, characterID), func(buf *bytes.Buffer) error {
		return export.Ledger(buf, entries, *sum)
	})
}

func ledgerQuery(r *http.Request, w http.ResponseWriter) (string, time.Time, time.Time, bool) {
	characterID, ok := GetQueryParam(r, w, paramCharacterID)
	if !ok {
		return "", time.Time{}, time.Time{}, false
	}
	from, to, ok := parseWindow(r, w)
	return characterID, from, to, ok
}
