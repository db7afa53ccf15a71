package handler

import (
	"net/http"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/logger"
)

// CapRequest asks how the cap model treats one raw stat value
type CapRequest struct {
	Name  string   `json:"name" validate:"required,max=100"`
	Value *float64 `json:"value" validate:"required"`
}

// HandleEvaluate scores a character sheet without storing it
func HandleEvaluate(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sheet domain.CharacterSheet
		if err := DecodeAndValidateRequest(r, w, &sheet, "Evaluate sheet"); err != nil {
			return
		}

		profile := svc.Evaluate(r.Context(), sheet)
		logger.FromContext(r.Context()).Debug(LogMsgProfileEvaluated,
			"score", profile.Score.TotalScore, "grade", profile.Score.Grade)

		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleApplyCaps runs one value through the cap table in effect
func HandleApplyCaps(tables character.TableSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CapRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply caps"); err != nil {
			return
		}
		respondJSON(w, http.StatusOK, tables.Tables().ApplyCaps(req.Name, *req.Value))
	}
}
