package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/aion2-tracker/internal/character"
)

// HandleGetProfile returns the combat profile of a stored character
func HandleGetProfile(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, paramID)

		profile, err := svc.GetProfile(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetCharacter returns a stored snapshot
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, paramID))
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleCompare compares two stored characters (a minus b)
func HandleCompare(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := GetQueryParam(r, w, paramA)
		if !ok {
			return
		}
		b, ok := GetQueryParam(r, w, paramB)
		if !ok {
			return
		}
		if a == b {
			respondError(w, http.StatusBadRequest, ErrMsgSameCharacter)
			return
		}

		cmp, err := svc.Compare(r.Context(), a, b)
		if err != nil {
			respondServiceError(w, r, "Compare characters", err)
			return
		}
		respondJSON(w, http.StatusOK, cmp)
	}
}
