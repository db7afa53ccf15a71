package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/domain"
	"github.com/osse101/aion2-tracker/internal/ranking"
	"github.com/osse101/aion2-tracker/internal/worker"
)

// IngestCharacterRequest is a character snapshot pushed by the collector
type IngestCharacterRequest struct {
	Server string                `json:"server" validate:"required,max=50"`
	Name   string                `json:"name" validate:"required,max=100"`
	Class  string                `json:"class,omitempty" validate:"max=50"`
	Level  int                   `json:"level" validate:"min=0,max=100"`
	Sheet  domain.CharacterSheet `json:"sheet"`
}

// Enqueuer accepts background jobs without blocking. *worker.Pool implements it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// AdminHandler serves the API-key protected admin endpoints
type AdminHandler struct {
	characters character.Service
	rankings   ranking.Service
	jobs       Enqueuer
}

// NewAdminHandler creates an admin handler
func NewAdminHandler(characters character.Service, rankings ranking.Service, jobs Enqueuer) *AdminHandler {
	return &AdminHandler{characters: characters, rankings: rankings, jobs: jobs}
}

// HandleIngest handles POST /admin/characters
func (h *AdminHandler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	var req IngestCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Ingest character"); err != nil {
		return
	}

	c, err := h.characters.Ingest(r.Context(), domain.Character{
		Server: req.Server,
		Name:   req.Name,
		Class:  req.Class,
		Level:  req.Level,
		Sheet:  req.Sheet,
	})
	if err != nil {
		respondServiceError(w, r, "Ingest character", err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgCharacterIngested, Data: c})
}

// HandleRecalibrate handles POST /admin/rankings/recalibrate. With async=true
// the job is queued on the worker pool and 202 is returned.
func (h *AdminHandler) HandleRecalibrate(w http.ResponseWriter, r *http.Request) {
	async, _ := strconv.ParseBool(GetOptionalQueryParam(r, paramAsync, "false"))
	if async && h.jobs != nil {
		if !h.jobs.TryEnqueue(ranking.NewRecalibrateJob(h.rankings)) {
			respondError(w, http.StatusServiceUnavailable, ErrMsgQueueFull)
			return
		}
		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgRecalibrationQueued})
		return
	}

	result, err := h.rankings.Recalibrate(r.Context())
	if err != nil {
		respondServiceError(w, r, "Recalibrate", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
