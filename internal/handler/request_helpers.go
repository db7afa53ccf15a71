package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/aion2-tracker/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates its tags.
// On failure the response has already been written and the handler should return.
//
//	var req RecordEntryRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Record ledger entry"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam returns a required query parameter, writing a 400 when it is missing.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the parameter or defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads the limit parameter. Zero means "use the default".
func parseLimit(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := GetOptionalQueryParam(r, paramLimit, "")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}

// parseTimeParam accepts RFC 3339 timestamps or plain UTC dates (2006-01-02).
// An absent parameter yields the zero time.
func parseTimeParam(r *http.Request, w http.ResponseWriter, paramName string) (time.Time, bool) {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC); err == nil {
		return t, true
	}
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
	return time.Time{}, false
}

// parseWindow reads the from/to pair used by ledger queries.
func parseWindow(r *http.Request, w http.ResponseWriter) (from, to time.Time, ok bool) {
	if from, ok = parseTimeParam(r, w, paramFrom); !ok {
		return
	}
	if to, ok = parseTimeParam(r, w, paramTo); !ok {
		return
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTimeRange)
		return from, to, false
	}
	return from, to, true
}

func setAttachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set(headerContentType, contentType)
	w.Header().Set(headerContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
