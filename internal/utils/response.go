package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"TRIPPLANNER_BACK-END/internal/apperror"
	"TRIPPLANNER_BACK-END/internal/dto"
)

// RetryAfterSeconds is sent with 503 responses caused by upstream failures
const RetryAfterSeconds = 5

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteErrorResponse writes an error body with a short title and a detail message
func WriteErrorResponse(w http.ResponseWriter, status int, title, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: title, Message: message})
}

// WriteAppError maps err to a status code through its apperror kind
func WriteAppError(w http.ResponseWriter, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if status >= http.StatusInternalServerError && kind != apperror.KindUpstreamUnavailable {
		log.Error().Err(err).Msg("internal error")
		WriteJSONResponse(w, status, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: "Something went wrong",
			Kind:    string(apperror.KindUnknown),
		})
		return
	}
	retryable := apperror.Retryable(kind)
	if kind == apperror.KindUpstreamUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   err.Error(),
		Kind:      string(kind),
		Retryable: retryable,
	})
}
