package utils

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

type contextKey string

// UserIDKey is the request context key holding the authenticated user id
const UserIDKey contextKey = "user_id"

// EmailKey is the request context key holding the authenticated email
const EmailKey contextKey = "email"

// WithUser returns a copy of ctx carrying the authenticated user
func WithUser(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, EmailKey, email)
}

// GetUserIDFromContext returns the user id set by the auth middleware
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// DecodeJSONRequest decodes and validates the request body into dst. On
// failure it writes a 400 response and returns false.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", msg)
		return false
	}
	if err := ValidateStruct(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation failed", err.Error())
		return false
	}
	return true
}
