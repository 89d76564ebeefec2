package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"typed", New(KindNoCandidates, "no hotels"), KindNoCandidates},
		{"wrapped typed", fmt.Errorf("resolve: %w", New(KindInvalidEntry, "bad")), KindInvalidEntry},
		{"bare sentinel", fmt.Errorf("x: %w", ErrGeocodeNotFound), KindGeocodeNotFound},
		{"plain", errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIsSentinel(t *testing.T) {
	err := Wrap(KindUpstreamUnavailable, context.DeadlineExceeded, "amadeus timed out")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("errors.Is(err, ErrUpstreamUnavailable) = false, want true")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("errors.Is(err, context.DeadlineExceeded) = false, want true")
	}
	if errors.Is(err, ErrNoCandidates) {
		t.Errorf("errors.Is(err, ErrNoCandidates) = true, want false")
	}
	if got, want := err.Error(), "amadeus timed out: context deadline exceeded"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRetryableAndStatus(t *testing.T) {
	if !Retryable(KindPersistenceConflict) || !Retryable(KindUpstreamUnavailable) {
		t.Fatalf("conflict and upstream errors must be retryable")
	}
	if Retryable(KindInvalidEntry) {
		t.Fatalf("InvalidEntry must not be retryable")
	}
	if got := HTTPStatus(KindMissingContext); got != http.StatusUnprocessableEntity {
		t.Errorf("HTTPStatus(MissingContext) = %d, want %d", got, http.StatusUnprocessableEntity)
	}
	if got := HTTPStatus(KindUnknown); got != http.StatusInternalServerError {
		t.Errorf("HTTPStatus(Unknown) = %d, want %d", got, http.StatusInternalServerError)
	}
}
