package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies failures surfaced by the trip planning core
type Kind string

const (
	KindUnknown             Kind = "Unknown"
	KindGeocodeNotFound     Kind = "GeocodeNotFound"
	KindNoCandidates        Kind = "NoCandidates"
	KindMissingContext      Kind = "MissingContext"
	KindInvalidEntry        Kind = "InvalidEntry"
	KindPersistenceConflict Kind = "PersistenceConflict"
	KindUpstreamUnavailable Kind = "UpstreamUnavailable"
	KindNotFound            Kind = "NotFound"
)

// Sentinel errors, one per kind. Use errors.Is against these.
var (
	ErrGeocodeNotFound     = errors.New("geocode returned no results")
	ErrNoCandidates        = errors.New("no inventory candidates")
	ErrMissingContext      = errors.New("priority requires missing context")
	ErrInvalidEntry        = errors.New("invalid entry")
	ErrPersistenceConflict = errors.New("persistence conflict")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNotFound            = errors.New("not found")
)

var sentinels = map[Kind]error{
	KindGeocodeNotFound:     ErrGeocodeNotFound,
	KindNoCandidates:        ErrNoCandidates,
	KindMissingContext:      ErrMissingContext,
	KindInvalidEntry:        ErrInvalidEntry,
	KindPersistenceConflict: ErrPersistenceConflict,
	KindUpstreamUnavailable: ErrUpstreamUnavailable,
	KindNotFound:            ErrNotFound,
}

// Error carries a Kind, a user-facing message and an optional cause
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		if s, ok := sentinels[e.Kind]; ok {
			msg = s.Error()
		} else {
			msg = string(e.Kind)
		}
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel error for the same kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == e.Kind
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// New creates a typed error without a cause
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates a typed error around err
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the kind of err, looking through wrapping
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	for kind, s := range sentinels {
		if errors.Is(err, s) {
			return kind
		}
	}
	return KindUnknown
}

// Retryable reports whether the caller may re-fetch and try again
func Retryable(kind Kind) bool {
	return kind == KindPersistenceConflict || kind == KindUpstreamUnavailable
}

// HTTPStatus maps a kind to the status code used by handlers
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindGeocodeNotFound, KindNoCandidates, KindMissingContext:
		return http.StatusUnprocessableEntity
	case KindInvalidEntry:
		return http.StatusBadRequest
	case KindPersistenceConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
