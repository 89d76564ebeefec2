// Package providers holds the clients for third-party travel APIs.
package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"TRIPPLANNER_BACK-END/internal/apperror"
)

const maxErrorBody = 512

// TransportError classifies a failed round trip
func TransportError(service string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return apperror.Wrap(apperror.KindUpstreamUnavailable, err, service+" request failed")
}

// StatusError turns a non-2xx response into a typed error. The body is read
// up to a small limit for the message.
func StatusError(service string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(body))
	msg := fmt.Sprintf("%s returned %d", service, resp.StatusCode)
	if detail != "" {
		msg += ": " + detail
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperror.New(apperror.KindNoCandidates, msg)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return apperror.New(apperror.KindInvalidEntry, msg)
	default:
		return apperror.New(apperror.KindUpstreamUnavailable, msg)
	}
}
