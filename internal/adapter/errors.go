package adapter

import (
	"errors"
	"net/http"
)

var (
	// ErrTransport wraps failures below HTTP: refused connections, DNS,
	// timeouts and aborted bodies.
	ErrTransport = errors.New("remote unreachable")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded
	// or carries an unknown result.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// IsTransient reports whether err is worth retrying later: transport
// failures, 5xx, 408 and 429.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError ||
			statusErr.Code == http.StatusTooManyRequests ||
			statusErr.Code == http.StatusRequestTimeout
	}
	return errors.Is(err, ErrTransport)
}
