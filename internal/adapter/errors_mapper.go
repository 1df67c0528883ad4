package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// StatusError is a non-2xx answer of the remote.
type StatusError struct {
	Code int
	Body string
	// Err is the sentinel matching Code, or nil for unmapped codes.
	Err error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func mapHTTPError(resp *resty.Response) error {
	return statusError(resp.StatusCode(), string(resp.Body()))
}

func statusError(code int, body string) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body = strings.TrimSpace(body)
	if body == "" {
		body = http.StatusText(code)
	}

	e := &StatusError{Code: code, Body: body}
	switch code {
	case http.StatusBadRequest:
		e.Err = ErrBadRequest
	case http.StatusUnauthorized:
		e.Err = ErrUnauthorized
	case http.StatusForbidden:
		e.Err = ErrForbidden
	case http.StatusNotFound:
		e.Err = ErrNotFound
	case http.StatusConflict:
		e.Err = ErrConflict
	case http.StatusTooManyRequests:
		e.Err = ErrTooManyRequests
	case http.StatusInternalServerError:
		e.Err = ErrInternalServerError
	case http.StatusBadGateway:
		e.Err = ErrBadGateway
	case http.StatusServiceUnavailable:
		e.Err = ErrServiceUnavailable
	}
	return e
}
