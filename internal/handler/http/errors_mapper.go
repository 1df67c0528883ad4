package http

import (
	"net/http"

	"github.com/MKhiriev/go-academy-offline/internal/service"
	"github.com/MKhiriev/go-academy-offline/models"
)

var kindStatusMap = map[string]int{
	service.KindInvalidRequest: http.StatusBadRequest,
	service.KindQueryInvalid:   http.StatusBadRequest,
	service.KindQueryNotFound:  http.StatusNotFound,

	service.KindQueryConstraint: http.StatusConflict,
	service.KindSyncConflict:    http.StatusConflict,
	service.KindSyncTerminal:    http.StatusUnprocessableEntity,

	service.KindSyncNetwork:           http.StatusServiceUnavailable,
	service.KindFetchNetwork:          http.StatusServiceUnavailable,
	service.KindFetchChecksumMismatch: http.StatusBadGateway,

	service.KindPath:     http.StatusInternalServerError,
	service.KindSchema:   http.StatusInternalServerError,
	service.KindQueryIO:  http.StatusInternalServerError,
	service.KindFetchIO:  http.StatusInternalServerError,
	service.KindInternal: http.StatusInternalServerError,
}

func statusFromError(body *models.ErrorBody) int {
	if body == nil {
		return http.StatusOK
	}
	if status, ok := kindStatusMap[body.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// envelopeError extracts the error body of any boundary envelope.
func envelopeError(envelope any) *models.ErrorBody {
	switch e := envelope.(type) {
	case models.PathResponse:
		return e.Error
	case models.QueryResponse:
		return e.Error
	case models.SyncResponse:
		return e.Error
	case models.FetchResponse:
		return e.Error
	case models.Response:
		return e.Error
	}
	return nil
}

func invalidRequest(msg string) *models.ErrorBody {
	return &models.ErrorBody{Kind: service.KindInvalidRequest, Message: msg}
}
