package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.Response{Status: models.StatusSuccess, Data: h.buildInfo.Info()})
}

func (h *Handler) storagePath(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.StoragePath(r.Context()))
}

func (h *Handler) executeQuery(w http.ResponseWriter, r *http.Request) {
	var q models.Query
	if err := decodeBody(w, r, &q); err != nil {
		h.respond(w, r, models.QueryResponse{Status: models.StatusError, Error: invalidRequest(err.Error())})
		return
	}
	h.respond(w, r, h.boundary.ExecuteQuery(r.Context(), q))
}

func (h *Handler) executeBatch(w http.ResponseWriter, r *http.Request) {
	var queries []models.Query
	if err := decodeBody(w, r, &queries); err != nil {
		h.respond(w, r, models.Response{Status: models.StatusError, Error: invalidRequest(err.Error())})
		return
	}
	h.respond(w, r, h.boundary.ExecuteBatch(r.Context(), queries))
}

func (h *Handler) checkConnectivity(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.CheckConnectivity(r.Context()))
}

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.TriggerSync(r.Context()))
}

func (h *Handler) fetchContent(w http.ResponseWriter, r *http.Request) {
	var req models.FetchRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respond(w, r, models.FetchResponse{Status: models.StatusError, Error: invalidRequest(err.Error())})
		return
	}
	h.respond(w, r, h.boundary.FetchContent(r.Context(), req))
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.SyncStatus(r.Context()))
}

func (h *Handler) failedChanges(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.FailedChanges(r.Context()))
}

func (h *Handler) retryFailed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.RetryFailed(r.Context(), chi.URLParam(r, "table"), chi.URLParam(r, "id")))
}

func (h *Handler) discardFailed(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.DiscardFailed(r.Context(), chi.URLParam(r, "table"), chi.URLParam(r, "id")))
}

func (h *Handler) conflicts(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respond(w, r, models.Response{Status: models.StatusError, Error: invalidRequest("limit must be a non-negative integer")})
			return
		}
		limit = n
	}
	h.respond(w, r, h.boundary.Conflicts(r.Context(), limit))
}

func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.ListContent(r.Context()))
}

func (h *Handler) contentUsage(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.ContentUsage(r.Context()))
}

func (h *Handler) contentInfo(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.ContentInfo(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) evictContent(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.EvictContent(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) clearContent(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.boundary.ClearContent(r.Context()))
}

func (h *Handler) invoke(w http.ResponseWriter, r *http.Request) {
	var req models.InvokeRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respond(w, r, models.Response{Status: models.StatusError, Error: invalidRequest(err.Error())})
		return
	}
	h.respond(w, r, h.boundary.Dispatch(r.Context(), req))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, envelope any) {
	if _, err := utils.WriteJSON(w, envelope, statusFromError(envelopeError(envelope))); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.respond").Msg("failed to write response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed request body: %w", err)
	}
	return nil
}
