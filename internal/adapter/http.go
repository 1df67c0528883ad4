package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

const (
	healthPath  = "/api/health"
	pushPath    = "/api/sync/push"
	changesPath = "/api/sync/changes"

	// errorBodyLimit caps how much of a failed download body is read for
	// the error message.
	errorBodyLimit = 4 << 10
)

type httpRemoteAdapter struct {
	// client serves API calls and is bounded by the request timeout.
	client *utils.HTTPClient
	// probe serves health checks and is bounded by the probe timeout.
	probe *utils.HTTPClient
	// download streams content; its deadline comes from the caller.
	download *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRemoteAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		probe:    utils.NewHTTPClient(baseURL, adapterCfg.ProbeTimeout),
		download: utils.NewHTTPClient(baseURL, 0),
		logger:   logger,
	}

	if token := strings.TrimSpace(adapterCfg.Token); token != "" {
		a.client.SetAuthToken(token)
		a.download.SetAuthToken(token)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [RemoteAdapter].
func (h *httpRemoteAdapter) Health(ctx context.Context) error {
	resp, err := h.probe.R().
		SetContext(ctx).
		Head(healthPath)
	if err != nil {
		return fmt.Errorf("%w: health probe: %v", ErrTransport, err)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return statusError(resp.StatusCode(), "")
	}
	return nil
}

// Push implements [RemoteAdapter]. POST /api/sync/push answers 200 with an
// applied verdict, 409 with the conflicting remote record and 422 with a
// rejection reason.
func (h *httpRemoteAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pushPath)
	if err != nil {
		log.Err(err).Str("func", "httpRemoteAdapter.Push").Str("entity_id", req.EntityID).Msg("push request failed")
		return models.PushResponse{}, fmt.Errorf("%w: push request: %v", ErrTransport, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusConflict, http.StatusUnprocessableEntity:
	default:
		return models.PushResponse{}, mapHTTPError(resp)
	}

	var out models.PushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: decode push response: %v", ErrUnexpectedResponse, err)
	}

	switch {
	case resp.StatusCode() == http.StatusOK && out.Result == models.PushApplied:
	case resp.StatusCode() == http.StatusConflict && out.Result == models.PushConflict && out.Remote != nil:
	case resp.StatusCode() == http.StatusUnprocessableEntity:
		out.Result = models.PushRejected
	default:
		return models.PushResponse{}, fmt.Errorf("%w: status %d with result %q", ErrUnexpectedResponse, resp.StatusCode(), out.Result)
	}

	return out, nil
}

// Pull implements [RemoteAdapter]. It GETs /api/sync/changes.
func (h *httpRemoteAdapter) Pull(ctx context.Context, since string, limit int) (models.ChangesResponse, error) {
	var out models.ChangesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("since", since).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetHeader("Accept", "application/json").
		Get(changesPath)
	if err != nil {
		return models.ChangesResponse{}, fmt.Errorf("%w: pull request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangesResponse{}, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ChangesResponse{}, fmt.Errorf("%w: decode changes: %v", ErrUnexpectedResponse, err)
	}
	if out.Changes == nil {
		out.Changes = []models.RemoteRecord{}
	}

	return out, nil
}

// Download implements [RemoteAdapter]. sourceURL may be absolute or
// relative to the remote base URL.
func (h *httpRemoteAdapter) Download(ctx context.Context, sourceURL string) (*Download, error) {
	resp, err := h.download.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %w", ErrTransport, sourceURL, err)
	}

	body := resp.RawBody()
	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(body, errorBodyLimit))
		body.Close()
		return nil, statusError(code, string(msg))
	}

	length := int64(-1)
	if resp.RawResponse != nil {
		length = resp.RawResponse.ContentLength
	}

	return &Download{Body: &transportReader{body}, ContentLength: length}, nil
}

// transportReader marks mid-stream body failures as transport errors so
// callers can retry them.
type transportReader struct {
	io.ReadCloser
}

func (r *transportReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return n, err
}
