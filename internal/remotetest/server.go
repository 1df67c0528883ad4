// Package remotetest runs an in-memory remote learning service for tests.
//
// The server speaks the same wire contract as the production remote:
// health probe, per-change push with revision checks, a paged change feed
// and plain content downloads. Tests seed remote-side changes, inject
// failures and read counters through the exported methods.
package remotetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-academy-offline/internal/utils"
	"github.com/MKhiriev/go-academy-offline/models"
)

type entityKey struct {
	table string
	id    string
}

// Server is the fake remote. The zero value is not usable; call New.
type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	revision  int64
	records   map[entityKey]models.RemoteRecord
	feed      []models.RemoteRecord
	pushes    []models.PushRequest
	rejects   map[string]string
	failPush  int
	down      bool
	blobs     map[string][]byte
	downloads map[string]int
	failBlob  map[string]int
	gate      chan struct{}
	pushGate  chan struct{}
}

// New starts a fake remote and stops it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		records:   make(map[entityKey]models.RemoteRecord),
		rejects:   make(map[string]string),
		blobs:     make(map[string][]byte),
		downloads: make(map[string]int),
		failBlob:  make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.availability)
	r.Head("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/api/sync/push", s.push)
	r.Get("/api/sync/changes", s.changes)
	r.Get("/content/{id}", s.content)

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the base URL of the server.
func (s *Server) URL() string {
	return s.srv.URL
}

// ContentURL is the download URL of a blob registered with SetBlob.
func (s *Server) ContentURL(id string) string {
	return s.srv.URL + "/content/" + id
}

// SetDown makes every endpoint answer 503 until called with false.
func (s *Server) SetDown(down bool) {
	s.mu.Lock()
	s.down = down
	s.mu.Unlock()
}

// Seed stores a remote-side change as if another device pushed it. The
// record gets the next revision, which is returned.
func (s *Server) Seed(rec models.RemoteRecord) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(rec)
}

// Record returns the current remote version of an entity.
func (s *Server) Record(table, id string) (models.RemoteRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[entityKey{table, id}]
	return rec, ok
}

// RejectTable answers every push to table with 422 and reason.
func (s *Server) RejectTable(table, reason string) {
	s.mu.Lock()
	s.rejects[table] = reason
	s.mu.Unlock()
}

// FailPushes answers the next n pushes with 503.
func (s *Server) FailPushes(n int) {
	s.mu.Lock()
	s.failPush = n
	s.mu.Unlock()
}

// Pushes returns every push request received so far.
func (s *Server) Pushes() []models.PushRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PushRequest(nil), s.pushes...)
}

// SetBlob registers downloadable content under id.
func (s *Server) SetBlob(id string, data []byte) {
	s.mu.Lock()
	s.blobs[id] = data
	s.mu.Unlock()
}

// FailDownloads answers the next n downloads of id with 503.
func (s *Server) FailDownloads(id string, n int) {
	s.mu.Lock()
	s.failBlob[id] = n
	s.mu.Unlock()
}

// HoldDownloads blocks content responses until the returned function is
// called.
func (s *Server) HoldDownloads() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.gate = nil
			s.mu.Unlock()
			close(gate)
		})
	}
}

// HoldPushes blocks push responses until the returned function is called.
// A held push whose client goes away is not applied.
func (s *Server) HoldPushes() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.pushGate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.pushGate = nil
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Downloads returns how many times id was served successfully.
func (s *Server) Downloads(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloads[id]
}

func (s *Server) availability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		down := s.down
		s.mu.Unlock()

		if down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) push(w http.ResponseWriter, r *http.Request) {
	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_, _ = utils.WriteJSON(w, models.PushResponse{Result: models.PushRejected, Reason: err.Error()}, http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	s.pushes = append(s.pushes, req)
	gate := s.pushGate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failPush > 0 {
		s.failPush--
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	if reason, ok := s.rejects[req.EntityTable]; ok {
		_, _ = utils.WriteJSON(w, models.PushResponse{Result: models.PushRejected, Reason: reason}, http.StatusUnprocessableEntity)
		return
	}

	current, exists := s.records[entityKey{req.EntityTable, req.EntityID}]
	if exists && !req.Force && current.Revision > req.BaseRevision {
		remote := current
		_, _ = utils.WriteJSON(w, models.PushResponse{Result: models.PushConflict, Remote: &remote}, http.StatusConflict)
		return
	}

	revision := s.apply(models.RemoteRecord{
		EntityTable: req.EntityTable,
		EntityID:    req.EntityID,
		Operation:   req.Operation,
		Payload:     req.Payload,
		UpdatedAt:   req.UpdatedAt,
	})
	_, _ = utils.WriteJSON(w, models.PushResponse{Result: models.PushApplied, Revision: revision}, http.StatusOK)
}

// apply must run with mu held.
func (s *Server) apply(rec models.RemoteRecord) int64 {
	s.revision++
	rec.Revision = s.revision
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	s.records[entityKey{rec.EntityTable, rec.EntityID}] = rec
	s.feed = append(s.feed, rec)
	return rec.Revision
}

func (s *Server) changes(w http.ResponseWriter, r *http.Request) {
	since, _ := strconv.ParseInt(r.URL.Query().Get("since"), 10, 64)
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	s.mu.Lock()
	idx := sort.Search(len(s.feed), func(i int) bool { return s.feed[i].Revision > since })
	page := append([]models.RemoteRecord{}, s.feed[idx:min(idx+limit, len(s.feed))]...)
	hasMore := idx+limit < len(s.feed)
	s.mu.Unlock()

	watermark := strconv.FormatInt(since, 10)
	if len(page) > 0 {
		watermark = strconv.FormatInt(page[len(page)-1].Revision, 10)
	}

	_, _ = utils.WriteJSON(w, models.ChangesResponse{Changes: page, Watermark: watermark, HasMore: hasMore}, http.StatusOK)
}

func (s *Server) content(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	s.mu.Lock()
	data, ok := s.blobs[id]
	failing := s.failBlob[id] > 0
	if failing {
		s.failBlob[id]--
	} else if ok {
		s.downloads[id]++
	}
	s.mu.Unlock()

	switch {
	case failing:
		w.WriteHeader(http.StatusServiceUnavailable)
	case !ok:
		http.NotFound(w, r)
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		_, _ = w.Write(data)
	}
}
