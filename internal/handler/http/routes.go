package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// long-running operations
		r.Post("/sync", h.triggerSync)
		r.Post("/content/fetch", h.fetchContent)
		r.Post("/invoke", h.invoke)

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Get("/version", h.version)
			r.Get("/storage/path", h.storagePath)
			r.Post("/query", h.executeQuery)
			r.Post("/query/batch", h.executeBatch)
			r.Get("/connectivity", h.checkConnectivity)

			r.Get("/sync/status", h.syncStatus)
			r.Get("/sync/failed", h.failedChanges)
			r.Post("/sync/failed/{table}/{id}/retry", h.retryFailed)
			r.Delete("/sync/failed/{table}/{id}", h.discardFailed)
			r.Get("/sync/conflicts", h.conflicts)

			r.Get("/content", h.listContent)
			r.Delete("/content", h.clearContent)
			r.Get("/content/usage", h.contentUsage)
			r.Get("/content/{id}", h.contentInfo)
			r.Delete("/content/{id}", h.evictContent)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
