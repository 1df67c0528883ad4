package http

import (
	"time"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/service"
	"github.com/MKhiriev/go-academy-offline/models"
)

// maxBodyBytes caps request bodies accepted by the bridge.
const maxBodyBytes = 1 << 20

type Handler struct {
	boundary  service.BoundaryService
	buildInfo models.AppBuildInfo

	// requestTimeout bounds short operations. Sync and content fetches
	// run under the caller's context only.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(boundary service.BoundaryService, buildInfo models.AppBuildInfo, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		boundary:       boundary,
		buildInfo:      buildInfo,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
