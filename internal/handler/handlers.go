package handler

import (
	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/handler/http"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/service"
	"github.com/MKhiriev/go-academy-offline/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(boundary service.BoundaryService, buildInfo models.AppBuildInfo, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(boundary, buildInfo, cfg.RequestTimeout, logger),
	}, nil
}
