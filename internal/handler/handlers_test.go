package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

// TestNewHandlers_WithAddress verifies that a configured bridge address
// produces an HTTP handler.
func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:47821", RequestTimeout: time.Second}

	h, err := NewHandlers(nil, models.AppBuildInfo{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies the misconfiguration error.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(nil, models.AppBuildInfo{}, config.ClientServer{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
