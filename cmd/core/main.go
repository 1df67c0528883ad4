package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-academy-offline/internal/client"
	"github.com/MKhiriev/go-academy-offline/internal/config"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("core")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	rt, err := client.NewRuntime(ctx, cfg, buildInfo)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting local core")
	}

	runErr := rt.Run(ctx)
	if err = rt.Close(); err != nil {
		log.Err(err).Msg("error closing local core")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("local core stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
