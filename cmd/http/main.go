package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/orbitln/orbithub/api"
	"github.com/orbitln/orbithub/config"
	"github.com/orbitln/orbithub/db"
	"github.com/orbitln/orbithub/db/migrations"
	"github.com/orbitln/orbithub/history"
	"github.com/orbitln/orbithub/http"
	"github.com/orbitln/orbithub/liquidity"
	"github.com/orbitln/orbithub/logger"
)

func main() {
	// .env is optional, real deployments configure via the environment
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(appConfig.LogLevel)
	if appConfig.LogToFile {
		if err := logger.AddFileLogger(appConfig.Workdir); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to attach file logger")
		}
	}

	logger.Logger.Info().Msg("Orbithub starting in HTTP mode")

	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-osSignalChannel
		logger.Logger.Info().Interface("signal", sig).Msg("Received OS signal")
		cancel()
	}()

	gormDB, err := db.NewDB(appConfig.DatabaseUri, appConfig.LogDBQueries)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open database")
		return
	}
	if err := migrations.Migrate(gormDB); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		return
	}

	liquiditySvc := liquidity.NewCatalogService(gormDB, appConfig.CatalogUrl)
	liquiditySvc.Start()

	historySvc := history.NewHistoryService()

	e := echo.New()
	httpSvc := http.NewHttpService(api.NewAPI(historySvc, liquiditySvc), appConfig)
	httpSvc.RegisterSharedRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf(":%v", appConfig.Port)); err != nil && err != nethttp.ErrServerClosed {
			logger.Logger.Error().Err(err).Msg("echo server failed to start")
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down echo server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to shutdown echo server")
	}

	if err := db.Stop(gormDB); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close database")
	}
	logger.Logger.Info().Msg("Orbithub exited")
}
