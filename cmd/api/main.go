//	@title			Location Agent API
//	@version		1.0
//	@description	Current location, address lookup and straight-line journey estimates.
//	@BasePath		/

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "location-agent/docs"
	"location-agent/internal/cache"
	"location-agent/internal/client"
	"location-agent/internal/config"
	"location-agent/internal/handler"
	"location-agent/internal/journey"
	"location-agent/internal/repository"
	"location-agent/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(config.LogLevel, config.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Upstream clients
	httpClient := client.NewHTTPClient(config.HTTPTimeout)
	ipLocator := client.NewIPAPIClient(httpClient, config.IPAPIURL, config.DefaultLocation())
	geocoder := client.NewNominatimClient(httpClient, config.NominatimURL, config.UserAgent)

	var opts []service.LocationOption

	// Optional Redis cache
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", config.RedisAddr).Msg("cannot connect to redis")
		}
		opts = append(opts, service.WithCache(cache.NewGeocodeCache(rdb, config.CacheTTL)))
	}

	// Optional place gazetteer
	if config.DBSource != "" {
		conn, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()
		opts = append(opts, service.WithGazetteer(repository.NewRepository(conn)))
	}

	// Initialize layers
	locationService := service.NewLocationService(ipLocator, geocoder, config.DefaultQuery, opts...)
	directionsService := service.NewDirectionsService(locationService, journey.NewEstimator())

	locationHandler := handler.NewLocationHandler(locationService)
	directionsHandler := handler.NewDirectionsHandler(directionsService)

	if config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handler.NewRouter(locationHandler, directionsHandler)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2*config.HTTPTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
