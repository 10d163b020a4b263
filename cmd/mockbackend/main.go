package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/config"
	"github.com/glitzzera/admin-core/internal/mockapi"
)

// main runs the in-memory mock of the Glitzzera backend for local
// development, seeded with a small jewelry catalog.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	server := mockapi.NewServer()
	server.Seed(mockapi.SampleProducts(), mockapi.SampleCategories(), nil, mockapi.SampleUsers(), mockapi.SampleAddresses())

	srv := &http.Server{
		Addr:    ":" + cfg.Mock.Port,
		Handler: server.Handler(),
	}

	go func() {
		log.Info().Str("port", cfg.Mock.Port).Msg("starting mock backend")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("mock backend failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down mock backend")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mock backend forced to shutdown")
	}
}
