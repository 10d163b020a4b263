package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/glitzzera/admin-core/internal/config"
	"github.com/glitzzera/admin-core/internal/storage"
	"github.com/glitzzera/admin-core/internal/store"
	"github.com/glitzzera/admin-core/pkg/shopapi"
)

// main wires the admin application core: config, logger, durable storage,
// backend client, and the state container. It restores any persisted
// session, runs the initial cache sync, and then waits for a UI shell to
// drive the store.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("backend", cfg.BackendURL).Msg("starting glitzzera admin")

	// 3. Open durable storage
	kv, err := openStorage(cfg)
	if err != nil {
		log.Error().Err(err).Msg("storage initialization failed")
		fmt.Fprintf(os.Stderr, "storage initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	// 4. Backend client and state container
	client := shopapi.NewClient(cfg.BackendURL, cfg.HTTPTimeout, cfg.Env == "development")
	st := store.New(client, kv, cfg.Session)

	// 5. Restore persisted session and warm caches
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := st.Restore(ctx); err != nil {
		log.Error().Err(err).Msg("session restore failed")
	}
	log.Info().
		Stringer("auth", st.AuthState()).
		Str("page", string(st.CurrentPage())).
		Int("products", st.Stats().TotalProducts).
		Msg("state container ready")

	// 6. Wait for interrupt; the UI shell owns the store from here.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
}

// openStorage selects the durable KV driver from config.
func openStorage(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		return storage.NewRedisKV(&cfg.Redis)
	default:
		return storage.NewFileKV(cfg.Storage.Path)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
