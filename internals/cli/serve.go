package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"scholartrack_backend/internals/configs"
	database "scholartrack_backend/internals/databases"
	"scholartrack_backend/internals/metrics"
	authMiddleware "scholartrack_backend/internals/middlewares/auth"
	routes "scholartrack_backend/internals/route"
	catalogSeed "scholartrack_backend/internals/seeds/catalog"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Error("❌ config tidak valid", zap.Error(err))
		return err
	}

	deps, cleanup, err := buildDeps(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	app := routes.NewApp(deps)

	// Start server non-blocking
	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return errors.Wrap(err, "server error")
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info("🛑 Shutting down...")
	return app.ShutdownWithContext(ctx)
}

// buildDeps: store (postgres | memory), limiter storage + blacklist (redis opsional), services.
func buildDeps(ctx context.Context, cfg configs.Config, log *zap.Logger) (routes.Deps, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	m := metrics.New()
	deps := routes.Deps{Config: cfg, Log: log, Metrics: m, AccessLog: true}

	var db *gorm.DB
	var catalog *catalogSeed.File
	switch cfg.StoreDriver {
	case configs.StoreDriverPostgres:
		var err error
		db, err = database.ConnectDB(cfg, log)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = database.Close(db) })
		deps.DB = db
	case configs.StoreDriverMemory:
		f, err := catalogSeed.LoadFile(cfg.CatalogSeedFile)
		if err != nil {
			// katalog kosong tetap jalan; semua create akan 404
			log.Warn("⚠️ katalog memory kosong", zap.Error(err))
		} else {
			catalog = f
		}
	}

	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("⚠️ redis tidak tersedia, limiter pakai memory lokal", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = client.Close() })
			deps.LimiterStorage = database.NewRedisStorage(client, "limiter:")
			deps.BlacklistChecker = authMiddleware.NewRedisBlacklist(client, cfg.JWTSecret).Checker
		}
	}

	deps.College, deps.Scholarship = routes.BuildServices(db, catalog, cfg.DeadlineWindowDays, log, m)
	return deps, cleanup, nil
}
