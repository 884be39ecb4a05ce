package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bistro-boss-api/config"
	"bistro-boss-api/handlers"
	"bistro-boss-api/middleware"
	"bistro-boss-api/payment"
	"bistro-boss-api/routes"
	"bistro-boss-api/seed"
	"bistro-boss-api/store"
	"bistro-boss-api/store/mongostore"
	"bistro-boss-api/store/sqlstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Conn.Close(closeCtx); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()

	if cfg.SeedDir != "" {
		if err := seed.Load(ctx, cfg.SeedDir, st, logger); err != nil {
			return err
		}
	}

	if cfg.Payment.SecretKey == "" {
		logger.Warn("PAYMENT_SECRET_KEY is empty; payment intents will be rejected by the processor")
	}
	if !cfg.Auth.GuardOpenRoutes {
		logger.Warn("PATCH /users/admin/:id and DELETE /carts/:id are unguarded (GUARD_OPEN_ROUTES=false)")
	}

	h := handlers.NewHandler(
		st,
		middleware.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
		payment.NewStripe(cfg.Payment.SecretKey),
		logger,
	)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())
	routes.SetupRoutes(r, h, routes.Options{GuardOpenRoutes: cfg.Auth.GuardOpenRoutes})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("bistro boss is sitting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		return sqlstore.Open(cfg.Store.SQLitePath, cfg.Store.AtomicPayments, logger)
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return mongostore.Open(connectCtx, mongostore.Options{
			URI:            cfg.Store.MongoURI,
			Database:       cfg.Store.MongoDatabase,
			AtomicPayments: cfg.Store.AtomicPayments,
		}, logger)
	}
}
