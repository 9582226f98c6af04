package main

import (
	"Alternify/internal/auth"
	"Alternify/internal/config"
	"Alternify/internal/handlers"
	"Alternify/internal/middleware"
	"Alternify/internal/payment"
	"Alternify/internal/repo"
	"Alternify/internal/repo/mongostore"
	"Alternify/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize storage", "error", err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			sugar.Errorw("failed to close storage", "error", err)
		}
	}()

	if cfg.PaymentSecretKey == "" {
		sugar.Warnw("payment key is not set, payment intents will be rejected")
	}

	svc := handlers.Services{
		Queries:         service.NewQueryService(store.Queries, sugar),
		Recommendations: service.NewRecommendationService(store.Recommendations, store.Queries, store.Tx, sugar),
		Donations: service.NewDonationService(
			payment.NewStripeProvider(cfg.PaymentSecretKey), store.Donations, cfg.PaymentCurrency, sugar,
		),
		Tokens: auth.NewTokenService(cfg.AuthSecret),
	}
	h := handlers.NewHandler(svc, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"AppEnv", cfg.AppEnv,
		"StrictScope", cfg.StrictScope,
		"ClientOrigins", cfg.ClientOrigins,
	)

	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Infow("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server forced shutdown", "error", err)
	}
	sugar.Infow("server stopped")
}

// openStore выбирает хранилище по схеме DSN: mongodb:// или gorm (postgres/sqlite).
func openStore(ctx context.Context, cfg *config.Config) (*repo.Store, error) {
	if strings.HasPrefix(cfg.DatabaseDSN, "mongodb") {
		return mongostore.NewStore(ctx, cfg.DatabaseDSN, cfg.DatabaseName)
	}
	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return repo.NewGormStore(db), nil
}
