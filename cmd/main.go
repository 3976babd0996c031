package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aifit/config"
	"aifit/metrics"
	"aifit/middlewares"
	"aifit/repository"
	"aifit/routes"
	"aifit/services"
	"aifit/utils"
)

const (
	shutdownTimeout = 10 * time.Second
	memoryCacheSize = 1000
)

func main() {
	cfg := config.Load()

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg)
	if err != nil {
		return err
	}
	config.DB = db
	metrics.Register()

	users := repository.NewGormUserRepository(db)
	calcs := repository.NewGormCalculationRepository(db)
	chats := repository.NewGormChatRepository(db)
	videos := repository.NewGormVideoRepository(db)

	videoSvc := services.NewVideoService(videos)
	if n, err := videoSvc.Seed(ctx); err != nil {
		logger.Warn("failed to seed workout videos", "error", err)
	} else if n > 0 {
		logger.Info("seeded workout videos", "count", n)
	}

	cache := newCache(ctx, cfg, logger)

	var mailer utils.Mailer = utils.LogMailer{Logger: logger}
	if cfg.SESEmail != "" {
		ses, err := utils.NewSESMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			logger.Warn("SES unavailable, reset emails will be logged", "error", err)
		} else {
			mailer = ses
		}
	}

	var gen services.Generator
	model, err := services.NewLLMModel(ctx, cfg)
	if err != nil {
		logger.Warn("AI coach disabled, chat will answer with the fallback", "error", err)
	} else {
		gen = model
		logger.Info("AI coach ready", "provider", cfg.LLMProvider, "model", model.Model())
	}

	hub := services.NewRealtimeHub()
	var limiter *middlewares.RateLimiter
	if cfg.ChatRateLimit > 0 {
		limiter = middlewares.NewRateLimiter(cfg.ChatRateLimit, time.Minute)
	}

	router := routes.SetupRouter(routes.Dependencies{
		Auth:         services.NewAuthService(users, mailer, cfg.JWTSecret, cfg.JWTTTL, logger),
		Calculations: services.NewCalculationService(calcs, hub, logger),
		Chat:         services.NewChatService(gen, chats, cache, cfg.ChatCacheTTL, hub, logger),
		Videos:       videoSvc,
		Hub:          hub,
		ChatLimiter:  limiter,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache prefers Redis and falls back to process memory when REDIS_ADDR is
// unset or unreachable.
func newCache(ctx context.Context, cfg config.Config, logger *slog.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache(memoryCacheSize, cfg.ChatCacheTTL)
	}

	rc := repository.NewRedisCache(repository.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   "aifit:",
	})
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		_ = rc.Close()
		return repository.NewMemoryCache(memoryCacheSize, cfg.ChatCacheTTL)
	}
	return rc
}
