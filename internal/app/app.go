package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TNRIN/DRESS/internal/config"
	"github.com/TNRIN/DRESS/internal/event"
	handler "github.com/TNRIN/DRESS/internal/handler/http"
	"github.com/TNRIN/DRESS/internal/repository"
	"github.com/TNRIN/DRESS/internal/repository/file"
	"github.com/TNRIN/DRESS/internal/repository/memory"
	redisrepo "github.com/TNRIN/DRESS/internal/repository/redis"
	"github.com/TNRIN/DRESS/internal/service"
	"github.com/TNRIN/DRESS/pkg/health"
	pkgkafka "github.com/TNRIN/DRESS/pkg/kafka"
	"github.com/TNRIN/DRESS/pkg/middleware"
	"github.com/TNRIN/DRESS/pkg/tracing"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
// A missing or broken catalog document does not abort startup; the catalog
// endpoints answer 503 until a reload succeeds.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TracingSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Cart persistence backend.
	var (
		cartRepo repository.CartRepository
		rdb      *redis.Client
	)
	switch cfg.CartBackend {
	case config.CartBackendRedis:
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		cartRepo = redisrepo.NewCartRepository(rdb)
	case config.CartBackendMemory:
		logger.Info("using in-memory cart backend")
		cartRepo = memory.NewCartRepository()
	default:
		return nil, fmt.Errorf("unknown cart backend: %q", cfg.CartBackend)
	}

	// Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	eventProducer := event.NewProducer(producer, logger)

	// Store settings, with built-in defaults as the fallback.
	settingsService := service.NewSettingsService(logger)
	settingsService.Load(ctx, file.NewSettingsSource(cfg.SettingsPath))

	// Product catalog.
	catalogService := service.NewCatalogService(file.NewCatalogSource(cfg.ProductsPath), logger)
	if err := catalogService.Load(ctx); err != nil {
		logger.Warn("starting without catalog, reload to recover",
			slog.String("path", cfg.ProductsPath),
			slog.String("error", err.Error()),
		)
	}

	cartService := service.NewCartService(
		cartRepo,
		settingsService,
		eventProducer,
		logger,
		cfg.CartTTLDuration(),
		cfg.FreeShippingThreshold,
	)
	checkoutService := service.NewCheckoutService(cartService, settingsService, eventProducer, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", catalogService.Ready)
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins

	router := handler.NewRouter(
		handler.Services{
			Catalog:  catalogService,
			Cart:     cartService,
			Checkout: checkoutService,
			Settings: settingsService,
		},
		healthHandler,
		logger,
		corsConfig,
		cfg.FreeShippingThreshold,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
