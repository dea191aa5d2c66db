package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fcbt5uhrtd65/ProjectStore/config"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/logger"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/producer"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/repository"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/service"
	"github.com/fcbt5uhrtd65/ProjectStore/internal/store"
	transport "github.com/fcbt5uhrtd65/ProjectStore/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)

	var kv store.Store
	if cfg.Redis.Addr != "" {
		rs, err := store.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rs.Close()
		kv = rs
	} else {
		log.Warn("REDIS_ADDR not set, using in-memory store (data is not persisted)")
		kv = store.NewMemoryStore()
	}

	repos := repository.New(kv)
	locks := service.NewKeyedLocks()

	// Event bus is optional; nil disables publishing
	var events service.EventBus
	if len(cfg.Kafka.Brokers) > 0 {
		p := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer p.Close()
		events = p
		log.Info("Kafka order events enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	svcs := transport.Services{
		Catalog:   service.NewCatalogService(repos, locks, log),
		Orders:    service.NewOrderService(repos, locks, events, log),
		Analytics: service.NewAnalyticsService(repos, cfg.LowStockThreshold),
		Settings:  service.NewSettingsService(repos, log),
		Seed:      service.NewSeedService(repos, log),
	}

	verifier := transport.NewHSVerifier(cfg.JWTSecret)
	router := transport.Router(svcs, verifier, log)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting TechStore HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down TechStore HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("TechStore HTTP server stopped gracefully")
}
