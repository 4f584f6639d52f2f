// cmd/docengine/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/api"
	"grc-docengine/internal/archive"
	"grc-docengine/internal/assembly"
	"grc-docengine/internal/cache"
	"grc-docengine/internal/common/config"
	"grc-docengine/internal/common/database"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/common/observability"
	"grc-docengine/internal/generate"
	"grc-docengine/internal/notify"
	"grc-docengine/internal/remote"
	"grc-docengine/internal/upload"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting document engine...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)

	ctx := context.Background()

	// --- Init PostgreSQL (local archive) ---
	var archiveStore *archive.Store
	if cfg.Database.Postgres.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()
		archiveStore = archive.NewStore(pg.DB, log)
		zapLog.Info("PostgreSQL connected successfully")
	} else {
		zapLog.Info("PostgreSQL disabled, local archive unavailable")
	}

	// --- Init Elasticsearch (audit trail) ---
	var auditIndexer *archive.AuditIndexer
	if cfg.Database.Elasticsearch.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		auditIndexer = archive.NewAuditIndexer(esClient.Client, log)
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Init Redis (analysis cache) ---
	var analysisCache *cache.AnalysisCache
	if cfg.Cache.Enabled {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		analysisCache = cache.New(redis.Client, config.GetDuration(cfg.Cache.TTL*1000), log)
		zapLog.Info("Redis connected successfully")
	}

	// --- Init remote AI service client ---
	var remoteClient *remote.Client
	if cfg.Remote.BaseURL != "" {
		remoteClient = remote.NewClient(cfg.Remote, log)
		zapLog.Info("Remote AI service client initialized",
			zap.String("baseURL", cfg.Remote.BaseURL))
	} else {
		zapLog.Warn("Remote AI service not configured, running fully local")
	}

	// --- Init risk notifier ---
	notifier, err := notify.New(ctx, cfg.Notifications, log)
	if err != nil {
		zapLog.Fatal("notifier init failed", zap.Error(err))
	}

	// --- Wire the engine ---
	analyzer := analysis.New()
	opts := upload.Options{
		Cache:    analysisCache,
		Archive:  archiveStore,
		Indexer:  auditIndexer,
		Notifier: notifier,
		Obs:      obs,
	}
	if remoteClient != nil {
		opts.Remote = remoteClient
	}
	workflow := upload.NewWorkflow(analyzer, opts, log)
	generator := generate.NewService(assembly.New(), remoteGenerator(remoteClient), log)

	server := api.NewServer(workflow, generator, log)

	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Admin endpoint: metrics, pprof, liveness.
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	adminMux.Handle("/debug/", http.DefaultServeMux)
	adminServer := &http.Server{
		Addr:              cfg.Server.AdminAddress,
		Handler:           adminMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLog.Info("Admin server listening", zap.String("address", cfg.Server.AdminAddress))
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("admin server failed", zap.Error(err))
		}
	}()

	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.ListenAddress))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("api server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("api server shutdown failed", zap.Error(err))
	}
	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("admin server shutdown failed", zap.Error(err))
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("observability shutdown failed", zap.Error(err))
	}

	zapLog.Info("Document engine stopped")
}

// remoteGenerator keeps a nil *remote.Client from becoming a non-nil
// interface value inside the generate service.
func remoteGenerator(c *remote.Client) generate.RemoteGenerator {
	if c == nil {
		return nil
	}
	return c
}
