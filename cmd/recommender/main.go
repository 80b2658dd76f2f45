// cmd/recommender/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/seifbadreldinx/futureintern/internal/common/config"
	"github.com/seifbadreldinx/futureintern/internal/common/database"
	apperrors "github.com/seifbadreldinx/futureintern/internal/common/errors"
	"github.com/seifbadreldinx/futureintern/internal/common/logger"
	"github.com/seifbadreldinx/futureintern/internal/matching"
	"github.com/seifbadreldinx/futureintern/internal/recommend"
	"github.com/seifbadreldinx/futureintern/internal/storage"
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
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting recommender...",
		zap.String("environment", cfg.App.Environment),
		zap.String("strategy", cfg.Matching.Strategy),
	)

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
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
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Build Engine & Service ---
	engine, err := recommend.EngineFromConfig(cfg.Matching)
	if err != nil {
		zapLog.Fatal("matching engine construction failed", zap.Error(err))
	}

	svc := recommend.NewService(
		storage.New(pg.DB, log),
		rdb.Client,
		engine,
		log,
		time.Duration(cfg.Matching.ProfileCacheTTLSecs)*time.Second,
		cfg.Matching.DefaultLimit,
	)

	zapLog.Info("Recommendation service ready",
		zap.String("strategy", string(engine.Strategy())),
		zap.Int("defaultLimit", cfg.Matching.DefaultLimit),
	)

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/recommendations", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			studentID := r.URL.Query().Get("student_id")
			if studentID == "" {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "student_id is required"})
				return
			}

			var opts matching.RankOptions
			if raw := r.URL.Query().Get("min_score"); raw != "" {
				min, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(map[string]string{"error": "min_score must be a number"})
					return
				}
				opts.MinScore = &min
			}
			if raw := r.URL.Query().Get("limit"); raw != "" {
				limit, err := strconv.Atoi(raw)
				if err != nil {
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(map[string]string{"error": "limit must be an integer"})
					return
				}
				opts.Limit = limit
			}

			recs, err := svc.Recommend(r.Context(), studentID, opts)
			if err != nil {
				status := http.StatusInternalServerError
				if stdErr, ok := err.(*apperrors.StandardError); ok && stdErr.Code == apperrors.ErrCodeStudentNotFound {
					status = http.StatusNotFound
				}
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}

			json.NewEncoder(w).Encode(recs)
		})

		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := pg.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_ = shutdownCtx

	zapLog.Info("Recommender stopped gracefully")
}
