// Command resistwatchd is the Resistwatch platform service.
// It serves the REST API and a health check, runs migrations on startup,
// and archives assessment snapshots to blob storage.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/resistwatch/resistwatch/internal/api"
	"github.com/resistwatch/resistwatch/internal/platform"
	"github.com/resistwatch/resistwatch/internal/recalc"
	"github.com/resistwatch/resistwatch/internal/store"
	"github.com/resistwatch/resistwatch/pkg/config"
	"github.com/resistwatch/resistwatch/pkg/scoring"
)

func main() {
	cfg, err := config.Load(envOrDefault("CONFIG_PATH", "resistwatch.yaml"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.FromEnv()

	weights, err := cfg.EngineWeights()
	if err != nil {
		log.Fatalf("scoring config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Server.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := buildStorage(ctx, cfg.Archive)
	if err != nil {
		log.Fatalf("storage backend: %v", err)
	}

	storeSvc := store.NewService(db)
	recalcSvc := recalc.NewService(db, scoring.NewEngine(weights), storage)
	handler := api.NewHandler(db, storeSvc, recalcSvc)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: api.CORS(api.APIKeyAuth(cfg.Server.APIKey)(mux)),
	}

	go func() {
		log.Printf("starting resistwatchd on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildStorage(ctx context.Context, cfg config.ArchiveConfig) (recalc.StorageClient, error) {
	switch cfg.Backend {
	case "", "local":
		return recalc.NewLocalStorage(cfg.LocalPath), nil
	case "s3":
		return recalc.NewS3Storage(ctx, recalc.S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
	case "gcs":
		return recalc.NewGCSStorage(ctx, cfg.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
