// Command kickoffd is the hosted Kickoff platform service.
// It serves the dataset registry and league query API, and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/kickoff/kickoff/internal/api"
	"github.com/kickoff/kickoff/internal/dataset"
	"github.com/kickoff/kickoff/internal/ingestion"
	"github.com/kickoff/kickoff/internal/platform"
)

type config struct {
	Port             string
	DatabaseURL      string
	APIKey           string
	GCSBucket        string
	S3Bucket         string
	S3Region         string
	S3Endpoint       string
	S3AccessKey      string
	S3SecretKey      string
	LocalStoragePath string
}

func loadConfig() config {
	return config{
		Port:             envOrDefault("PORT", "8080"),
		DatabaseURL:      envOrDefault("DATABASE_URL", "postgres://localhost:5432/kickoff?sslmode=disable"),
		APIKey:           os.Getenv("API_KEY"),
		GCSBucket:        os.Getenv("GCS_BUCKET"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		S3Region:         envOrDefault("S3_REGION", "us-east-1"),
		S3Endpoint:       os.Getenv("S3_ENDPOINT"),
		S3AccessKey:      os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:      os.Getenv("S3_SECRET_KEY"),
		LocalStoragePath: envOrDefault("LOCAL_STORAGE_PATH", "/tmp/kickoff-data"),
	}
}

func main() {
	cfg := loadConfig()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	datasetSvc := dataset.NewService(db)
	ingestionSvc := ingestion.NewService(db, datasetSvc, storage)
	handler := api.NewHandler(db, datasetSvc, ingestionSvc, nil)

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthHandler(db))
	mux.Handle("/api/", api.CORS(api.APIKeyAuth(cfg.APIKey)(apiMux)))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.Printf("starting kickoffd on :%s", cfg.Port)
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

// newStorage picks the blob backend: GCS if GCS_BUCKET is set, then S3 if
// S3_BUCKET is set, otherwise the local filesystem.
func newStorage(ctx context.Context, cfg config) (ingestion.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		log.Printf("using GCS storage bucket %s", cfg.GCSBucket)
		return ingestion.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		log.Printf("using S3 storage bucket %s", cfg.S3Bucket)
		return ingestion.NewS3Storage(ctx, ingestion.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		log.Printf("using local storage at %s", cfg.LocalStoragePath)
		return ingestion.NewLocalStorage(cfg.LocalStoragePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
