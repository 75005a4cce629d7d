package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	geometryadapter "arx-bim/internal/assembly/adapters/geometry"
	assemblyapp "arx-bim/internal/assembly/application"
	assembly "arx-bim/internal/assembly/domain"
	memoryrepo "arx-bim/internal/assembly/infrastructure/memory"
	postgresrepo "arx-bim/internal/assembly/infrastructure/postgres"
	assemblyhttp "arx-bim/internal/assembly/interfaces/http"
	"arx-bim/internal/auth"
	"arx-bim/internal/observability/metrics"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := assemblyapp.LoadServiceConfig()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("ASSEMBLY_JWT_SECRET is required")
	}

	var db *sql.DB
	var repo assembly.ResultRepository
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("db open error: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("db ping error: %v", err)
		}
		pgRepo := postgresrepo.NewResultRepository(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			cancel()
			logger.Fatalf("db schema error: %v", err)
		}
		cancel()
		repo = pgRepo
	} else {
		logger.Printf("no database configured, storing results in memory")
		repo = memoryrepo.NewResultRepository()
	}

	metrics.Init(db, logger)

	pipeline := assemblyapp.NewPipeline(cfg.Assembly, logger,
		assemblyapp.WithClusterDistance(cfg.ClusterDistance),
		assemblyapp.WithGeometryOptimizer(geometryadapter.NewOptimizer(cfg.Assembly.GeometryTolerance, 0)),
		assemblyapp.WithStageRecorder(metrics.PipelineRecorder{}),
	)

	handler, err := assemblyhttp.NewHandler(pipeline, repo)
	if err != nil {
		logger.Fatalf("assembly handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/assemblies", handler)
	mux.Handle("/api/v1/assemblies/", handler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.ListenAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.ListenAddr)
	logger.Fatal(server.ListenAndServe())
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
