package main

import (
	"context"
	"database/sql"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	dedupehandler "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/handler"
	dedupemetrics "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/metrics"
	dedupeservice "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/dedupe/service"
	identityhandler "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/handler"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/latest"
	identitymetrics "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/metrics"
	identitypublisher "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/publisher"
	identitysvc "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/service"
	identitystore "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/identity/store"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/platform/config"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/platform/httpserver"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/platform/logger"
	platformredis "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/platform/redis"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/internal/store"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/middleware/admin"
	"github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/platform/middleware/requestscope"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slogger := logger.NewStructured()

	// Query collaborator: Postgres when configured, in-memory otherwise.
	var querier store.Querier
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		querier = store.NewPostgres(db)
	} else {
		log.Printf("no database configured, using in-memory store")
		querier = store.NewMemory()
	}

	dedupeM := dedupemetrics.New()
	checker := dedupeservice.NewChecker(querier, dedupeM)
	resolver := dedupeservice.NewResolver(checker, dedupeservice.WithMetrics(dedupeM))

	trackerOpts := []identitysvc.Option{
		identitysvc.WithMetrics(identitymetrics.New()),
		identitysvc.WithLogger(log),
	}

	var mirror *latest.RedisMirror
	if cfg.RedisAddr != "" {
		redisClient, err := platformredis.New(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatalf("connect to redis: %v", err)
		}
		defer redisClient.Close()
		mirror = latest.NewRedisMirror(redisClient.Client)
		trackerOpts = append(trackerOpts, identitysvc.WithSink(mirror))
	}

	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := identitypublisher.NewKafka(cfg.KafkaBrokers, identitypublisher.WithTopic(cfg.KafkaTopic))
		if err != nil {
			log.Fatalf("create kafka publisher: %v", err)
		}
		defer kafka.Close()
		trackerOpts = append(trackerOpts, identitysvc.WithSink(kafka))
	}

	tracker := identitysvc.NewTracker(identitystore.New(querier), trackerOpts...)

	router := chi.NewRouter()
	router.Use(requestscope.Middleware)
	router.Handle("/metrics", promhttp.Handler())
	router.Group(func(r chi.Router) {
		r.Use(admin.RequireAdminToken(cfg.AdminToken, slogger))
		dedupehandler.New(resolver, checker, slogger).Register(r)
		identityhandler.New(tracker, mirror, slogger).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("starting library admin facade on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
