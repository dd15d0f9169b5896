package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/cache"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/events"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/live"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/metrics"
	jwtsvc "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/jwt"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := server.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb := cache.NewRedisClient(ctx, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(ctx, cfg.Events.AMQPURL, cfg.Events.Exchange, events.DefaultRetry)
		if err != nil {
			log.Printf("events disabled: %v", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
		}
	}

	m := metrics.New()
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := m.Register(reg); err != nil {
		log.Fatalf("metrics: %v", err)
	}

	router := server.NewRouter(server.Deps{
		Config:    cfg,
		DB:        db,
		JWT:       jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL),
		Redis:     rdb,
		Publisher: publisher,
		Hub:       live.NewHub(),
		Metrics:   m,
		Gatherer:  reg,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening addr=%s env=%s", cfg.HTTPAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
