package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/payment"
)

func main() {
	maxAge := flag.Duration("max-age", 24*time.Hour, "fail checkouts left unpaid for longer than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	n, err := payment.NewRepository(db).ExpireStale(context.Background(), time.Now().Add(-*maxAge))
	if err != nil {
		log.Fatalf("expire payments failed: %v", err)
	}
	log.Printf("payment cleanup completed: expired=%d", n)
}
