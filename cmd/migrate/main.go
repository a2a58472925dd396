package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"fleet-dispatch-go/internal/config"
	"fleet-dispatch-go/internal/migrations"
	"fleet-dispatch-go/internal/repository"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	connCtx, connCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connCancel()
	pool, err := repository.NewPool(connCtx, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer pool.Close()

	if err := migrations.NewRunner(pool).Up(ctx); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
	log.Println("migrations applied")
}
