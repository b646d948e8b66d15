// Package main our entry point.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/johndosdos/micropost/internal/handler"
	"github.com/johndosdos/micropost/internal/service"
	"github.com/johndosdos/micropost/internal/storage"
)

const migrationsDir = "sql/schema"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %+v", err)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              "0.0.0.0:" + port,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	// Init DB
	log.Println("Starting application...")
	log.Println("Initializing Database connection...")

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL environment variable is not set")
	}

	dbPool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("could not connect to the postgresql database: %v", err)
	}

	// The gateway runs on the database/sql adapter over the same pool so
	// goose and the application share one connection source.
	db := stdlib.OpenDBFromPool(dbPool)

	_ = goose.SetDialect("postgres")
	if err := goose.Up(db, migrationsDir); err != nil {
		log.Fatalf("goose.Up() error = %+v", err)
	}

	gateway := storage.NewPostgres(db)
	accounts := service.NewAccountService(gateway)
	messages := service.NewMessageService(gateway)

	server.Handler = handler.NewRouter(accounts, messages)

	go func() {
		log.Printf("Server starting at 0.0.0.0:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutdown signal received; shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println(err)
	}

	// Close DB connection.
	if err := db.Close(); err != nil {
		log.Printf("couldn't close db handle: %+v", err)
	}
	dbPool.Close()

	log.Println("Server stopped")
}
