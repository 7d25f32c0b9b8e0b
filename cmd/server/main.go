package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "shareit-backend/internal/api/http"
	"shareit-backend/internal/clock"
	"shareit-backend/internal/config"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
	"shareit-backend/internal/repository/memory"
	"shareit-backend/internal/repository/postgres"
	"shareit-backend/internal/service"
	"shareit-backend/migrations"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareIt backend...", "log_level", cfg.Log.Level, "storage", cfg.Storage.Type)

	var (
		userRepo    repository.UserRepository
		itemRepo    repository.ItemRepository
		bookingRepo repository.BookingRepository
		requestRepo repository.ItemRequestRepository
		commentRepo repository.CommentRepository
	)

	switch cfg.Storage.Type {
	case "memory":
		logger.Info("Using in-memory storage")
		store := memory.NewStore()
		userRepo = store.UserRepository
		itemRepo = store.ItemRepository
		bookingRepo = store.BookingRepository
		requestRepo = store.ItemRequestRepository
		commentRepo = store.CommentRepository
	default:
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		store := postgres.NewStore(db)
		userRepo = store.UserRepository
		itemRepo = store.ItemRepository
		bookingRepo = store.BookingRepository
		requestRepo = store.ItemRequestRepository
		commentRepo = store.CommentRepository
	}

	clk := clock.NewSystem()
	userSvc := service.NewUserService(userRepo)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, clk)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, clk)
	requestSvc := service.NewItemRequestService(requestRepo, userRepo, itemRepo, clk)

	router := api.NewRouter(userSvc, itemSvc, bookingSvc, requestSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
