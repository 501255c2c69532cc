package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_booking/internal/adapter/handler"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_booking/internal/core/domain"
	"github.com/srgjo27/hotel_booking/internal/core/ports"
	"github.com/srgjo27/hotel_booking/internal/core/services"
	"github.com/srgjo27/hotel_booking/internal/platform/config"
	"github.com/srgjo27/hotel_booking/internal/platform/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	var archive ports.StayArchive
	if cfg.ArchiveEnabled {
		db, err := database.NewPostgresDB(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}
		defer db.Close()

		stayArchive := postgres.NewStayArchive(db)
		if err := stayArchive.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare stay archive: %v", err)
		}
		archive = stayArchive
	} else {
		log.Println("Stay archive disabled, checked-out stays are not kept.")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		log.Printf("Connecting to Redis at %s...", cfg.Redis.Addr())

		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Addr(),
			DB:   0,
		})

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Redis connected successfully!")
	}

	rooms := domain.DefaultRooms()
	roomRegistry := memory.NewRoomRegistry(rooms)
	guestLedger := memory.NewGuestLedger()

	bookingService := services.NewBookingService(roomRegistry, guestLedger, archive, redisClient, cfg.Engine)

	bookingHandler := handler.NewBookingHandler(bookingService, rooms, cfg.AllowedEmailDomain)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(bookingHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s (check-in policy %s, checkout pricing %s)",
			cfg.Port, cfg.Engine.CheckInPolicy, cfg.Engine.CheckoutPricing)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
