package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/clock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/common/uuid"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/config"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/handlers/httpapi"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/handlers/ws"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/publisher"
	boxscoreRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/boxscore"
	eventRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/event"
	gameRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/game"
	playerRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/player"
	teamRepo "github.com/McKeyra/ball-in-the-6-sub004/internal/repositories/team"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/rules"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/career"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/gameclock"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/lineup"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/services/scoring"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create event repository: %v", err)
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	teams, err := teamRepo.NewRedis(&teamRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create team repository: %v", err)
	}

	boxScores, err := boxscoreRepo.NewRedis(&boxscoreRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create box score repository: %v", err)
	}

	// Shared domain collaborators
	ruleset := rules.Default()
	wallClock := &clock.DefaultClock{}
	aggregator := stats.New(&stats.Config{Rules: ruleset})

	// Initialize WebSocket hub and stream publisher
	hub := ws.NewHub()
	go hub.Run()

	streamPublisher := publisher.NewStreamPublisher(redisClient)

	// Initialize services
	scoringSvc, err := scoring.New(&scoring.Config{
		Rules:        ruleset,
		GameRepo:     games,
		EventRepo:    events,
		BoxScoreRepo: boxScores,
		Aggregator:   aggregator,
		Clock:        wallClock,
		Publishers:   []scoring.Publisher{hub, streamPublisher},
	})
	if err != nil {
		log.Fatalf("Failed to create scoring service: %v", err)
	}

	clockSvc, err := gameclock.New(&gameclock.Config{
		Rules:    ruleset,
		GameRepo: games,
		Clock:    wallClock,
	})
	if err != nil {
		log.Fatalf("Failed to create game clock service: %v", err)
	}

	lineupSvc, err := lineup.New(&lineup.Config{
		Rules:      ruleset,
		GameRepo:   games,
		EventRepo:  events,
		PlayerRepo: players,
		Aggregator: aggregator,
		Clock:      wallClock,
	})
	if err != nil {
		log.Fatalf("Failed to create lineup service: %v", err)
	}

	careerSvc, err := career.New(&career.Config{
		GameRepo:   games,
		EventRepo:  events,
		PlayerRepo: players,
		TeamRepo:   teams,
		Aggregator: aggregator,
		Clock:      wallClock,
		UUID:       uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create career service: %v", err)
	}

	apiHandlers, err := httpapi.NewHandlers(&httpapi.Config{
		Rules:          ruleset,
		ScoringService: scoringSvc,
		ClockService:   clockSvc,
		LineupService:  lineupSvc,
		CareerService:  careerSvc,
		GameRepo:       games,
		PlayerRepo:     players,
		TeamRepo:       teams,
	})
	if err != nil {
		log.Fatalf("Failed to create API handlers: %v", err)
	}

	// Set up HTTP router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		apiHandlers.RegisterRoutes(r)
	})

	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}
