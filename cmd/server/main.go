package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brightplay/internal/catalog"
	"brightplay/internal/config"
	"brightplay/internal/database"
	"brightplay/internal/handlers"
	"brightplay/internal/repository"
	"brightplay/internal/security"
	"brightplay/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.CSRFSecret == "" {
		cfg.CSRFSecret = cfg.JWTSecret
	}

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load the item catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.CatalogPath, err)
		}
		log.Printf("Catalog loaded from %s", cfg.CatalogPath)
	}

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize services
	authService := service.NewAuthService(playerRepo, cfg.JWTSecret, cfg.SessionDuration)

	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.FromEmail, cfg.FromName, cfg.BaseURL)
	if err != nil {
		log.Printf("Warning: email disabled: %v", err)
		emailService = nil
	}

	gameService := service.NewGameService(cat, historyRepo, emailService)

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.CSRFSecret)
	middleware := handlers.NewMiddleware(authService, csrf)
	authHandler := handlers.NewAuthHandler(authService, emailService, csrf, cfg)
	gameHandler := handlers.NewGameHandler(gameService)
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Setup routes
	mux := http.NewServeMux()

	// Static files (game assets and the web client)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("./static"))))

	// Auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimitAuth(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimitAuth(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/me", middleware.ResolvePlayer(authHandler.Me))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Game routes
	mux.HandleFunc("GET /api/games", middleware.ResolvePlayer(gameHandler.List))
	mux.HandleFunc("POST /api/games/{gameID}/start", middleware.ResolvePlayer(middleware.RequireCSRF(gameHandler.Start)))
	mux.HandleFunc("GET /api/games/{gameID}/round", middleware.ResolvePlayer(gameHandler.Round))
	mux.HandleFunc("POST /api/games/{gameID}/answer", middleware.ResolvePlayer(middleware.RequireCSRF(gameHandler.Answer)))
	mux.HandleFunc("POST /api/games/{gameID}/advance", middleware.ResolvePlayer(middleware.RequireCSRF(gameHandler.Advance)))
	mux.HandleFunc("POST /api/games/{gameID}/shuffle", middleware.ResolvePlayer(middleware.RequireCSRF(gameHandler.Shuffle)))
	mux.HandleFunc("POST /api/games/{gameID}/finish", middleware.ResolvePlayer(middleware.RequireCSRF(gameHandler.Finish)))
	mux.HandleFunc("GET /api/games/{gameID}/history", middleware.ResolvePlayer(gameHandler.History))
	mux.HandleFunc("GET /api/results", middleware.RequireAuth(gameHandler.Results))

	// Catalog routes
	mux.HandleFunc("GET /api/catalog/items", middleware.ResolvePlayer(catalogHandler.Items))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
