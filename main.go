package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staymate/config"
	"staymate/db"
	"staymate/insights"
	"staymate/listings"
	"staymate/live"
	"staymate/ratelim"
	"staymate/ratings"
	"staymate/rdx"
	"staymate/routes"
	"staymate/search"
	"staymate/store"
	"staymate/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/sashabaranov/go-openai"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(cfg *config.Config, listingStore store.ListingStore, hub *live.Hub) (*httprouter.Router, *insights.Service) {
	router := httprouter.New()
	router.GET("/health", Index)

	rateLimiter := ratelim.NewRateLimiter()

	var chatClient *openai.Client
	if cfg.OpenAIToken != "" {
		chatClient = openai.NewClient(cfg.OpenAIToken)
	}

	var insightClient insights.ChatClient
	var searchClient search.ChatClient
	if chatClient != nil {
		insightClient = chatClient
		searchClient = chatClient
	}

	insightSvc := insights.NewService(insightClient, time.Duration(cfg.InsightTTLMin)*time.Minute)
	searchSvc := search.NewService(searchClient)

	routes.AddListingRoutes(router, listings.NewHandler(listingStore, hub))
	routes.AddRatingRoutes(router, ratings.NewHandler(listingStore))
	routes.AddInsightRoutes(router, insights.NewHandler(insightSvc, listingStore), rateLimiter)
	routes.AddSearchRoutes(router, search.NewHandler(searchSvc, listingStore), rateLimiter)
	routes.AddLiveRoutes(router, hub)

	return router, insightSvc
}

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	listings.BaseURL = cfg.BaseURL

	rdx.Init(cfg.RedisAddr, cfg.RedisPassword)

	var listingStore store.ListingStore
	switch cfg.StoreBackend {
	case "mongo":
		if err := db.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
			logger.Error("Could not set up database: %v", err)
			os.Exit(1)
		}
		defer db.Disconnect(context.Background())
		listingStore = store.NewMongo(db.ListingsCollection)
		logger.Info("Listing store: mongo (%s)", cfg.MongoDB)
	default:
		seed := listings.Seed()
		listingStore = store.NewMemory(seed)
		logger.Info("Listing store: memory (seeded with %d listings)", len(seed))
	}

	hub := live.NewHub()
	go hub.Run()

	router, insightSvc := setupRouter(cfg, listingStore, hub)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down listing feed hub...")
		hub.Stop()
		insightSvc.Stop()
	})

	go func() {
		logger.Info("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
