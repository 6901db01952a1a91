// @title JewelVista Backend API
// @version 1.0
// @description JewelVista backend for the virtual jewelry exhibition, wishlist, and heritage quiz

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"

	"JEWELVISTA_BACK-END/internal/config"
	"JEWELVISTA_BACK-END/internal/handlers"
	"JEWELVISTA_BACK-END/internal/middleware"
	"JEWELVISTA_BACK-END/internal/routes"
	"JEWELVISTA_BACK-END/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// DynamoDB client + table stores
	client, err := storage.NewClient(context.Background(), cfg.Dynamo)
	if err != nil {
		log.Fatalf("dynamodb client: %v", err)
	}
	userStore := storage.NewDynamoUserStore(client, cfg.Dynamo.UserTable)
	wishlistStore := storage.NewDynamoWishlistStore(client, cfg.Dynamo.WishlistTable)

	// Check table reachability at boot
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Dynamo.RequestTimeout)
		defer cancel()
		if err := userStore.Ping(ctx); err != nil {
			log.Printf("Warning: user table not reachable at boot: %v", err)
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userStore, &cfg.Session)
	wishlistHandler := handlers.NewWishlistHandler(wishlistStore)
	exhibitionHandler := handlers.NewExhibitionHandler()
	quizHandler := handlers.NewQuizHandler()
	healthHandler := handlers.NewHealthHandler(userStore)

	// Setup all routes
	routes.SetupRoutes(cfg, authHandler, wishlistHandler, exhibitionHandler, quizHandler, healthHandler)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with request logging and CORS
	handler := c.Handler(middleware.RequestLogger(http.DefaultServeMux))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
