package routes

import (
	"net/http"

	"JEWELVISTA_BACK-END/internal/config"
	"JEWELVISTA_BACK-END/internal/handlers"
	"JEWELVISTA_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	wishlistHandler *handlers.WishlistHandler,
	exhibitionHandler *handlers.ExhibitionHandler,
	quizHandler *handlers.QuizHandler,
	healthHandler *handlers.HealthHandler,
) {
	session := &cfg.Session

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Public routes
	http.HandleFunc("/register", authHandler.Register)
	http.HandleFunc("/login", authHandler.Login)
	http.HandleFunc("/logout", authHandler.Logout)

	// Protected routes
	http.HandleFunc("/user_dashboard", middleware.RequireSession(authHandler.Dashboard, session))
	http.HandleFunc("/add_to_wishlist", middleware.RequireSession(wishlistHandler.Add, session))
	http.HandleFunc("/wishlist", middleware.RequireSession(wishlistHandler.List, session))
	http.HandleFunc("/remove_from_wishlist", middleware.RequireSession(wishlistHandler.Remove, session))

	// Policy-gated routes
	exhibition := http.HandlerFunc(exhibitionHandler.List)
	if cfg.Policy.ExhibitionRequireAuth {
		exhibition = middleware.RequireSession(exhibition, session)
	}
	http.HandleFunc("/virtual_exhibition", exhibition)

	quiz := http.HandlerFunc(quizHandler.Quiz)
	if cfg.Policy.QuizRequireAuth {
		quiz = middleware.RequireSession(quiz, session)
	}
	http.HandleFunc("/quiz", quiz)

	// Root route
	http.HandleFunc("/", authHandler.Home)
}
