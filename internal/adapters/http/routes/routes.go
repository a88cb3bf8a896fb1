package routes

import (
	"campuscoffee/internal/adapters/http/handlers"
	"campuscoffee/internal/adapters/osm"
	"campuscoffee/internal/adapters/persistence/repositories"
	"campuscoffee/internal/config"
	"campuscoffee/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	registry := repositories.NewConstraintRegistry(db)
	posRepo := repositories.NewPosRepository(db, registry)
	userRepo := repositories.NewUserRepository(db, registry)
	reviewRepo := repositories.NewReviewRepository(db, registry)

	// OpenStreetMap client
	osmClient := osm.NewClient(cfg.Osm.BaseURL)

	// Initialize services
	posService := services.NewPosService(posRepo, osmClient)
	userService := services.NewUserService(userRepo)
	reviewService := services.NewReviewService(reviewRepo, userRepo, posRepo, cfg.Approval.MinCount)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	posHandler := handlers.NewPosHandler(posService)
	userHandler := handlers.NewUserHandler(userService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")

	posRoutes := api.Group("/pos")
	setupPosRoutes(posRoutes, posHandler)

	userRoutes := api.Group("/users")
	setupUserRoutes(userRoutes, userHandler)

	reviewRoutes := api.Group("/reviews")
	setupReviewRoutes(reviewRoutes, reviewHandler)
}

// setupPosRoutes configures POS routes
func setupPosRoutes(router fiber.Router, handler *handlers.PosHandler) {
	router.Get("/", handler.ListPos)
	router.Get("/filter", handler.FilterPos)
	router.Post("/", handler.CreatePos)
	router.Post("/import/osm/:nodeId", handler.ImportFromOsm)
	router.Get("/:id", handler.GetPos)
	router.Put("/:id", handler.UpdatePos)
	router.Delete("/:id", handler.DeletePos)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/filter", handler.FilterUsers)
	router.Post("/", handler.CreateUser)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
}

// setupReviewRoutes configures review routes
func setupReviewRoutes(router fiber.Router, handler *handlers.ReviewHandler) {
	router.Get("/", handler.ListReviews)
	router.Get("/filter", handler.FilterReviews)
	router.Post("/", handler.CreateReview)
	router.Get("/:id", handler.GetReview)
	router.Put("/:id/approve", handler.ApproveReview)
	router.Put("/:id", handler.UpdateReview)
	router.Delete("/:id", handler.DeleteReview)
}
