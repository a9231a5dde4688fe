package routes

import (
	"mentorhub/internal/adapters/http/handlers"
	"mentorhub/internal/adapters/http/middleware"
	"mentorhub/internal/adapters/persistence/repositories"
	"mentorhub/internal/config"
	"mentorhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	studentRepo := repositories.NewStudentRepository(db)
	mentorRepo := repositories.NewMentorRepository(db)
	apptRepo := repositories.NewAppointmentRepository(db)

	// Initialize services
	authService := services.NewAuthService(studentRepo, mentorRepo, cfg)
	profileService := services.NewProfileService(studentRepo, mentorRepo)
	bookingService := services.NewBookingService(apptRepo, studentRepo, mentorRepo)
	directoryService := services.NewDirectoryService(mentorRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	apptHandler := handlers.NewAppointmentHandler(bookingService)
	mentorHandler := handlers.NewMentorHandler(directoryService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Student routes
	studentRoutes := app.Group("/student")
	setupStudentRoutes(studentRoutes, authHandler, profileHandler, cfg)

	// Mentor routes
	mentorRoutes := app.Group("/mentor")
	setupMentorRoutes(mentorRoutes, authHandler, profileHandler, cfg)

	// Public mentor directory (consumed by the booking UI)
	app.Get("/mentors", mentorHandler.List)

	// Appointment routes (authenticated users)
	apptRoutes := app.Group("/appointment")
	apptRoutes.Use(middleware.AuthMiddleware(cfg))
	setupAppointmentRoutes(apptRoutes, apptHandler)
}

// setupStudentRoutes configures student auth and profile routes
func setupStudentRoutes(router fiber.Router, authHandler *handlers.AuthHandler, profileHandler *handlers.ProfileHandler, cfg *config.Config) {
	// Public routes, behind the stricter auth rate limiter
	router.Post("/register", middleware.AuthRateLimiter(), authHandler.RegisterStudent)
	router.Post("/login", middleware.AuthRateLimiter(), authHandler.LoginStudent)

	// Protected routes, role must match the variant
	router.Get("/me", middleware.AuthMiddleware(cfg), middleware.StudentOnly(), profileHandler.MeStudent)
	router.Put("/update", middleware.AuthMiddleware(cfg), middleware.StudentOnly(), profileHandler.UpdateStudent)
}

// setupMentorRoutes configures mentor auth and profile routes
func setupMentorRoutes(router fiber.Router, authHandler *handlers.AuthHandler, profileHandler *handlers.ProfileHandler, cfg *config.Config) {
	router.Post("/register", middleware.AuthRateLimiter(), authHandler.RegisterMentor)
	router.Post("/login", middleware.AuthRateLimiter(), authHandler.LoginMentor)

	router.Get("/me", middleware.AuthMiddleware(cfg), middleware.MentorOnly(), profileHandler.MeMentor)
	router.Put("/update", middleware.AuthMiddleware(cfg), middleware.MentorOnly(), profileHandler.UpdateMentor)
}

// setupAppointmentRoutes configures appointment routes
func setupAppointmentRoutes(router fiber.Router, handler *handlers.AppointmentHandler) {
	router.Post("/", handler.Create)
	router.Get("/", handler.List)
	router.Delete("/:id", handler.Cancel)
}
