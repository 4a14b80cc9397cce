package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventup/config"
	_ "eventup/docs"
	"eventup/internal/adapters/auth"
	delivery "eventup/internal/delivery/http"
	"eventup/internal/delivery/http/controllers"
	"eventup/internal/delivery/http/middleware"
	"eventup/internal/repository/postgres"
	"eventup/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Eventup API
// @version 1.0
// @description Event management API with attendee registration and reminder notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, sessionRepo, hasher, issuer, verifier, cfg.TokenExpiry)
	eventService := services.NewEventService(eventRepo, services.NewOwnerPolicy(), serviceTimeout)
	attendeeService := services.NewAttendeeService(eventRepo, attendeeRepo)

	eventController := controllers.NewEventController(logger, eventService)
	attendeeController := controllers.NewAttendeeController(logger, attendeeService)
	authController := controllers.NewAuthController(logger, authService)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	mux := delivery.NewRouter(eventController, attendeeController, authController, authService, limiter)

	handler := middleware.LoggingMiddleware(logger, mux)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
