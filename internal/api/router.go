package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coursehub/course-platform/internal/api/handler"
	"github.com/coursehub/course-platform/internal/api/middleware"
	"github.com/coursehub/course-platform/internal/core/domain"
	"github.com/coursehub/course-platform/internal/core/service"
	"github.com/coursehub/course-platform/internal/infrastructure/config"
	mongodb "github.com/coursehub/course-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/coursehub/course-platform/internal/infrastructure/db/redis"
	"github.com/coursehub/course-platform/internal/infrastructure/openai"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("courseplatform"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	enrollmentRepo := mongodb.NewEnrollmentRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	courseService := service.NewCourseService(courseRepo, userRepo, enrollmentRepo, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo, log)

	summarizer := openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	summaryService := service.NewSummaryService(summarizer, redisdb.NewSummaryCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	aiHandler := handler.NewAIHandler(summaryService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes (public) ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Course routes ---
	courses := e.Group("/api/v1/courses", authMiddleware)
	courses.GET("", courseHandler.GetAll)
	courses.GET("/:id", courseHandler.GetByID)
	courses.GET("/instructor/:instructorId", courseHandler.GetByInstructor)
	courses.POST("", courseHandler.Create, middleware.RBAC(domain.RoleInstructor, domain.RoleAdmin))
	courses.PUT("/:id", courseHandler.Update)
	courses.DELETE("/:id", courseHandler.Delete)

	// --- Enrollment routes ---
	v1 := e.Group("/api/v1", authMiddleware)
	v1.POST("/enroll", enrollmentHandler.Enroll)
	v1.GET("/enrollments", enrollmentHandler.ListMine)
	v1.GET("/enrollments/:userId", enrollmentHandler.ListByUser)

	// --- User listing (admin only) ---
	v1.GET("/users", authHandler.ListUsers, middleware.RBAC(domain.RoleAdmin))

	// --- AI summary ---
	e.POST("/api/ai/summary", aiHandler.Summarize, authMiddleware)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
