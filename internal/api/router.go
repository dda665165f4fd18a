package api

import (
	"github.com/gin-gonic/gin"
	"github.com/timmy/goodjob/internal/api/handler"
	"github.com/timmy/goodjob/internal/api/middleware"
	"github.com/timmy/goodjob/internal/config"
	"github.com/timmy/goodjob/internal/service"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	statusService *service.StatusService,
	jobService *service.JobService,
	prepService *service.PrepTodoService,
	todoService *service.DashboardTodoService,
	questionService *service.QuestionService,
	calendarService *service.CalendarService,
	cfg *config.Config,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(cfg.Auth)
	statusHandler := handler.NewStatusHandler(statusService)
	jobHandler := handler.NewJobHandler(jobService)
	prepHandler := handler.NewPrepTodoHandler(prepService)
	todoHandler := handler.NewDashboardTodoHandler(todoService)
	questionHandler := handler.NewQuestionHandler(questionService)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	apiGroup := r.Group("/api")

	// Open endpoints: health, login, session check
	apiGroup.GET("/health", healthHandler.Health)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.GET("/auth", authHandler.Check)

	// Everything else sits behind the shared-secret gate
	protected := apiGroup.Group("", middleware.Auth(cfg.Auth.AdminPassword))
	{
		// Status catalog
		protected.GET("/statuses", statusHandler.List)
		protected.POST("/statuses", statusHandler.Create)
		protected.PUT("/statuses/:id", statusHandler.Update)
		protected.DELETE("/statuses/:id", statusHandler.Delete)

		// Jobs + status history
		protected.GET("/jobs", jobHandler.List)
		protected.POST("/jobs", jobHandler.Create)
		protected.GET("/jobs/:id", jobHandler.Get)
		protected.PUT("/jobs/:id", jobHandler.Update)
		protected.DELETE("/jobs/:id", jobHandler.Delete)
		protected.POST("/jobs/:id/status", jobHandler.RecordStatusChange)

		// Per-job prep checklist
		protected.GET("/jobs/:id/todos", prepHandler.List)
		protected.POST("/jobs/:id/todos", prepHandler.Create)
		protected.PUT("/jobs/:id/todos/:todoId", prepHandler.Update)
		protected.DELETE("/jobs/:id/todos/:todoId", prepHandler.Delete)

		// Dashboard todos
		protected.GET("/todos", todoHandler.List)
		protected.POST("/todos", todoHandler.Create)
		protected.PUT("/todos/:id", todoHandler.Update)
		protected.DELETE("/todos/:id", todoHandler.Delete)

		// Interview questions
		protected.GET("/questions", questionHandler.List)
		protected.POST("/questions", questionHandler.Create)
		protected.PUT("/questions/:id", questionHandler.Update)
		protected.DELETE("/questions/:id", questionHandler.Delete)

		// Calendar
		protected.GET("/calendar", calendarHandler.Events)
	}

	return r
}
