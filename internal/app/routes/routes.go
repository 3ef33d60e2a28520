package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/mdtanbirulislam55-maxorasoft/HostelManagement/docs"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/controllers"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/middleware"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize Gin
	r := gin.Default()

	// Add CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Force UTF-8 encoded JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg)
	// Initialize middleware
	middleware.InitAuthMiddleware(cfg)
	// Add the Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API route root
	api := r.Group("/api")
	// Register public routes
	registerPublicRoutes(api, container)
	// Register routes requiring authentication
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP rate limiting - 10 requests per second, bursts up to 20
	api.Use(middleware.IPRateLimiter(10, 20))

	// Health check routes
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // Docker health check compatibility

	// Health status route group
	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))

	// Authentication route - 5 requests per second, bursts up to 10
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind admin authentication
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Add the authentication middleware
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// General rate limiting - 30 requests per second, bursts up to 50
	auth.Use(middleware.IPRateLimiter(30, 50))

	// Dashboard routes
	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.GET("/stats", controllers.HandleDashboardFunc(container, "getStats"))

	// Floor routes
	floorGroup := auth.Group("/floors")
	floorGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleFloorFunc(container, "getFloors"))
	floorGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleFloorFunc(container, "getFloor"))
	floorGroup.POST("", controllers.HandleFloorFunc(container, "createFloor"))

	// Room routes
	roomGroup := auth.Group("/rooms")
	{
		roomGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleRoomFunc(container, "getRooms"))
		roomGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleRoomFunc(container, "getRoom"))
		roomGroup.POST("", controllers.HandleRoomFunc(container, "createRoom"))
		roomGroup.PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
	}

	// Student routes
	studentGroup := auth.Group("/students")
	studentGroup.GET("", controllers.HandleStudentFunc(container, "getStudents"))
	studentGroup.GET("/:id", controllers.HandleStudentFunc(container, "getStudent"))
	studentGroup.POST("", controllers.HandleStudentFunc(container, "createStudent"))
	studentGroup.PUT("/:id", controllers.HandleStudentFunc(container, "updateStudent"))
	studentGroup.DELETE("/:id", controllers.HandleStudentFunc(container, "deleteStudent"))

	// Payment routes
	paymentGroup := auth.Group("/payments")
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.GET("/:id", controllers.HandlePaymentFunc(container, "getPayment"))
	paymentGroup.POST("", controllers.HandlePaymentFunc(container, "createPayment"))
	paymentGroup.PUT("/:id", controllers.HandlePaymentFunc(container, "updatePayment"))

	// Expense routes
	expenseGroup := auth.Group("/expenses")
	expenseGroup.GET("", controllers.HandleExpenseFunc(container, "getExpenses"))
	expenseGroup.POST("", controllers.HandleExpenseFunc(container, "createExpense"))

	// Activity feed routes
	activityGroup := auth.Group("/activity-logs")
	activityGroup.GET("", controllers.HandleActivityLogFunc(container, "getRecentLogs"))

	// Alert routes
	alertGroup := auth.Group("/alerts")
	alertGroup.GET("", controllers.HandleAlertFunc(container, "getAlerts"))
	alertGroup.POST("", controllers.HandleAlertFunc(container, "createAlert"))
	alertGroup.PUT("/:id/read", controllers.HandleAlertFunc(container, "markAsRead"))
}
