package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/pkg/logger"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Base services
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// Business services
	userService        services.InterfaceUserService
	floorService       services.InterfaceFloorService
	roomService        services.InterfaceRoomService
	studentService     services.InterfaceStudentService
	paymentService     services.InterfacePaymentService
	expenseService     services.InterfaceExpenseService
	activityLogService services.InterfaceActivityLogService
	alertService       services.InterfaceAlertService
	dashboardService   services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices initializes all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)

	c.redisService = services.NewRedisService(c.config)
	if err := c.redisService.Ping(); err != nil {
		logger.Warning("redis connection test failed: %v, dashboard stats caching disabled", err)
		c.redisService = nil
	}

	// Business services
	c.userService = services.NewUserService(c.db, c.config)
	c.floorService = services.NewFloorService(c.db, c.config)
	c.roomService = services.NewRoomService(c.db, c.config)
	c.studentService = services.NewStudentService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.expenseService = services.NewExpenseService(c.db, c.config)
	c.activityLogService = services.NewActivityLogService(c.db, c.config)
	c.alertService = services.NewAlertService(c.db, c.config)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "floor":
		return c.floorService
	case "room":
		return c.roomService
	case "student":
		return c.studentService
	case "payment":
		return c.paymentService
	case "expense":
		return c.expenseService
	case "activity_log":
		return c.activityLogService
	case "alert":
		return c.alertService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
