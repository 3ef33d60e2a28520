package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	GetStats()
}

// DashboardController handles dashboard statistics requests
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler for dashboard requests
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// GetStats returns the dashboard summary figures
// @Summary      Dashboard statistics
// @Description  Returns total students, total rooms, available beds, monthly revenue and occupancy rate
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/stats [get]
func (c *DashboardController) GetStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetDashboardStats()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to compute dashboard statistics", nil)
		return
	}

	response.Success(c.Ctx, stats)
}
