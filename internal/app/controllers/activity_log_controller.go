package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// ActivityLogController handles activity feed requests
type ActivityLogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewActivityLogController creates a new activity log controller
func NewActivityLogController(ctx *gin.Context, container *container.ServiceContainer) *ActivityLogController {
	return &ActivityLogController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleActivityLogFunc returns a gin handler for activity feed requests
func HandleActivityLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewActivityLogController(ctx, container)

		switch method {
		case "getRecentLogs":
			controller.GetRecentLogs()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetRecentLogs returns the latest activity entries
// @Summary      List recent activity
// @Description  Returns the most recent activity feed entries, newest first
// @Tags         ActivityLog
// @Produce      json
// @Param        limit query int false "Max entries, default 50, cap 200"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /activity-logs [get]
func (c *ActivityLogController) GetRecentLogs() {
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "50"))

	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	logs, err := activityLogService.GetRecentLogs(limit)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch activity logs", nil)
		return
	}

	response.Success(c.Ctx, logs)
}
