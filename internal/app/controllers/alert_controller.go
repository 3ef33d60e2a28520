package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/middleware"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// InterfaceAlertController defines the alert controller interface
type InterfaceAlertController interface {
	GetAlerts()
	CreateAlert()
	MarkAsRead()
}

// AlertController handles alert requests
type AlertController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAlertController creates a new alert controller
func NewAlertController(ctx *gin.Context, container *container.ServiceContainer) *AlertController {
	return &AlertController{
		Ctx:       ctx,
		Container: container,
	}
}

// AlertRequest represents a create-alert request
type AlertRequest struct {
	Type        string `json:"type" binding:"required" example:"payment_overdue"`
	Title       string `json:"title" binding:"required" example:"Overdue rent"`
	Description string `json:"description" example:"Room 101 rent overdue by 15 days"`
	Severity    string `json:"severity" example:"high"`
	EntityID    string `json:"entity_id" example:"12"`
}

// HandleAlertFunc returns a gin handler for alert requests
func HandleAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "createAlert":
			controller.CreateAlert()
		case "markAsRead":
			controller.MarkAsRead()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetAlerts returns alerts, optionally unread only
// @Summary      List alerts
// @Description  Returns alerts newest first; pass unread_only=true to hide dismissed ones
// @Tags         Alert
// @Produce      json
// @Param        unread_only query bool false "Only unread alerts"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /alerts [get]
func (c *AlertController) GetAlerts() {
	unreadOnly := c.Ctx.Query("unread_only") == "true"

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alerts, err := alertService.GetAlerts(unreadOnly)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch alerts", nil)
		return
	}

	response.Success(c.Ctx, alerts)
}

// CreateAlert raises a dashboard notice
// @Summary      Create alert
// @Description  Raises a dashboard notice; severity defaults to medium
// @Tags         Alert
// @Accept       json
// @Produce      json
// @Param        request body AlertRequest true "Alert fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /alerts [post]
func (c *AlertController) CreateAlert() {
	var req AlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	alert := &models.Alert{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		EntityID:    req.EntityID,
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	if err := alertService.CreateAlert(alert); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	_ = activityLogService.CreateLog(&models.ActivityLog{
		Type:        models.ActivityAlertCreated,
		Title:       "Alert Created",
		Description: alert.Title,
		UserID:      middleware.CurrentUserID(c.Ctx),
		EntityID:    strconv.FormatUint(uint64(alert.ID), 10),
	})

	response.Created(c.Ctx, alert)
}

// MarkAsRead dismisses an alert
// @Summary      Mark alert as read
// @Description  Dismisses an alert so it no longer shows as unread
// @Tags         Alert
// @Produce      json
// @Param        id path int true "Alert ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /alerts/{id}/read [put]
func (c *AlertController) MarkAsRead() {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid alert ID")
		return
	}

	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)
	alert, err := alertService.MarkAlertAsRead(uint(idUint))
	if err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			response.Fail(c.Ctx, code.ErrAlertNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, alert)
}
