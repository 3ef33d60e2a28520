package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/middleware"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// InterfacePaymentController defines the payment controller interface
type InterfacePaymentController interface {
	GetPayments()
	GetPayment()
	CreatePayment()
	UpdatePayment()
}

// PaymentController handles payment requests
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController creates a new payment controller
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentRequest represents a create-payment request
type PaymentRequest struct {
	StudentID   uint       `json:"student_id" binding:"required" example:"1"`
	Amount      float64    `json:"amount" binding:"required" example:"4500"`
	DueDate     time.Time  `json:"due_date" binding:"required"`
	PaidDate    *time.Time `json:"paid_date"`
	Status      string     `json:"status" example:"pending"`
	Month       string     `json:"month" binding:"required" example:"2024-06"`
	Description string     `json:"description" example:"June rent"`
}

// updatablePaymentFields whitelists the JSON keys accepted by UpdatePayment
var updatablePaymentFields = map[string]bool{
	"amount":      true,
	"due_date":    true,
	"paid_date":   true,
	"status":      true,
	"month":       true,
	"description": true,
}

// HandlePaymentFunc returns a gin handler for payment requests
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPayment":
			controller.GetPayment()
		case "createPayment":
			controller.CreatePayment()
		case "updatePayment":
			controller.UpdatePayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetPayments returns payments, optionally filtered by student
// @Summary      List payments
// @Description  Returns payments newest first; filter with student_id
// @Tags         Payment
// @Produce      json
// @Param        student_id query int false "Filter by student ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	var studentID *uint
	if param := c.Ctx.Query("student_id"); param != "" {
		parsed, err := strconv.ParseUint(param, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "invalid student_id")
			return
		}
		id := uint(parsed)
		studentID = &id
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, err := paymentService.GetPayments(studentID)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch payments", nil)
		return
	}

	response.Success(c.Ctx, payments)
}

// GetPayment returns one payment
// @Summary      Get payment
// @Description  Returns a payment by ID
// @Tags         Payment
// @Produce      json
// @Param        id path int true "Payment ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /payments/{id} [get]
func (c *PaymentController) GetPayment() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.GetPaymentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			response.Fail(c.Ctx, code.ErrPaymentNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch payment", nil)
		return
	}

	response.Success(c.Ctx, payment)
}

// CreatePayment records a rent payment for a billing month
// @Summary      Create payment
// @Description  Records a rent payment; month must be YYYY-MM and the student must exist
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) CreatePayment() {
	var req PaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	payment := &models.Payment{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		PaidDate:    req.PaidDate,
		Status:      models.PaymentStatus(req.Status),
		Month:       req.Month,
		Description: req.Description,
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	if err := paymentService.CreatePayment(payment); err != nil {
		c.failPaymentWrite(err)
		return
	}

	if payment.Status == models.PaymentStatusPaid {
		c.logPaymentReceived(payment)
	}
	c.invalidateStats()

	response.Created(c.Ctx, payment)
}

// UpdatePayment applies a partial update, typically a status change
// @Summary      Update payment
// @Description  Partially updates a payment; moving to paid stamps the paid date
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        id path int true "Payment ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /payments/{id} [put]
func (c *PaymentController) UpdatePayment() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&body); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates := make(map[string]interface{}, len(body))
	for key, value := range body {
		if !updatablePaymentFields[key] {
			response.ParamError(c.Ctx, "unknown field: "+key)
			return
		}

		switch key {
		case "amount":
			amount, isNum := value.(float64)
			if !isNum || amount < 0 {
				response.ParamError(c.Ctx, "amount must be a non-negative number")
				return
			}
			updates[key] = amount
		case "due_date", "paid_date":
			if value == nil && key == "paid_date" {
				updates[key] = nil
				continue
			}
			raw, isString := value.(string)
			if !isString {
				response.ParamError(c.Ctx, key+" must be an RFC3339 timestamp")
				return
			}
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				response.ParamError(c.Ctx, key+" must be an RFC3339 timestamp")
				return
			}
			updates[key] = parsed
		default:
			str, isString := value.(string)
			if !isString {
				response.ParamError(c.Ctx, key+" must be a string")
				return
			}
			updates[key] = str
		}
	}

	if len(updates) == 0 {
		response.ParamError(c.Ctx, "no fields to update")
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.UpdatePayment(id, updates)
	if err != nil {
		c.failPaymentWrite(err)
		return
	}

	if payment.Status == models.PaymentStatusPaid {
		c.logPaymentReceived(payment)
	}
	c.invalidateStats()

	response.Success(c.Ctx, payment)
}

// parseID reads the :id path parameter
func (c *PaymentController) parseID() (uint, bool) {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid payment ID")
		return 0, false
	}
	return uint(idUint), true
}

// failPaymentWrite maps service errors onto response codes
func (c *PaymentController) failPaymentWrite(err error) {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		response.Fail(c.Ctx, code.ErrPaymentNotFound, nil)
	case errors.Is(err, services.ErrInvalidBillingMonth):
		response.Fail(c.Ctx, code.ErrPaymentInvalidMonth, nil)
	case errors.Is(err, services.ErrStudentNotFound):
		response.Fail(c.Ctx, code.ErrStudentNotFound, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

// logPaymentReceived appends a payment entry to the activity feed
func (c *PaymentController) logPaymentReceived(payment *models.Payment) {
	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	_ = activityLogService.CreateLog(&models.ActivityLog{
		Type:        models.ActivityPaymentReceived,
		Title:       "Payment Received",
		Description: fmt.Sprintf("Payment of %.2f received for %s", payment.Amount, payment.Month),
		UserID:      middleware.CurrentUserID(c.Ctx),
		EntityID:    strconv.FormatUint(uint64(payment.ID), 10),
	})
}

// invalidateStats drops the cached dashboard snapshot
func (c *PaymentController) invalidateStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	dashboardService.InvalidateStatsCache()
}
