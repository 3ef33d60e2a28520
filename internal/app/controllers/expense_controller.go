package controllers

import (
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

// InterfaceExpenseController defines the expense controller interface
type InterfaceExpenseController interface {
	GetExpenses()
	CreateExpense()
}

// ExpenseController handles expense requests
type ExpenseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewExpenseController creates a new expense controller
func NewExpenseController(ctx *gin.Context, container *container.ServiceContainer) *ExpenseController {
	return &ExpenseController{
		Ctx:       ctx,
		Container: container,
	}
}

// ExpenseRequest represents a create-expense request
type ExpenseRequest struct {
	Title       string     `json:"title" binding:"required" example:"Water pump repair"`
	Description string     `json:"description" example:"Replaced the motor on the rooftop pump"`
	Amount      float64    `json:"amount" binding:"required" example:"3200"`
	Category    string     `json:"category" binding:"required" example:"maintenance"`
	Date        *time.Time `json:"date"`
}

// HandleExpenseFunc returns a gin handler for expense requests
func HandleExpenseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewExpenseController(ctx, container)

		switch method {
		case "getExpenses":
			controller.GetExpenses()
		case "createExpense":
			controller.CreateExpense()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetExpenses returns the expense list
// @Summary      List expenses
// @Description  Returns expenses newest first with pagination
// @Tags         Expense
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /expenses [get]
func (c *ExpenseController) GetExpenses() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	expenseService := c.Container.GetService("expense").(services.InterfaceExpenseService)
	expenses, total, err := expenseService.GetAllExpenses(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch expenses", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        expenses,
	})
}

// CreateExpense records an operating cost entry
// @Summary      Create expense
// @Description  Records an operating cost attributed to the logged-in admin
// @Tags         Expense
// @Accept       json
// @Produce      json
// @Param        request body ExpenseRequest true "Expense fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /expenses [post]
func (c *ExpenseController) CreateExpense() {
	var req ExpenseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	expense := &models.Expense{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		CreatedBy:   middleware.CurrentUserID(c.Ctx),
	}

	expenseService := c.Container.GetService("expense").(services.InterfaceExpenseService)
	if err := expenseService.CreateExpense(expense); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, expense)
}
