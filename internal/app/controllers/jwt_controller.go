package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// InterfaceJWTController defines the authentication controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new authentication controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is the payload returned on a successful login
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID   uint   `json:"user_id" example:"1"`
	Role     string `json:"role" example:"admin"`
	Username string `json:"username" example:"admin"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"incorrect username or password"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a gin handler for authentication requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// Login handles administrator login
// @Summary      Administrator login
// @Description  Validates credentials and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, LoginData{
		Token:    token,
		UserID:   user.ID,
		Role:     user.Role,
		Username: user.Username,
	})
}
