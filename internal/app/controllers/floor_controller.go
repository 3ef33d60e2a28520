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

// InterfaceFloorController defines the floor controller interface
type InterfaceFloorController interface {
	GetFloors()
	GetFloor()
	CreateFloor()
}

// FloorController handles floor requests
type FloorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFloorController creates a new floor controller
func NewFloorController(ctx *gin.Context, container *container.ServiceContainer) *FloorController {
	return &FloorController{
		Ctx:       ctx,
		Container: container,
	}
}

// FloorRequest represents a create-floor request
type FloorRequest struct {
	Level      int    `json:"level" binding:"required" example:"1"`
	Name       string `json:"name" binding:"required" example:"Ground Floor"`
	TotalRooms int    `json:"total_rooms" example:"20"`
}

// HandleFloorFunc returns a gin handler for floor requests
func HandleFloorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFloorController(ctx, container)

		switch method {
		case "getFloors":
			controller.GetFloors()
		case "getFloor":
			controller.GetFloor()
		case "createFloor":
			controller.CreateFloor()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetFloors returns all floors ordered by level
// @Summary      List floors
// @Description  Returns all floors with their rooms, ordered by level
// @Tags         Floor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /floors [get]
func (c *FloorController) GetFloors() {
	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)
	floors, err := floorService.GetAllFloors()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch floors", nil)
		return
	}

	response.Success(c.Ctx, floors)
}

// GetFloor returns one floor
// @Summary      Get floor
// @Description  Returns a floor by ID with its rooms
// @Tags         Floor
// @Produce      json
// @Param        id path int true "Floor ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /floors/{id} [get]
func (c *FloorController) GetFloor() {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid floor ID")
		return
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)
	floor, err := floorService.GetFloorByID(uint(idUint))
	if err != nil {
		if errors.Is(err, services.ErrFloorNotFound) {
			response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch floor", nil)
		return
	}

	response.Success(c.Ctx, floor)
}

// CreateFloor adds a building level
// @Summary      Create floor
// @Description  Adds a building level with a unique level number
// @Tags         Floor
// @Accept       json
// @Produce      json
// @Param        request body FloorRequest true "Floor fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /floors [post]
func (c *FloorController) CreateFloor() {
	var req FloorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	floor := &models.Floor{
		Level:      req.Level,
		Name:       req.Name,
		TotalRooms: req.TotalRooms,
	}

	floorService := c.Container.GetService("floor").(services.InterfaceFloorService)
	if err := floorService.CreateFloor(floor); err != nil {
		if errors.Is(err, services.ErrDuplicateFloorLevel) {
			response.Fail(c.Ctx, code.ErrFloorAlreadyExist, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	middleware.PurgeCache()

	response.Created(c.Ctx, floor)
}
