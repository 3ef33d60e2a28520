package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/middleware"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/services/container"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/code"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/error/response"
)

// InterfaceRoomController defines the room controller interface
type InterfaceRoomController interface {
	GetRooms()
	GetRoom()
	CreateRoom()
	UpdateRoom()
}

// RoomController handles room requests
type RoomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRoomController creates a new room controller
func NewRoomController(ctx *gin.Context, container *container.ServiceContainer) *RoomController {
	return &RoomController{
		Ctx:       ctx,
		Container: container,
	}
}

// RoomRequest represents a create-room request. Occupancy and status
// are derived fields and have no place here.
type RoomRequest struct {
	Number      string  `json:"number" binding:"required" example:"101"`
	FloorID     uint    `json:"floor_id" binding:"required" example:"1"`
	Capacity    int     `json:"capacity" example:"2"`
	MonthlyRent float64 `json:"monthly_rent" binding:"required" example:"4500"`
}

// updatableRoomFields whitelists the JSON keys accepted by UpdateRoom.
// current_occupancy is deliberately absent; the service rejects it too.
var updatableRoomFields = map[string]bool{
	"number":       true,
	"floor_id":     true,
	"capacity":     true,
	"monthly_rent": true,
	"status":       true,
}

// HandleRoomFunc returns a gin handler for room requests
func HandleRoomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRoomController(ctx, container)

		switch method {
		case "getRooms":
			controller.GetRooms()
		case "getRoom":
			controller.GetRoom()
		case "createRoom":
			controller.CreateRoom()
		case "updateRoom":
			controller.UpdateRoom()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetRooms returns all rooms, optionally filtered by floor
// @Summary      List rooms
// @Description  Returns rooms with their floor; filter with floor_id
// @Tags         Room
// @Produce      json
// @Param        floor_id query int false "Filter by floor ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /rooms [get]
func (c *RoomController) GetRooms() {
	roomService := c.Container.GetService("room").(services.InterfaceRoomService)

	var rooms []models.Room
	var err error
	if floorParam := c.Ctx.Query("floor_id"); floorParam != "" {
		floorID, parseErr := strconv.ParseUint(floorParam, 10, 32)
		if parseErr != nil {
			response.ParamError(c.Ctx, "invalid floor_id")
			return
		}
		rooms, err = roomService.GetRoomsByFloor(uint(floorID))
	} else {
		rooms, err = roomService.GetAllRooms()
	}
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch rooms", nil)
		return
	}

	response.Success(c.Ctx, rooms)
}

// GetRoom returns one room
// @Summary      Get room
// @Description  Returns a room by ID with its residents
// @Tags         Room
// @Produce      json
// @Param        id path int true "Room ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [get]
func (c *RoomController) GetRoom() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.GetRoomByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			response.Fail(c.Ctx, code.ErrRoomNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch room", nil)
		return
	}

	response.Success(c.Ctx, room)
}

// CreateRoom adds a room; it always starts vacant and empty
// @Summary      Create room
// @Description  Adds a room on an existing floor; occupancy starts at zero
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        request body RoomRequest true "Room fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms [post]
func (c *RoomController) CreateRoom() {
	var req RoomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	room := &models.Room{
		Number:      req.Number,
		FloorID:     req.FloorID,
		Capacity:    req.Capacity,
		MonthlyRent: req.MonthlyRent,
	}

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	if err := roomService.CreateRoom(room); err != nil {
		c.failRoomWrite(err)
		return
	}

	c.invalidateCaches()

	response.Created(c.Ctx, room)
}

// UpdateRoom applies a partial update to the caller-owned fields
// @Summary      Update room
// @Description  Updates room metadata; occupancy is derived and rejected, status only accepts maintenance toggles
// @Tags         Room
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /rooms/{id} [put]
func (c *RoomController) UpdateRoom() {
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
		if key == "current_occupancy" {
			response.Fail(c.Ctx, code.ErrRoomFieldManaged, nil)
			return
		}
		if !updatableRoomFields[key] {
			response.ParamError(c.Ctx, "unknown field: "+key)
			return
		}

		switch key {
		case "floor_id", "capacity":
			num, isNum := value.(float64)
			if !isNum || num < 1 || num != float64(uint(num)) {
				response.ParamError(c.Ctx, key+" must be a positive integer")
				return
			}
			if key == "floor_id" {
				updates[key] = uint(num)
			} else {
				updates[key] = int(num)
			}
		case "monthly_rent":
			rent, isNum := value.(float64)
			if !isNum || rent < 0 {
				response.ParamError(c.Ctx, "monthly_rent must be a non-negative number")
				return
			}
			updates[key] = rent
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

	roomService := c.Container.GetService("room").(services.InterfaceRoomService)
	room, err := roomService.UpdateRoom(id, updates)
	if err != nil {
		c.failRoomWrite(err)
		return
	}

	if room.Status == models.RoomStatusMaintenance {
		activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
		_ = activityLogService.CreateLog(&models.ActivityLog{
			Type:        models.ActivityMaintenanceScheduled,
			Title:       "Maintenance Scheduled",
			Description: fmt.Sprintf("Room %s was marked for maintenance", room.Number),
			UserID:      middleware.CurrentUserID(c.Ctx),
			EntityID:    strconv.FormatUint(uint64(room.ID), 10),
		})
	}

	c.invalidateCaches()

	response.Success(c.Ctx, room)
}

// invalidateCaches drops the dashboard snapshot and the cached room reads
func (c *RoomController) invalidateCaches() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	dashboardService.InvalidateStatsCache()
	middleware.PurgeCache()
}

// parseID reads the :id path parameter
func (c *RoomController) parseID() (uint, bool) {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid room ID")
		return 0, false
	}
	return uint(idUint), true
}

// failRoomWrite maps service errors onto response codes
func (c *RoomController) failRoomWrite(err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		response.Fail(c.Ctx, code.ErrRoomNotFound, nil)
	case errors.Is(err, services.ErrFloorNotFound):
		response.Fail(c.Ctx, code.ErrFloorNotFound, nil)
	case errors.Is(err, services.ErrDuplicateRoomNumber):
		response.Fail(c.Ctx, code.ErrRoomAlreadyExist, nil)
	case errors.Is(err, services.ErrRoomFieldManaged):
		response.Fail(c.Ctx, code.ErrRoomFieldManaged, nil)
	case errors.Is(err, services.ErrRoomCapacityTooSmall):
		response.Fail(c.Ctx, code.ErrRoomCapacityTooSmall, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}
