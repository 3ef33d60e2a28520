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

// InterfaceStudentController defines the student controller interface
type InterfaceStudentController interface {
	GetStudents()
	GetStudent()
	CreateStudent()
	UpdateStudent()
	DeleteStudent()
}

// StudentController handles student requests
type StudentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStudentController creates a new student controller
func NewStudentController(ctx *gin.Context, container *container.ServiceContainer) *StudentController {
	return &StudentController{
		Ctx:       ctx,
		Container: container,
	}
}

// StudentRequest represents a create-student request
type StudentRequest struct {
	StudentNumber    string     `json:"student_number" example:"STU-2024-0012"`
	Name             string     `json:"name" binding:"required" example:"Rahim Uddin"`
	Email            string     `json:"email" binding:"omitempty,email" example:"rahim@student.edu.bd"`
	Phone            string     `json:"phone" example:"+8801712345678"`
	RoomID           *uint      `json:"room_id" example:"1"`
	AdmissionDate    *time.Time `json:"admission_date"`
	EmergencyContact string     `json:"emergency_contact" example:"+8801898765432"`
	Address          string     `json:"address" example:"Mirpur-10, Dhaka"`
}

// updatableStudentFields whitelists the JSON keys accepted by UpdateStudent.
// The update body is decoded as a raw map so a `"room_id": null` unassignment
// can be told apart from an absent key.
var updatableStudentFields = map[string]bool{
	"student_number":    true,
	"name":              true,
	"email":             true,
	"phone":             true,
	"room_id":           true,
	"admission_date":    true,
	"is_active":         true,
	"emergency_contact": true,
	"address":           true,
}

// HandleStudentFunc returns a gin handler for student requests
func HandleStudentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStudentController(ctx, container)

		switch method {
		case "getStudents":
			controller.GetStudents()
		case "getStudent":
			controller.GetStudent()
		case "createStudent":
			controller.CreateStudent()
		case "updateStudent":
			controller.UpdateStudent()
		case "deleteStudent":
			controller.DeleteStudent()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetStudents returns the student list
// @Summary      List students
// @Description  Returns students newest first with pagination
// @Tags         Student
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        page_size query int false "Page size, default 10"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /students [get]
func (c *StudentController) GetStudents() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Ctx.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)
	students, total, err := studentService.GetAllStudents(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch students", nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        students,
	})
}

// GetStudent returns one student
// @Summary      Get student
// @Description  Returns a student by ID
// @Tags         Student
// @Produce      json
// @Param        id path int true "Student ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /students/{id} [get]
func (c *StudentController) GetStudent() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)
	student, err := studentService.GetStudentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			response.Fail(c.Ctx, code.ErrStudentNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch student", nil)
		return
	}

	response.Success(c.Ctx, student)
}

// CreateStudent admits a new student, optionally assigning a room
// @Summary      Create student
// @Description  Admits a new student; assigning a room adjusts its occupancy atomically
// @Tags         Student
// @Accept       json
// @Produce      json
// @Param        request body StudentRequest true "Student fields"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /students [post]
func (c *StudentController) CreateStudent() {
	var req StudentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	admissionDate := time.Now()
	if req.AdmissionDate != nil {
		admissionDate = *req.AdmissionDate
	}

	student := &models.Student{
		StudentNumber:    req.StudentNumber,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RoomID:           req.RoomID,
		AdmissionDate:    admissionDate,
		IsActive:         true,
		EmergencyContact: req.EmergencyContact,
		Address:          req.Address,
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)
	if err := studentService.CreateStudent(student); err != nil {
		c.failStudentWrite(err)
		return
	}

	c.logActivity(models.ActivityStudentAdded, "Student Added",
		fmt.Sprintf("Student %s was added", student.Name), student.ID)
	c.invalidateStats()

	response.Created(c.Ctx, student)
}

// UpdateStudent applies a partial update, including room reassignment
// @Summary      Update student
// @Description  Partially updates a student; room changes adjust both rooms' occupancy atomically
// @Tags         Student
// @Accept       json
// @Produce      json
// @Param        id path int true "Student ID"
// @Param        request body map[string]interface{} true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /students/{id} [put]
func (c *StudentController) UpdateStudent() {
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
		if !updatableStudentFields[key] {
			response.ParamError(c.Ctx, "unknown field: "+key)
			return
		}

		switch key {
		case "room_id":
			if value == nil {
				updates[key] = nil
				continue
			}
			num, isNum := value.(float64)
			if !isNum || num < 0 || num != float64(uint(num)) {
				response.ParamError(c.Ctx, "room_id must be a positive integer or null")
				return
			}
			updates[key] = uint(num)
		case "is_active":
			active, isBool := value.(bool)
			if !isBool {
				response.ParamError(c.Ctx, "is_active must be a boolean")
				return
			}
			updates[key] = active
		case "admission_date":
			raw, isString := value.(string)
			if !isString {
				response.ParamError(c.Ctx, "admission_date must be an RFC3339 timestamp")
				return
			}
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				response.ParamError(c.Ctx, "admission_date must be an RFC3339 timestamp")
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

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)
	student, err := studentService.UpdateStudent(id, updates)
	if err != nil {
		c.failStudentWrite(err)
		return
	}

	c.logActivity(models.ActivityRoomAssigned, "Student Updated",
		fmt.Sprintf("Student %s was updated", student.Name), student.ID)
	c.invalidateStats()

	response.Success(c.Ctx, student)
}

// DeleteStudent checks a student out and releases their room
// @Summary      Delete student
// @Description  Removes a student; an assigned room's occupancy is decremented atomically
// @Tags         Student
// @Produce      json
// @Param        id path int true "Student ID"
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      404  {object}  ErrorResponse
// @Router       /students/{id} [delete]
func (c *StudentController) DeleteStudent() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)
	if err := studentService.DeleteStudent(id); err != nil {
		c.failStudentWrite(err)
		return
	}

	c.logActivity(models.ActivityStudentAdded, "Student Deleted",
		"Student was deleted", id)
	c.invalidateStats()

	response.NoContent(c.Ctx)
}

// parseID reads the :id path parameter
func (c *StudentController) parseID() (uint, bool) {
	id := c.Ctx.Param("id")
	idUint, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid student ID")
		return 0, false
	}
	return uint(idUint), true
}

// failStudentWrite maps engine errors onto response codes
func (c *StudentController) failStudentWrite(err error) {
	switch {
	case errors.Is(err, services.ErrStudentNotFound):
		response.Fail(c.Ctx, code.ErrStudentNotFound, nil)
	case errors.Is(err, services.ErrRoomNotFound):
		response.Fail(c.Ctx, code.ErrRoomNotFound, nil)
	case errors.Is(err, services.ErrRoomFull):
		response.Fail(c.Ctx, code.ErrRoomFull, nil)
	case errors.Is(err, services.ErrDuplicateStudentNumber):
		response.Fail(c.Ctx, code.ErrStudentAlreadyExist, nil)
	case errors.Is(err, services.ErrStudentInactive):
		response.Fail(c.Ctx, code.ErrStudentInactive, nil)
	case errors.Is(err, services.ErrOccupancyConflict):
		response.Fail(c.Ctx, code.ErrRoomConflict, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

// logActivity appends an entry to the dashboard activity feed
func (c *StudentController) logActivity(activityType models.ActivityType, title, description string, entityID uint) {
	activityLogService := c.Container.GetService("activity_log").(services.InterfaceActivityLogService)
	_ = activityLogService.CreateLog(&models.ActivityLog{
		Type:        activityType,
		Title:       title,
		Description: description,
		UserID:      middleware.CurrentUserID(c.Ctx),
		EntityID:    strconv.FormatUint(uint64(entityID), 10),
	})
}

// invalidateStats drops the cached dashboard snapshot and response cache.
// Student writes also move room occupancy, so cached room reads are stale.
func (c *StudentController) invalidateStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	dashboardService.InvalidateStatsCache()
	middleware.PurgeCache()
}
