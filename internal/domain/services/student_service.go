package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

var (
	// ErrStudentNotFound is returned when the referenced student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrDuplicateStudentNumber is returned on a student number uniqueness violation.
	ErrDuplicateStudentNumber = errors.New("student number already exists")
	// ErrStudentInactive is returned when a room is assigned to a student
	// who is, or would become, inactive. Occupancy counts active residents
	// only, so such an assignment could never be reflected in the counter.
	ErrStudentInactive = errors.New("cannot assign a room to an inactive student")
)

// InterfaceStudentService defines the student service interface.
//
// The service owns the rooms.current_occupancy and rooms.status columns:
// every student mutation that touches a room assignment adjusts them inside
// the same transaction, so readers never observe a student moved without
// the counters following.
type InterfaceStudentService interface {
	GetAllStudents(page int, pageSize int) ([]models.Student, int64, error)
	GetStudentByID(id uint) (*models.Student, error)
	GetStudentByNumber(studentNumber string) (*models.Student, error)
	CreateStudent(student *models.Student) error
	UpdateStudent(id uint, updates map[string]interface{}) (*models.Student, error)
	DeleteStudent(id uint) error
}

// StudentService provides student-related services
type StudentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStudentService creates a new student service
func NewStudentService(db *gorm.DB, cfg *config.Config) InterfaceStudentService {
	return &StudentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllStudents returns students newest first, with pagination
func (s *StudentService) GetAllStudents(page int, pageSize int) ([]models.Student, int64, error) {
	var students []models.Student
	var total int64

	if err := s.DB.Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Preload("Room").Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&students).Error; err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// 2. GetStudentByID returns a student by ID
func (s *StudentService) GetStudentByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Preload("Room").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// 3. GetStudentByNumber returns a student by the human-readable number
func (s *StudentService) GetStudentByNumber(studentNumber string) (*models.Student, error) {
	var student models.Student
	if err := s.DB.Where("student_number = ?", studentNumber).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// 4. CreateStudent inserts a new student and, when a room is assigned,
// increments that room's occupancy in the same transaction
func (s *StudentService) CreateStudent(student *models.Student) error {
	if student.RoomID != nil && !student.IsActive {
		return ErrStudentInactive
	}

	if student.StudentNumber == "" {
		student.StudentNumber = generateStudentNumber()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Student{}).Where("student_number = ?", student.StudentNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateStudentNumber
		}

		if err := tx.Create(student).Error; err != nil {
			return err
		}

		if student.RoomID != nil {
			if _, err := adjustRoomOccupancy(tx, *student.RoomID, +1); err != nil {
				return err
			}
		}

		return nil
	})
}

// 5. UpdateStudent applies a partial update. A room_id key (including an
// explicit nil) triggers reassignment: the old room is decremented and the
// new one incremented atomically. Deactivating a student releases their
// room, since occupancy counts active residents only.
func (s *StudentService) UpdateStudent(id uint, updates map[string]interface{}) (*models.Student, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		if number, ok := updates["student_number"].(string); ok && number != student.StudentNumber {
			var count int64
			if err := tx.Model(&models.Student{}).Where("student_number = ? AND id != ?", number, id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateStudentNumber
			}
		}

		// Resolve the target room assignment
		targetRoomID := student.RoomID
		if raw, ok := updates["room_id"]; ok {
			if raw == nil {
				targetRoomID = nil
			} else {
				roomID := raw.(uint)
				targetRoomID = &roomID
			}
		}

		// Occupancy counts active residents only: an inactive student
		// cannot take a room, and deactivation releases the current one
		resultingActive := student.IsActive
		if active, ok := updates["is_active"].(bool); ok {
			resultingActive = active
		}
		if !resultingActive {
			if raw, ok := updates["room_id"]; ok && raw != nil {
				return ErrStudentInactive
			}
			targetRoomID = nil
			updates["room_id"] = nil
		}

		if !sameRoom(student.RoomID, targetRoomID) {
			if student.RoomID != nil {
				if _, err := adjustRoomOccupancy(tx, *student.RoomID, -1); err != nil {
					return err
				}
			}
			if targetRoomID != nil {
				if _, err := adjustRoomOccupancy(tx, *targetRoomID, +1); err != nil {
					return err
				}
			}
		}

		return tx.Model(&student).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetStudentByID(id)
}

// 6. DeleteStudent removes a student and releases their room
func (s *StudentService) DeleteStudent(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		if err := tx.Delete(&student).Error; err != nil {
			return err
		}

		if student.RoomID != nil {
			if _, err := adjustRoomOccupancy(tx, *student.RoomID, -1); err != nil {
				return err
			}
		}

		return nil
	})
}

// sameRoom reports whether two nullable room references point at the same room
func sameRoom(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// generateStudentNumber builds a number like STU-9F2C41AB for admissions
// recorded without one
func generateStudentNumber() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return "STU-" + fragment
}
