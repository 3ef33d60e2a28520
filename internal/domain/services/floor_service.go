package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

var (
	// ErrFloorNotFound is returned when the referenced floor does not exist.
	ErrFloorNotFound = errors.New("floor not found")
	// ErrDuplicateFloorLevel is returned on a floor level uniqueness violation.
	ErrDuplicateFloorLevel = errors.New("floor level already exists")
)

// InterfaceFloorService defines the floor service interface. Floors are
// immutable after creation; there is no update path.
type InterfaceFloorService interface {
	GetAllFloors() ([]models.Floor, error)
	GetFloorByID(id uint) (*models.Floor, error)
	CreateFloor(floor *models.Floor) error
}

// FloorService provides floor-related services
type FloorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFloorService creates a new floor service
func NewFloorService(db *gorm.DB, cfg *config.Config) InterfaceFloorService {
	return &FloorService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllFloors returns all floors ordered by level
func (s *FloorService) GetAllFloors() ([]models.Floor, error) {
	var floors []models.Floor
	if err := s.DB.Order("level").Find(&floors).Error; err != nil {
		return nil, err
	}
	return floors, nil
}

// 2. GetFloorByID returns a floor by ID
func (s *FloorService) GetFloorByID(id uint) (*models.Floor, error) {
	var floor models.Floor
	if err := s.DB.First(&floor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return &floor, nil
}

// 3. CreateFloor creates a new floor
func (s *FloorService) CreateFloor(floor *models.Floor) error {
	var count int64
	if err := s.DB.Model(&models.Floor{}).Where("level = ?", floor.Level).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateFloorLevel
	}

	if floor.TotalRooms <= 0 {
		floor.TotalRooms = 20
	}

	return s.DB.Create(floor).Error
}
