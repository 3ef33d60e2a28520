package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

var (
	// ErrRoomNotFound is returned when the referenced room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrDuplicateRoomNumber is returned on a room number uniqueness violation.
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	// ErrRoomFieldManaged is returned when a caller tries to write the
	// derived occupancy/status columns directly.
	ErrRoomFieldManaged = errors.New("occupancy and status are derived from student assignments")
	// ErrRoomCapacityTooSmall is returned when a capacity update would
	// drop below the room's current occupancy.
	ErrRoomCapacityTooSmall = errors.New("capacity cannot drop below current occupancy")
)

// InterfaceRoomService defines the room service interface
type InterfaceRoomService interface {
	GetAllRooms() ([]models.Room, error)
	GetRoomsByFloor(floorID uint) ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
}

// RoomService provides room-related services
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates a new room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllRooms returns all rooms ordered by room number
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 2. GetRoomsByFloor returns the rooms of one floor
func (s *RoomService) GetRoomsByFloor(floorID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("floor_id = ?", floorID).Order("number").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// 3. GetRoomByID returns a room by ID
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Floor").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// 4. CreateRoom creates a new room
func (s *RoomService) CreateRoom(room *models.Room) error {
	// Verify room number uniqueness
	var count int64
	if err := s.DB.Model(&models.Room{}).Where("number = ?", room.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateRoomNumber
	}

	// Verify the floor exists
	var floor models.Floor
	if err := s.DB.First(&floor, room.FloorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFloorNotFound
		}
		return err
	}

	if room.Capacity <= 0 {
		room.Capacity = 2
	}
	room.CurrentOccupancy = 0
	room.Status = models.RoomStatusVacant

	return s.DB.Create(room).Error
}

// 5. UpdateRoom applies a partial update to a room.
//
// The derived columns are protected: current_occupancy is rejected
// outright, and status only accepts the maintenance toggle. Clearing
// maintenance re-derives vacant/occupied from the counter.
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if _, ok := updates["current_occupancy"]; ok {
		return nil, ErrRoomFieldManaged
	}

	if raw, ok := updates["status"]; ok {
		status := models.RoomStatus(raw.(string))
		switch {
		case status == models.RoomStatusMaintenance:
			updates["status"] = models.RoomStatusMaintenance
		case room.Status == models.RoomStatusMaintenance:
			// Leaving maintenance: derive the display status from the counter
			if room.CurrentOccupancy == 0 {
				updates["status"] = models.RoomStatusVacant
			} else {
				updates["status"] = models.RoomStatusOccupied
			}
		default:
			return nil, ErrRoomFieldManaged
		}
	}

	if capacity, ok := updates["capacity"].(int); ok {
		// Shrinking below the live occupancy would leave residents
		// without a counted bed
		if capacity < room.CurrentOccupancy {
			return nil, ErrRoomCapacityTooSmall
		}
		// Resizing can move the room across the full/has-space line, so
		// refresh the derived status unless maintenance holds it
		if _, statusSet := updates["status"]; !statusSet && room.Status != models.RoomStatusMaintenance {
			switch {
			case room.CurrentOccupancy >= capacity:
				updates["status"] = models.RoomStatusOccupied
			case room.CurrentOccupancy == 0:
				updates["status"] = models.RoomStatusVacant
			case room.Status == models.RoomStatusOccupied:
				updates["status"] = models.RoomStatusVacant
			}
		}
	}

	if number, ok := updates["number"].(string); ok && number != room.Number {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("number = ? AND id != ?", number, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateRoomNumber
		}
	}

	if floorID, ok := updates["floor_id"].(uint); ok && floorID != room.FloorID {
		var floor models.Floor
		if err := s.DB.First(&floor, floorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFloorNotFound
			}
			return nil, err
		}
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoomByID(id)
}
