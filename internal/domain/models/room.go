package models

// RoomStatus is the display status of a room on the floor map.
type RoomStatus string

const (
	RoomStatusVacant      RoomStatus = "vacant"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

// Room represents a rentable unit with a fixed bed capacity.
//
// CurrentOccupancy and Status are derived columns owned by the student
// write paths; they are never accepted from API callers.
type Room struct {
	BaseModel
	Number           string     `gorm:"type:varchar(10);unique;not null" json:"number"`
	FloorID          uint       `gorm:"not null" json:"floor_id"`
	Capacity         int        `gorm:"not null;default:2" json:"capacity"`
	CurrentOccupancy int        `gorm:"not null;default:0" json:"current_occupancy"`
	Status           RoomStatus `gorm:"type:varchar(20);not null;default:'vacant'" json:"status"`
	MonthlyRent      float64    `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`

	// Relations
	Floor    *Floor    `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Students []Student `gorm:"foreignKey:RoomID" json:"students,omitempty"`
}
