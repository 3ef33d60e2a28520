package models

import "time"

// Floor represents a building level containing rooms
type Floor struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Level      int       `gorm:"unique;not null" json:"level"`                // Building level number, e.g. 1 for ground floor
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`       // Display name, e.g. "Ground Floor"
	TotalRooms int       `gorm:"not null;default:20" json:"total_rooms"`      // Planned room count for the level
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Rooms []Room `gorm:"foreignKey:FloorID" json:"rooms,omitempty"`
}
