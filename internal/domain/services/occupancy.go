package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

var (
	// ErrRoomFull is returned when a student is assigned to a room that is
	// already at capacity.
	ErrRoomFull = errors.New("room is already at full capacity")
	// ErrOccupancyConflict is returned when concurrent writers keep
	// invalidating the occupancy update.
	ErrOccupancyConflict = errors.New("concurrent room occupancy update")
)

// occupancyWriteRetries bounds the optimistic update loop in
// adjustRoomOccupancy.
const occupancyWriteRetries = 3

// NextOccupancy applies a delta to a room's occupancy counter and derives
// the resulting status. It is the single source of truth for the
// occupancy/status transition, shared by student create, update and delete.
//
// The transition is asymmetric: a room is promoted to occupied when the
// counter reaches capacity, demoted to vacant only when it reaches zero,
// and otherwise keeps its current status. A room under maintenance keeps
// that status regardless of occupancy changes; only the room update path
// may clear it.
func NextOccupancy(status models.RoomStatus, occupancy, capacity, delta int) (int, models.RoomStatus) {
	next := occupancy + delta
	if next < 0 {
		next = 0
	}

	if status == models.RoomStatusMaintenance {
		return next, status
	}
	if delta > 0 && next >= capacity {
		return next, models.RoomStatusOccupied
	}
	if delta < 0 && next == 0 {
		return next, models.RoomStatusVacant
	}
	return next, status
}

// adjustRoomOccupancy moves a room's occupancy counter by delta inside the
// caller's transaction and returns the room as written.
//
// The write is guarded by the previously read counter value
// (WHERE current_occupancy = ?); a zero RowsAffected means another writer
// got there first and the read/compute/write cycle is retried. This keeps
// the counter safe against lost updates without row locks, which the
// sqlite test dialect does not support.
func adjustRoomOccupancy(tx *gorm.DB, roomID uint, delta int) (*models.Room, error) {
	for attempt := 0; attempt < occupancyWriteRetries; attempt++ {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}

		if delta > 0 && room.CurrentOccupancy >= room.Capacity {
			return nil, ErrRoomFull
		}

		newOccupancy, newStatus := NextOccupancy(room.Status, room.CurrentOccupancy, room.Capacity, delta)

		result := tx.Model(&models.Room{}).
			Where("id = ? AND current_occupancy = ?", room.ID, room.CurrentOccupancy).
			Updates(map[string]interface{}{
				"current_occupancy": newOccupancy,
				"status":            newStatus,
			})
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 1 {
			room.CurrentOccupancy = newOccupancy
			room.Status = newStatus
			return &room, nil
		}
	}

	return nil, ErrOccupancyConflict
}
