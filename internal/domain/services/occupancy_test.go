package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestNextOccupancy(t *testing.T) {
	tests := []struct {
		name       string
		status     models.RoomStatus
		occupancy  int
		capacity   int
		delta      int
		wantOcc    int
		wantStatus models.RoomStatus
	}{
		{
			name:       "increment below capacity keeps status",
			status:     models.RoomStatusVacant,
			occupancy:  0,
			capacity:   3,
			delta:      1,
			wantOcc:    1,
			wantStatus: models.RoomStatusVacant,
		},
		{
			name:       "increment reaching capacity promotes to occupied",
			status:     models.RoomStatusVacant,
			occupancy:  1,
			capacity:   2,
			delta:      1,
			wantOcc:    2,
			wantStatus: models.RoomStatusOccupied,
		},
		{
			name:       "decrement above zero keeps occupied",
			status:     models.RoomStatusOccupied,
			occupancy:  2,
			capacity:   2,
			delta:      -1,
			wantOcc:    1,
			wantStatus: models.RoomStatusOccupied,
		},
		{
			name:       "decrement to zero demotes to vacant",
			status:     models.RoomStatusOccupied,
			occupancy:  1,
			capacity:   2,
			delta:      -1,
			wantOcc:    0,
			wantStatus: models.RoomStatusVacant,
		},
		{
			name:       "decrement clamps at zero",
			status:     models.RoomStatusVacant,
			occupancy:  0,
			capacity:   2,
			delta:      -1,
			wantOcc:    0,
			wantStatus: models.RoomStatusVacant,
		},
		{
			name:       "maintenance survives increment",
			status:     models.RoomStatusMaintenance,
			occupancy:  1,
			capacity:   2,
			delta:      1,
			wantOcc:    2,
			wantStatus: models.RoomStatusMaintenance,
		},
		{
			name:       "maintenance survives decrement to zero",
			status:     models.RoomStatusMaintenance,
			occupancy:  1,
			capacity:   2,
			delta:      -1,
			wantOcc:    0,
			wantStatus: models.RoomStatusMaintenance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOcc, gotStatus := NextOccupancy(tt.status, tt.occupancy, tt.capacity, tt.delta)
			assert.Equal(t, tt.wantOcc, gotOcc)
			assert.Equal(t, tt.wantStatus, gotStatus)
		})
	}
}

func TestAdjustRoomOccupancyIncrement(t *testing.T) {
	db := setupTestDB(t)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	updated, err := adjustRoomOccupancy(db, room.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, updated.Status)

	updated, err = adjustRoomOccupancy(db, room.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 2, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)
}

func TestAdjustRoomOccupancyRejectsOverfill(t *testing.T) {
	db := setupTestDB(t)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	_, err := adjustRoomOccupancy(db, room.ID, +1)
	require.NoError(t, err)

	_, err = adjustRoomOccupancy(db, room.ID, +1)
	assert.ErrorIs(t, err, ErrRoomFull)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
}

func TestAdjustRoomOccupancyUnknownRoom(t *testing.T) {
	db := setupTestDB(t)

	_, err := adjustRoomOccupancy(db, 999, +1)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAdjustRoomOccupancyPreservesMaintenance(t *testing.T) {
	db := setupTestDB(t)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	require.NoError(t, db.Model(room).Update("status", models.RoomStatusMaintenance).Error)

	updated, err := adjustRoomOccupancy(db, room.ID, +1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusMaintenance, updated.Status)

	updated, err = adjustRoomOccupancy(db, room.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusMaintenance, updated.Status)
}
