package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestCreateRoomForcesDerivedDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)

	// Caller-supplied counters must be discarded
	room := &models.Room{
		Number:           "101",
		FloorID:          floor.ID,
		CurrentOccupancy: 5,
		Status:           models.RoomStatusOccupied,
		MonthlyRent:      4500,
	}
	require.NoError(t, svc.CreateRoom(room))

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)
	assert.Equal(t, 2, stored.Capacity) // default capacity
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)

	require.NoError(t, svc.CreateRoom(&models.Room{Number: "101", FloorID: floor.ID, MonthlyRent: 4500}))

	err := svc.CreateRoom(&models.Room{Number: "101", FloorID: floor.ID, MonthlyRent: 4500})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestCreateRoomUnknownFloor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)

	err := svc.CreateRoom(&models.Room{Number: "101", FloorID: 999, MonthlyRent: 4500})
	assert.ErrorIs(t, err, ErrFloorNotFound)
}

func TestUpdateRoomRejectsOccupancyWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	_, err := svc.UpdateRoom(room.ID, map[string]interface{}{"current_occupancy": 1})
	assert.ErrorIs(t, err, ErrRoomFieldManaged)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
}

func TestUpdateRoomRejectsDirectStatusWrite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	_, err := svc.UpdateRoom(room.ID, map[string]interface{}{"status": "occupied"})
	assert.ErrorIs(t, err, ErrRoomFieldManaged)
}

func TestUpdateRoomMaintenanceToggle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{"status": "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, updated.Status)

	// Leaving maintenance re-derives the status from the counter
	updated, err = svc.UpdateRoom(room.ID, map[string]interface{}{"status": "vacant"})
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)
	assert.Equal(t, 1, updated.CurrentOccupancy)
}

func TestUpdateRoomRejectsCapacityBelowOccupancy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))
	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Karim", RoomID: &room.ID, IsActive: true}))

	_, err := svc.UpdateRoom(room.ID, map[string]interface{}{"capacity": 1})
	assert.ErrorIs(t, err, ErrRoomCapacityTooSmall)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 2, stored.Capacity)
	assert.Equal(t, 2, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)
}

func TestUpdateRoomCapacityShrinkToOccupancy(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 3)

	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))

	// Shrinking to exactly the occupancy fills the room
	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{"capacity": 1})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Capacity)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)
}

func TestUpdateRoomCapacityGrowFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))
	require.Equal(t, models.RoomStatusOccupied, fetchRoom(t, db, room.ID).Status)

	// Growing a full room opens a bed again
	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{"capacity": 2})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Capacity)
	assert.Equal(t, 1, updated.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, updated.Status)
}

func TestUpdateRoomCapacityKeepsMaintenance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	_, err := svc.UpdateRoom(room.ID, map[string]interface{}{"status": "maintenance"})
	require.NoError(t, err)

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{"capacity": 4})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Capacity)
	assert.Equal(t, models.RoomStatusMaintenance, updated.Status)
}

func TestUpdateRoomMetadata(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	updated, err := svc.UpdateRoom(room.ID, map[string]interface{}{
		"number":       "102",
		"monthly_rent": 5200.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "102", updated.Number)
	assert.Equal(t, 5200.0, updated.MonthlyRent)
}

func TestUpdateRoomDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floor := createTestFloor(t, db, 1)
	createTestRoom(t, db, floor.ID, "101", 2)
	room := createTestRoom(t, db, floor.ID, "102", 2)

	_, err := svc.UpdateRoom(room.ID, map[string]interface{}{"number": "101"})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
}

func TestGetRoomsByFloor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRoomService(db, nil)
	floorA := createTestFloor(t, db, 1)
	floorB := createTestFloor(t, db, 2)
	createTestRoom(t, db, floorA.ID, "101", 2)
	createTestRoom(t, db, floorA.ID, "102", 2)
	createTestRoom(t, db, floorB.ID, "201", 2)

	rooms, err := svc.GetRoomsByFloor(floorA.ID)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}
