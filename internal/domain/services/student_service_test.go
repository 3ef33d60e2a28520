package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestCreateStudentFillsRoomToCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	first := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(first))

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)

	second := &models.Student{Name: "Karim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(second))

	stored = fetchRoom(t, db, room.ID)
	assert.Equal(t, 2, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)
}

func TestCreateStudentRejectsFullRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	require.NoError(t, svc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))

	err := svc.CreateStudent(&models.Student{Name: "Karim", RoomID: &room.ID, IsActive: true})
	assert.ErrorIs(t, err, ErrRoomFull)

	// The rejected admission must not be persisted
	var count int64
	require.NoError(t, db.Model(&models.Student{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
}

func TestCreateStudentUnknownRoomRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	missing := uint(999)
	err := svc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &missing, IsActive: true})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateStudentGeneratesNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	assert.True(t, strings.HasPrefix(student.StudentNumber, "STU-"))
	assert.Len(t, student.StudentNumber, len("STU-")+8)
}

func TestCreateStudentDuplicateNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	require.NoError(t, svc.CreateStudent(&models.Student{Name: "Rahim", StudentNumber: "STU-0001", IsActive: true}))

	err := svc.CreateStudent(&models.Student{Name: "Karim", StudentNumber: "STU-0001", IsActive: true})
	assert.ErrorIs(t, err, ErrDuplicateStudentNumber)
}

func TestUpdateStudentReassignsRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	roomA := createTestRoom(t, db, floor.ID, "101", 1)
	roomB := createTestRoom(t, db, floor.ID, "102", 2)

	student := &models.Student{Name: "Rahim", RoomID: &roomA.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	require.Equal(t, models.RoomStatusOccupied, fetchRoom(t, db, roomA.ID).Status)

	updated, err := svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": roomB.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.RoomID)
	assert.Equal(t, roomB.ID, *updated.RoomID)

	oldRoom := fetchRoom(t, db, roomA.ID)
	assert.Equal(t, 0, oldRoom.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, oldRoom.Status)

	newRoom := fetchRoom(t, db, roomB.ID)
	assert.Equal(t, 1, newRoom.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, newRoom.Status)
}

func TestUpdateStudentSameRoomIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": room.ID})
	require.NoError(t, err)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
}

func TestUpdateStudentUnassignReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	require.Equal(t, models.RoomStatusOccupied, fetchRoom(t, db, room.ID).Status)

	updated, err := svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.RoomID)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)
}

func TestUpdateStudentRejectsFullRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	roomA := createTestRoom(t, db, floor.ID, "101", 2)
	roomB := createTestRoom(t, db, floor.ID, "102", 1)

	require.NoError(t, svc.CreateStudent(&models.Student{Name: "Karim", RoomID: &roomB.ID, IsActive: true}))

	student := &models.Student{Name: "Rahim", RoomID: &roomA.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": roomB.ID})
	assert.ErrorIs(t, err, ErrRoomFull)

	// The failed move must leave both rooms untouched
	assert.Equal(t, 1, fetchRoom(t, db, roomA.ID).CurrentOccupancy)
	assert.Equal(t, 1, fetchRoom(t, db, roomB.ID).CurrentOccupancy)

	stored, err := svc.GetStudentByID(student.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RoomID)
	assert.Equal(t, roomA.ID, *stored.RoomID)
}

func TestUpdateStudentUnknownRoomRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": uint(999)})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// The failed move must roll back the old room's release
	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)

	current, err := svc.GetStudentByID(student.ID)
	require.NoError(t, err)
	require.NotNil(t, current.RoomID)
	assert.Equal(t, room.ID, *current.RoomID)
}

func TestUpdateStudentDeactivationReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	updated, err := svc.UpdateStudent(student.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Nil(t, updated.RoomID)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)
}

func TestUpdateStudentRejectsRoomForInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(student.ID, map[string]interface{}{"room_id": room.ID})
	assert.ErrorIs(t, err, ErrStudentInactive)

	// The counter only tracks active residents, so it must stay at zero
	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)

	current, err := svc.GetStudentByID(student.ID)
	require.NoError(t, err)
	assert.Nil(t, current.RoomID)
}

func TestUpdateStudentRejectsRoomWithDeactivation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{
		"room_id":   room.ID,
		"is_active": false,
	})
	assert.ErrorIs(t, err, ErrStudentInactive)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
}

func TestUpdateStudentReactivationWithRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	_, err := svc.UpdateStudent(student.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	require.Equal(t, 0, fetchRoom(t, db, room.ID).CurrentOccupancy)

	updated, err := svc.UpdateStudent(student.ID, map[string]interface{}{
		"room_id":   room.ID,
		"is_active": true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.RoomID)
	assert.Equal(t, room.ID, *updated.RoomID)

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusOccupied, stored.Status)
}

func TestCreateStudentRejectsRoomForInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	err := svc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: false})
	assert.ErrorIs(t, err, ErrStudentInactive)

	assert.Equal(t, 0, fetchRoom(t, db, room.ID).CurrentOccupancy)
}

func TestUpdateStudentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	_, err := svc.UpdateStudent(999, map[string]interface{}{"name": "Rahim"})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestDeleteStudentReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	require.Equal(t, models.RoomStatusOccupied, fetchRoom(t, db, room.ID).Status)

	require.NoError(t, svc.DeleteStudent(student.ID))

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)

	_, err := svc.GetStudentByID(student.ID)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestDeleteStudentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	err := svc.DeleteStudent(999)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestStudentRoundTripRestoresVacant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))
	require.NoError(t, svc.DeleteStudent(student.ID))

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 0, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusVacant, stored.Status)
}

func TestStudentAssignmentKeepsMaintenance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 2)

	require.NoError(t, db.Model(room).Update("status", models.RoomStatusMaintenance).Error)

	student := &models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}
	require.NoError(t, svc.CreateStudent(student))

	stored := fetchRoom(t, db, room.ID)
	assert.Equal(t, 1, stored.CurrentOccupancy)
	assert.Equal(t, models.RoomStatusMaintenance, stored.Status)
}

func TestGetAllStudentsPaginates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStudentService(db, nil)

	for i := 0; i < 15; i++ {
		require.NoError(t, svc.CreateStudent(&models.Student{Name: "Student", IsActive: true}))
	}

	students, total, err := svc.GetAllStudents(2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
	assert.Len(t, students, 5)
}
