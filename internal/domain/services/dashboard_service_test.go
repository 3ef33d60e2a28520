package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestGetDashboardStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db, nil, nil)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalStudents)
	assert.Equal(t, int64(0), stats.TotalRooms)
	assert.Equal(t, int64(0), stats.AvailableBeds)
	assert.Equal(t, 0.0, stats.MonthlyRevenue)
	assert.Equal(t, 0.0, stats.OccupancyRate)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db, nil, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	roomA := createTestRoom(t, db, floor.ID, "101", 2)
	createTestRoom(t, db, floor.ID, "102", 4)

	first := &models.Student{Name: "Rahim", RoomID: &roomA.ID, IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(first))
	second := &models.Student{Name: "Karim", RoomID: &roomA.ID, IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(second))

	currentMonth := time.Now().Format("2006-01")
	payments := []models.Payment{
		{StudentID: first.ID, Amount: 4500, DueDate: time.Now(), Status: models.PaymentStatusPaid, Month: currentMonth},
		{StudentID: second.ID, Amount: 3500, DueDate: time.Now(), Status: models.PaymentStatusPaid, Month: currentMonth},
		{StudentID: first.ID, Amount: 1000, DueDate: time.Now(), Status: models.PaymentStatusPending, Month: currentMonth},
		{StudentID: first.ID, Amount: 9999, DueDate: time.Now(), Status: models.PaymentStatusPaid, Month: "2000-01"},
	}
	require.NoError(t, db.Create(&payments).Error)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalStudents)
	assert.Equal(t, int64(2), stats.TotalRooms)
	assert.Equal(t, int64(4), stats.AvailableBeds)
	// Only paid payments for the current month count
	assert.Equal(t, 8000.0, stats.MonthlyRevenue)
	// 2 occupied of 6 beds
	assert.Equal(t, 33.33, stats.OccupancyRate)
}

func TestGetDashboardStatsCountsActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db, nil, nil)
	studentSvc := NewStudentService(db, nil)

	active := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(active))
	former := &models.Student{Name: "Karim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(former))

	_, err := studentSvc.UpdateStudent(former.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalStudents)
}

func TestGetDashboardStatsFullHouse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db, nil, nil)
	studentSvc := NewStudentService(db, nil)
	floor := createTestFloor(t, db, 1)
	room := createTestRoom(t, db, floor.ID, "101", 1)

	require.NoError(t, studentSvc.CreateStudent(&models.Student{Name: "Rahim", RoomID: &room.ID, IsActive: true}))

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.AvailableBeds)
	assert.Equal(t, 100.0, stats.OccupancyRate)
}
