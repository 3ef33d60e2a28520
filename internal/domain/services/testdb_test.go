package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

// setupTestDB opens an in-memory sqlite database with the full schema.
// A single connection keeps every session on the same memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Floor{},
		&models.Room{},
		&models.Student{},
		&models.Payment{},
		&models.Expense{},
		&models.ActivityLog{},
		&models.Alert{},
	))

	return db
}

func createTestFloor(t *testing.T, db *gorm.DB, level int) *models.Floor {
	t.Helper()

	floor := &models.Floor{
		Level:      level,
		Name:       "Test Floor",
		TotalRooms: 20,
	}
	require.NoError(t, db.Create(floor).Error)
	return floor
}

func createTestRoom(t *testing.T, db *gorm.DB, floorID uint, number string, capacity int) *models.Room {
	t.Helper()

	room := &models.Room{
		Number:      number,
		FloorID:     floorID,
		Capacity:    capacity,
		Status:      models.RoomStatusVacant,
		MonthlyRent: 4500,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func fetchRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()

	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return &room
}
