package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestCreateFloorDefaultsAndOrdering(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFloorService(db, nil)

	require.NoError(t, svc.CreateFloor(&models.Floor{Level: 3, Name: "Third Floor"}))
	require.NoError(t, svc.CreateFloor(&models.Floor{Level: 1, Name: "Ground Floor"}))

	floors, err := svc.GetAllFloors()
	require.NoError(t, err)
	require.Len(t, floors, 2)
	assert.Equal(t, 1, floors[0].Level)
	assert.Equal(t, 3, floors[1].Level)
	assert.Equal(t, 20, floors[0].TotalRooms) // default
}

func TestCreateFloorDuplicateLevel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFloorService(db, nil)

	require.NoError(t, svc.CreateFloor(&models.Floor{Level: 1, Name: "Ground Floor"}))

	err := svc.CreateFloor(&models.Floor{Level: 1, Name: "Another Ground Floor"})
	assert.ErrorIs(t, err, ErrDuplicateFloorLevel)
}

func TestGetFloorByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFloorService(db, nil)

	_, err := svc.GetFloorByID(999)
	assert.ErrorIs(t, err, ErrFloorNotFound)
}
