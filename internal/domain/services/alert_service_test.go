package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestCreateAlertDefaultsSeverity(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAlertService(db, nil)

	alert := &models.Alert{Type: "payment_overdue", Title: "Overdue rent"}
	require.NoError(t, svc.CreateAlert(alert))
	assert.Equal(t, "medium", alert.Severity)
	assert.False(t, alert.IsRead)
}

func TestMarkAlertAsRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAlertService(db, nil)

	alert := &models.Alert{Type: "maintenance_required", Title: "Leaking tap", Severity: "low"}
	require.NoError(t, svc.CreateAlert(alert))

	read, err := svc.MarkAlertAsRead(alert.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := svc.GetAlerts(true)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := svc.GetAlerts(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMarkAlertAsReadNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAlertService(db, nil)

	_, err := svc.MarkAlertAsRead(999)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestGetRecentLogsCapsLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewActivityLogService(db, nil)

	for i := 0; i < 60; i++ {
		require.NoError(t, svc.CreateLog(&models.ActivityLog{
			Type:   models.ActivityStudentAdded,
			Title:  "Student Added",
			UserID: 1,
		}))
	}

	logs, err := svc.GetRecentLogs(0)
	require.NoError(t, err)
	assert.Len(t, logs, 50) // default limit

	logs, err = svc.GetRecentLogs(10)
	require.NoError(t, err)
	assert.Len(t, logs, 10)
}
