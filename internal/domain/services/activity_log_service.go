package services

import (
	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

// InterfaceActivityLogService defines the activity log service interface
type InterfaceActivityLogService interface {
	GetRecentLogs(limit int) ([]models.ActivityLog, error)
	CreateLog(entry *models.ActivityLog) error
}

// ActivityLogService provides the dashboard activity feed
type ActivityLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewActivityLogService creates a new activity log service
func NewActivityLogService(db *gorm.DB, cfg *config.Config) InterfaceActivityLogService {
	return &ActivityLogService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetRecentLogs returns the most recent activity entries
func (s *ActivityLogService) GetRecentLogs(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var logs []models.ActivityLog
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// 2. CreateLog appends an entry to the activity feed
func (s *ActivityLogService) CreateLog(entry *models.ActivityLog) error {
	return s.DB.Create(entry).Error
}
