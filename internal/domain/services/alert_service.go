package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

// ErrAlertNotFound is returned when the referenced alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// InterfaceAlertService defines the alert service interface. Alerts are
// polled by the dashboard; there is no push channel.
type InterfaceAlertService interface {
	GetAlerts(unreadOnly bool) ([]models.Alert, error)
	CreateAlert(alert *models.Alert) error
	MarkAlertAsRead(id uint) (*models.Alert, error)
}

// AlertService provides alert-related services
type AlertService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAlertService creates a new alert service
func NewAlertService(db *gorm.DB, cfg *config.Config) InterfaceAlertService {
	return &AlertService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAlerts returns alerts newest first, optionally unread only
func (s *AlertService) GetAlerts(unreadOnly bool) ([]models.Alert, error) {
	var alerts []models.Alert
	query := s.DB.Order("created_at DESC")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// 2. CreateAlert creates a new alert
func (s *AlertService) CreateAlert(alert *models.Alert) error {
	if alert.Severity == "" {
		alert.Severity = "medium"
	}
	return s.DB.Create(alert).Error
}

// 3. MarkAlertAsRead dismisses an alert
func (s *AlertService) MarkAlertAsRead(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := s.DB.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&alert).Update("is_read", true).Error; err != nil {
		return nil, err
	}

	return &alert, nil
}
