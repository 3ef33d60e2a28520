package services

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

var (
	// ErrPaymentNotFound is returned when the referenced payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrInvalidBillingMonth is returned when the month is not YYYY-MM.
	ErrInvalidBillingMonth = errors.New("billing month must be in YYYY-MM format")
)

var billingMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetPayments(studentID *uint) ([]models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	CreatePayment(payment *models.Payment) error
	UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error)
}

// PaymentService provides payment-related services
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService creates a new payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetPayments returns payments newest first, optionally for one student
func (s *PaymentService) GetPayments(studentID *uint) ([]models.Payment, error) {
	var payments []models.Payment
	query := s.DB.Order("created_at DESC")
	if studentID != nil {
		query = query.Where("student_id = ?", *studentID)
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// 2. GetPaymentByID returns a payment by ID
func (s *PaymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// 3. CreatePayment records a payment against an existing student
func (s *PaymentService) CreatePayment(payment *models.Payment) error {
	if !billingMonthPattern.MatchString(payment.Month) {
		return ErrInvalidBillingMonth
	}

	var student models.Student
	if err := s.DB.First(&student, payment.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if payment.Status == models.PaymentStatusPaid && payment.PaidDate == nil {
		now := time.Now()
		payment.PaidDate = &now
	}

	return s.DB.Create(payment).Error
}

// 4. UpdatePayment applies a partial update; marking a payment paid stamps
// the paid date when the caller did not supply one
func (s *PaymentService) UpdatePayment(id uint, updates map[string]interface{}) (*models.Payment, error) {
	payment, err := s.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	if month, ok := updates["month"].(string); ok && !billingMonthPattern.MatchString(month) {
		return nil, ErrInvalidBillingMonth
	}

	if status, ok := updates["status"].(string); ok {
		if models.PaymentStatus(status) == models.PaymentStatusPaid && payment.PaidDate == nil {
			if _, has := updates["paid_date"]; !has {
				updates["paid_date"] = time.Now()
			}
		}
	}

	if err := s.DB.Model(payment).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPaymentByID(id)
}
