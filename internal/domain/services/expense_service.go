package services

import (
	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

// InterfaceExpenseService defines the expense service interface
type InterfaceExpenseService interface {
	GetAllExpenses(page int, pageSize int) ([]models.Expense, int64, error)
	CreateExpense(expense *models.Expense) error
}

// ExpenseService provides expense-related services
type ExpenseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewExpenseService creates a new expense service
func NewExpenseService(db *gorm.DB, cfg *config.Config) InterfaceExpenseService {
	return &ExpenseService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetAllExpenses returns expenses newest first, with pagination
func (s *ExpenseService) GetAllExpenses(page int, pageSize int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := s.DB.Model(&models.Expense{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("date DESC").Limit(pageSize).Offset(offset).Find(&expenses).Error; err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// 2. CreateExpense records an operating cost entry
func (s *ExpenseService) CreateExpense(expense *models.Expense) error {
	return s.DB.Create(expense).Error
}
