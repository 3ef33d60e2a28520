package models

import "time"

// PaymentStatus tracks the collection state of a rent payment.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment represents a rent payment attributed to a billing month.
type Payment struct {
	BaseModel
	StudentID   uint          `gorm:"not null" json:"student_id"`
	Amount      float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	DueDate     time.Time     `gorm:"not null" json:"due_date"`
	PaidDate    *time.Time    `json:"paid_date"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Month       string        `gorm:"type:varchar(7);not null" json:"month"` // Billing month in YYYY-MM format
	Description string        `gorm:"type:text" json:"description"`

	// Relations
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
