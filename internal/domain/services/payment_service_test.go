package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
)

func TestCreatePaymentValidatesMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(student))

	for _, month := range []string{"2024-13", "2024-00", "June 2024", "2024", "24-06"} {
		err := svc.CreatePayment(&models.Payment{
			StudentID: student.ID,
			Amount:    4500,
			DueDate:   time.Now(),
			Month:     month,
		})
		assert.ErrorIs(t, err, ErrInvalidBillingMonth, "month %q", month)
	}
}

func TestCreatePaymentUnknownStudent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)

	err := svc.CreatePayment(&models.Payment{
		StudentID: 999,
		Amount:    4500,
		DueDate:   time.Now(),
		Month:     "2024-06",
	})
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestCreatePaymentDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(student))

	payment := &models.Payment{
		StudentID: student.ID,
		Amount:    4500,
		DueDate:   time.Now(),
		Month:     "2024-06",
	}
	require.NoError(t, svc.CreatePayment(payment))

	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Nil(t, payment.PaidDate)
}

func TestCreatePaymentPaidStampsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(student))

	payment := &models.Payment{
		StudentID: student.ID,
		Amount:    4500,
		DueDate:   time.Now(),
		Status:    models.PaymentStatusPaid,
		Month:     "2024-06",
	}
	require.NoError(t, svc.CreatePayment(payment))

	require.NotNil(t, payment.PaidDate)
	assert.WithinDuration(t, time.Now(), *payment.PaidDate, time.Minute)
}

func TestUpdatePaymentMarkPaidStampsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(student))

	payment := &models.Payment{
		StudentID: student.ID,
		Amount:    4500,
		DueDate:   time.Now(),
		Month:     "2024-06",
	}
	require.NoError(t, svc.CreatePayment(payment))

	updated, err := svc.UpdatePayment(payment.ID, map[string]interface{}{"status": "paid"})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidDate)
}

func TestUpdatePaymentValidatesMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	student := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(student))

	payment := &models.Payment{
		StudentID: student.ID,
		Amount:    4500,
		DueDate:   time.Now(),
		Month:     "2024-06",
	}
	require.NoError(t, svc.CreatePayment(payment))

	_, err := svc.UpdatePayment(payment.ID, map[string]interface{}{"month": "2024-15"})
	assert.ErrorIs(t, err, ErrInvalidBillingMonth)
}

func TestUpdatePaymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)

	_, err := svc.UpdatePayment(999, map[string]interface{}{"status": "paid"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestGetPaymentsFilterByStudent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, nil)
	studentSvc := NewStudentService(db, nil)

	first := &models.Student{Name: "Rahim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(first))
	second := &models.Student{Name: "Karim", IsActive: true}
	require.NoError(t, studentSvc.CreateStudent(second))

	require.NoError(t, svc.CreatePayment(&models.Payment{StudentID: first.ID, Amount: 4500, DueDate: time.Now(), Month: "2024-06"}))
	require.NoError(t, svc.CreatePayment(&models.Payment{StudentID: first.ID, Amount: 4500, DueDate: time.Now(), Month: "2024-07"}))
	require.NoError(t, svc.CreatePayment(&models.Payment{StudentID: second.ID, Amount: 4500, DueDate: time.Now(), Month: "2024-06"}))

	payments, err := svc.GetPayments(&first.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	all, err := svc.GetPayments(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
