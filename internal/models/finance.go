package models

import "time"

// FeePayment records a fee collection against a student. StudentName and
// RegistrationNumber are denormalized from the student at creation time.
type FeePayment struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	StudentID          uint      `gorm:"index;not null" json:"student_id"`
	StudentName        string    `gorm:"size:255" json:"student_name"`
	RegistrationNumber string    `gorm:"size:16" json:"registration_number"`
	Campus             Campus    `gorm:"size:64;index;not null" json:"campus"`
	Amount             float64   `json:"amount"`
	PaymentDate        string    `gorm:"size:10;index" json:"payment_date"`
	PaymentForMonth    string    `gorm:"size:32" json:"payment_for_month"`
	PaymentMode        string    `gorm:"size:32" json:"payment_mode"`
	CollectedByID      uint      `gorm:"index" json:"collected_by_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Expense records money spent by a campus.
type Expense struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Category     string    `gorm:"size:32;not null" json:"category"`
	Description  string    `gorm:"size:512" json:"description"`
	Amount       float64   `json:"amount"`
	ExpenseDate  string    `gorm:"size:10;index" json:"expense_date"`
	Campus       Campus    `gorm:"size:64;index;not null" json:"campus"`
	RecordedByID uint      `gorm:"index" json:"recorded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
