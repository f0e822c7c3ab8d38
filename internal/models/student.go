package models

import "time"

// Student is an admission record. RegistrationNumber encodes campus, admission
// year and a per campus+year sequence and is unique across the whole table.
// Date fields are ISO "YYYY-MM-DD" strings, matching the admission forms.
type Student struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	RegistrationNumber  string    `gorm:"size:16;uniqueIndex;not null" json:"registration_number"`
	Name                string    `gorm:"size:255;not null" json:"name"`
	Email               string    `gorm:"size:255" json:"email"`
	EnrollmentDate      string    `gorm:"size:10" json:"enrollment_date"`
	Campus              Campus    `gorm:"size:64;index;not null" json:"campus"`
	AppliedForClass     string    `gorm:"size:16" json:"applied_for_class"`
	Session             string    `gorm:"size:8" json:"session"`
	FatherName          string    `gorm:"size:255" json:"father_name"`
	FatherQualification string    `gorm:"size:255" json:"father_qualification"`
	FatherOccupation    string    `gorm:"size:255" json:"father_occupation"`
	MotherName          string    `gorm:"size:255" json:"mother_name"`
	MotherQualification string    `gorm:"size:255" json:"mother_qualification"`
	MotherOccupation    string    `gorm:"size:255" json:"mother_occupation"`
	Religion            string    `gorm:"size:64" json:"religion"`
	Nationality         string    `gorm:"size:64" json:"nationality"`
	Gender              string    `gorm:"size:16" json:"gender"`
	DateOfBirth         string    `gorm:"size:10" json:"date_of_birth"`
	PlaceOfBirth        string    `gorm:"size:255" json:"place_of_birth"`
	MobileNumber        string    `gorm:"size:32" json:"mobile_number"`
	WhatsAppNumber      string    `gorm:"size:32" json:"whatsapp_number"`
	FullAddress         string    `gorm:"size:512" json:"full_address"`
	PhysicalDeformities string    `gorm:"size:255" json:"physical_deformities"`
	IsOrphan            bool      `gorm:"not null;default:false" json:"is_orphan"`
	FamilyMonthlyIncome float64   `json:"family_monthly_income"`
	PhotoURL            string    `gorm:"size:512" json:"photo_url,omitempty"`
	BirthCertificateURL string    `gorm:"size:512" json:"birth_certificate_url,omitempty"`
	AdmissionFees       float64   `json:"admission_fees"`
	ReadmissionFees     float64   `json:"readmission_fees"`
	MonthlyFees         float64   `json:"monthly_fees"`
	Concession          float64   `json:"concession"`
	CarFees             float64   `json:"car_fees"`
	PaymentMode         string    `gorm:"size:32" json:"payment_mode"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
