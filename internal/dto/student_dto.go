package dto

import (
	"time"

	"github.com/idealconvent/campus-api/internal/models"
)

// StudentRequest carries admission form data for create and update. The
// registration number is always allocated server side and never accepted
// from the client.
type StudentRequest struct {
	Name                string  `json:"name" validate:"required,min=2,max=255"`
	Email               string  `json:"email" validate:"omitempty,email,max=255"`
	EnrollmentDate      string  `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	Campus              string  `json:"campus" validate:"required,max=64"`
	AppliedForClass     string  `json:"applied_for_class" validate:"required,max=16"`
	Session             string  `json:"session" validate:"required,max=8"`
	FatherName          string  `json:"father_name" validate:"required,max=255"`
	FatherQualification string  `json:"father_qualification" validate:"omitempty,max=255"`
	FatherOccupation    string  `json:"father_occupation" validate:"omitempty,max=255"`
	MotherName          string  `json:"mother_name" validate:"omitempty,max=255"`
	MotherQualification string  `json:"mother_qualification" validate:"omitempty,max=255"`
	MotherOccupation    string  `json:"mother_occupation" validate:"omitempty,max=255"`
	Religion            string  `json:"religion" validate:"omitempty,max=64"`
	Nationality         string  `json:"nationality" validate:"omitempty,max=64"`
	Gender              string  `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth         string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PlaceOfBirth        string  `json:"place_of_birth" validate:"omitempty,max=255"`
	MobileNumber        string  `json:"mobile_number" validate:"required,max=32"`
	WhatsAppNumber      string  `json:"whatsapp_number" validate:"omitempty,max=32"`
	FullAddress         string  `json:"full_address" validate:"omitempty,max=512"`
	PhysicalDeformities string  `json:"physical_deformities" validate:"omitempty,max=255"`
	IsOrphan            bool    `json:"is_orphan"`
	FamilyMonthlyIncome float64 `json:"family_monthly_income" validate:"omitempty,gte=0"`
	PhotoURL            string  `json:"photo_url" validate:"omitempty,url,max=512"`
	BirthCertificateURL string  `json:"birth_certificate_url" validate:"omitempty,url,max=512"`
	AdmissionFees       float64 `json:"admission_fees" validate:"omitempty,gte=0"`
	ReadmissionFees     float64 `json:"readmission_fees" validate:"omitempty,gte=0"`
	MonthlyFees         float64 `json:"monthly_fees" validate:"omitempty,gte=0"`
	Concession          float64 `json:"concession" validate:"omitempty,gte=0"`
	CarFees             float64 `json:"car_fees" validate:"omitempty,gte=0"`
	PaymentMode         string  `json:"payment_mode" validate:"omitempty,oneof=Cash Online 'Bank Transfer' Cheque"`
}

// StudentResponse is the serialized representation of an admission record.
type StudentResponse struct {
	ID                  uint      `json:"id"`
	RegistrationNumber  string    `json:"registration_number"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	EnrollmentDate      string    `json:"enrollment_date,omitempty"`
	Campus              string    `json:"campus"`
	AppliedForClass     string    `json:"applied_for_class"`
	Session             string    `json:"session"`
	FatherName          string    `json:"father_name"`
	FatherQualification string    `json:"father_qualification,omitempty"`
	FatherOccupation    string    `json:"father_occupation,omitempty"`
	MotherName          string    `json:"mother_name,omitempty"`
	MotherQualification string    `json:"mother_qualification,omitempty"`
	MotherOccupation    string    `json:"mother_occupation,omitempty"`
	Religion            string    `json:"religion,omitempty"`
	Nationality         string    `json:"nationality"`
	Gender              string    `json:"gender"`
	DateOfBirth         string    `json:"date_of_birth"`
	PlaceOfBirth        string    `json:"place_of_birth,omitempty"`
	MobileNumber        string    `json:"mobile_number"`
	WhatsAppNumber      string    `json:"whatsapp_number,omitempty"`
	FullAddress         string    `json:"full_address,omitempty"`
	PhysicalDeformities string    `json:"physical_deformities,omitempty"`
	IsOrphan            bool      `json:"is_orphan"`
	FamilyMonthlyIncome float64   `json:"family_monthly_income"`
	PhotoURL            string    `json:"photo_url,omitempty"`
	BirthCertificateURL string    `json:"birth_certificate_url,omitempty"`
	AdmissionFees       float64   `json:"admission_fees"`
	ReadmissionFees     float64   `json:"readmission_fees"`
	MonthlyFees         float64   `json:"monthly_fees"`
	Concession          float64   `json:"concession"`
	CarFees             float64   `json:"car_fees"`
	PaymentMode         string    `json:"payment_mode"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(student models.Student) StudentResponse {
	return StudentResponse{
		ID:                  student.ID,
		RegistrationNumber:  student.RegistrationNumber,
		Name:                student.Name,
		Email:               student.Email,
		EnrollmentDate:      student.EnrollmentDate,
		Campus:              string(student.Campus),
		AppliedForClass:     student.AppliedForClass,
		Session:             student.Session,
		FatherName:          student.FatherName,
		FatherQualification: student.FatherQualification,
		FatherOccupation:    student.FatherOccupation,
		MotherName:          student.MotherName,
		MotherQualification: student.MotherQualification,
		MotherOccupation:    student.MotherOccupation,
		Religion:            student.Religion,
		Nationality:         student.Nationality,
		Gender:              student.Gender,
		DateOfBirth:         student.DateOfBirth,
		PlaceOfBirth:        student.PlaceOfBirth,
		MobileNumber:        student.MobileNumber,
		WhatsAppNumber:      student.WhatsAppNumber,
		FullAddress:         student.FullAddress,
		PhysicalDeformities: student.PhysicalDeformities,
		IsOrphan:            student.IsOrphan,
		FamilyMonthlyIncome: student.FamilyMonthlyIncome,
		PhotoURL:            student.PhotoURL,
		BirthCertificateURL: student.BirthCertificateURL,
		AdmissionFees:       student.AdmissionFees,
		ReadmissionFees:     student.ReadmissionFees,
		MonthlyFees:         student.MonthlyFees,
		Concession:          student.Concession,
		CarFees:             student.CarFees,
		PaymentMode:         student.PaymentMode,
		CreatedAt:           student.CreatedAt,
		UpdatedAt:           student.UpdatedAt,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, NewStudentResponse(student))
	}
	return out
}
