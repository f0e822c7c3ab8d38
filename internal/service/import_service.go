package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/observability"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrNothingToImport indicates a commit request with zero valid rows.
var ErrNothingToImport = errors.New("nothing to import")

// ErrNotCSV indicates the uploaded file is not CSV text.
var ErrNotCSV = errors.New("uploaded file is not a CSV")

// ErrImportTooLarge indicates the upload exceeds the configured size limit.
var ErrImportTooLarge = errors.New("uploaded file is too large")

// requiredColumns is the header contract. Matching is exact after trimming.
var requiredColumns = []string{
	"name", "campus", "appliedForClass", "session",
	"fatherName", "mobileNumber", "dateOfBirth",
}

// optionalColumns are recognized but not required.
var optionalColumns = []string{
	"email", "enrollmentDate", "fatherQualification", "fatherOccupation",
	"motherName", "motherQualification", "motherOccupation", "religion",
	"nationality", "gender", "placeOfBirth", "whatsappNumber", "fullAddress",
	"physicalDeformities", "isOrphan", "familyMonthlyIncome", "admissionFees",
	"readmissionFees", "monthlyFees", "concession", "carFees", "paymentMode",
}

// ImportService turns uploaded CSV admission lists into student records.
// Preview is a pure dry run; Commit persists previously previewed (and
// possibly client-edited) rows in a single transaction.
type ImportService interface {
	Preview(ctx context.Context, file *multipart.FileHeader) (dto.ImportPreviewResponse, error)
	Commit(ctx context.Context, rows []dto.StudentRequest) (dto.ImportCommitResponse, error)
	Template() []byte
}

type importService struct {
	students  repository.StudentRepository
	allocator *RegistrationAllocator
	maxBytes  int64
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewImportService constructs the CSV import pipeline.
func NewImportService(students repository.StudentRepository, allocator *RegistrationAllocator, maxSizeMB int, logger zerolog.Logger) ImportService {
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	return &importService{
		students:  students,
		allocator: allocator,
		maxBytes:  int64(maxSizeMB) << 20,
		logger:    logger.With().Str("component", "import_service").Logger(),
		tracer:    otel.Tracer("github.com/idealconvent/campus-api/internal/service/import"),
		now:       time.Now,
	}
}

func (s *importService) Preview(ctx context.Context, file *multipart.FileHeader) (dto.ImportPreviewResponse, error) {
	_, span := s.tracer.Start(ctx, "import.preview")
	defer span.End()

	data, err := s.readUpload(file)
	if err != nil {
		return dto.ImportPreviewResponse{}, err
	}

	response, err := s.parse(data)
	if err != nil {
		return dto.ImportPreviewResponse{}, err
	}

	observability.ImportRows().WithLabelValues("valid").Add(float64(response.ValidRows))
	observability.ImportRows().WithLabelValues("invalid").Add(float64(response.ErrorRows))

	s.logger.Info().
		Int("total_rows", response.TotalRows).
		Int("valid_rows", response.ValidRows).
		Int("error_rows", response.ErrorRows).
		Msg("import preview completed")

	return response, nil
}

func (s *importService) Commit(ctx context.Context, rows []dto.StudentRequest) (dto.ImportCommitResponse, error) {
	ctx, span := s.tracer.Start(ctx, "import.commit")
	defer span.End()

	var response dto.ImportCommitResponse
	var accepted []dto.StudentRequest

	for i := range rows {
		row := rows[i]
		line := i + 1
		if errs := validateImportRow(&row, s.now()); len(errs) > 0 {
			response.SkippedCount++
			for _, message := range errs {
				response.RowErrors = append(response.RowErrors, dto.ImportRowError{Line: line, Message: message})
			}
			continue
		}
		accepted = append(accepted, row)
	}

	if len(accepted) == 0 {
		return dto.ImportCommitResponse{}, ErrNothingToImport
	}

	batch := s.allocator.NewBatch()
	students := make([]models.Student, 0, len(accepted))
	for _, row := range accepted {
		number, err := batch.Next(ctx, models.Campus(row.Campus))
		if err != nil {
			return dto.ImportCommitResponse{}, err
		}
		students = append(students, studentFromRequest(row, number))
	}

	if err := s.students.CreateBatch(ctx, students); err != nil {
		observability.ImportRows().WithLabelValues("failed").Add(float64(len(students)))
		return dto.ImportCommitResponse{}, err
	}

	observability.ImportRows().WithLabelValues("imported").Add(float64(len(students)))
	observability.ImportRows().WithLabelValues("skipped").Add(float64(response.SkippedCount))

	response.ImportedCount = len(students)
	response.Students = dto.NewStudentResponseSlice(students)
	for _, student := range students {
		response.RegistrationNumbers = append(response.RegistrationNumbers, student.RegistrationNumber)
	}

	s.logger.Info().
		Int("imported", response.ImportedCount).
		Int("skipped", response.SkippedCount).
		Msg("import committed")

	return response, nil
}

// Template returns a CSV file with the full header and one sample row.
func (s *importService) Template() []byte {
	header := append(append([]string{}, requiredColumns...), optionalColumns...)
	sample := map[string]string{
		"name":            "Aarav Sharma",
		"campus":          string(models.CampusBrindabanpur),
		"appliedForClass": "Nursery",
		"session":         "2024",
		"fatherName":      "Rohit Sharma",
		"mobileNumber":    "9000000000",
		"dateOfBirth":     "2019-04-12",
	}
	row := make([]string, len(header))
	for i, column := range header {
		row[i] = sample[column]
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(header)
	_ = w.Write(row)
	w.Flush()
	return []byte(b.String())
}

func (s *importService) readUpload(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > s.maxBytes {
		return nil, ErrImportTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrImportTooLarge
	}

	// CSV text usually sniffs as text/plain; anything binary is rejected.
	kind := mimetype.Detect(data)
	if !kind.Is("text/csv") && !kind.Is("text/plain") {
		return nil, fmt.Errorf("%w: detected %s", ErrNotCSV, kind.String())
	}

	return data, nil
}

func (s *importService) parse(data []byte) (dto.ImportPreviewResponse, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var response dto.ImportPreviewResponse

	header, err := reader.Read()
	if err != nil {
		response.FileErrors = append(response.FileErrors, "file is empty or has no header row")
		return response, nil
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			response.FileErrors = append(response.FileErrors, fmt.Sprintf("missing required column: %s", required))
		}
	}
	if len(response.FileErrors) > 0 {
		return response, nil
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			response.TotalRows++
			response.ErrorRows++
			response.RowErrors = append(response.RowErrors, dto.ImportRowError{Line: line, Message: err.Error()})
			continue
		}

		row, errs := rowFromRecord(record, columns, s.now())
		preview := dto.ImportRowPreview{Line: line, Valid: len(errs) == 0, Errors: errs, Student: row}
		response.TotalRows++
		if preview.Valid {
			response.ValidRows++
		} else {
			response.ErrorRows++
			for _, message := range errs {
				response.RowErrors = append(response.RowErrors, dto.ImportRowError{Line: line, Message: message})
			}
		}
		response.Rows = append(response.Rows, preview)
	}

	return response, nil
}

// rowFromRecord maps one CSV record onto an admission request, applying the
// documented defaults and collecting validation errors in column order.
func rowFromRecord(record []string, columns map[string]int, now time.Time) (dto.StudentRequest, []string) {
	field := func(name string) string {
		index, ok := columns[name]
		if !ok || index >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[index])
	}

	var errs []string
	number := func(name string) float64 {
		raw := field(name)
		if raw == "" {
			return 0
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be a number.", name))
			return 0
		}
		return value
	}

	row := dto.StudentRequest{
		Name:                field("name"),
		Email:               field("email"),
		EnrollmentDate:      field("enrollmentDate"),
		Campus:              field("campus"),
		AppliedForClass:     field("appliedForClass"),
		Session:             field("session"),
		FatherName:          field("fatherName"),
		FatherQualification: field("fatherQualification"),
		FatherOccupation:    field("fatherOccupation"),
		MotherName:          field("motherName"),
		MotherQualification: field("motherQualification"),
		MotherOccupation:    field("motherOccupation"),
		Religion:            field("religion"),
		Nationality:         field("nationality"),
		Gender:              field("gender"),
		DateOfBirth:         field("dateOfBirth"),
		PlaceOfBirth:        field("placeOfBirth"),
		MobileNumber:        field("mobileNumber"),
		WhatsAppNumber:      field("whatsappNumber"),
		FullAddress:         field("fullAddress"),
		PhysicalDeformities: field("physicalDeformities"),
		IsOrphan:            truthy(field("isOrphan")),
		FamilyMonthlyIncome: number("familyMonthlyIncome"),
		AdmissionFees:       number("admissionFees"),
		ReadmissionFees:     number("readmissionFees"),
		MonthlyFees:         number("monthlyFees"),
		Concession:          number("concession"),
		CarFees:             number("carFees"),
		PaymentMode:         field("paymentMode"),
	}

	errs = append(errs, validateImportRow(&row, now)...)
	return row, errs
}

// validateImportRow applies defaults in place, then checks the row in stable
// column order. Errors are row-local; one bad row never affects another.
func validateImportRow(row *dto.StudentRequest, now time.Time) []string {
	if row.Campus == "" {
		row.Campus = string(models.CampusBrindabanpur)
	}
	if row.AppliedForClass == "" {
		row.AppliedForClass = "Nursery"
	}
	if row.Session == "" {
		row.Session = "2024"
	}
	if row.Nationality == "" {
		row.Nationality = "Indian"
	}
	if row.Gender == "" {
		row.Gender = "Male"
	}
	if row.PaymentMode == "" {
		row.PaymentMode = "Cash"
	}
	if row.PhysicalDeformities == "" {
		row.PhysicalDeformities = "None"
	}
	if row.EnrollmentDate == "" {
		row.EnrollmentDate = now.Format("2006-01-02")
	}

	var errs []string
	if row.Name == "" {
		errs = append(errs, "name is required.")
	}
	if !models.Campus(row.Campus).Valid() {
		errs = append(errs, fmt.Sprintf("Invalid campus: %s", row.Campus))
	}
	if !models.ValidEnum(row.AppliedForClass, models.ClassLevels) {
		errs = append(errs, fmt.Sprintf("Invalid appliedForClass: %s", row.AppliedForClass))
	}
	if !models.ValidEnum(row.Session, models.Sessions) {
		errs = append(errs, fmt.Sprintf("Invalid session: %s", row.Session))
	}
	if row.FatherName == "" {
		errs = append(errs, "fatherName is required.")
	}
	if row.MobileNumber == "" {
		errs = append(errs, "mobileNumber is required.")
	}
	if row.DateOfBirth == "" {
		errs = append(errs, "dateOfBirth is required.")
	} else if _, err := time.Parse("2006-01-02", row.DateOfBirth); err != nil {
		errs = append(errs, fmt.Sprintf("Invalid dateOfBirth: %s", row.DateOfBirth))
	}
	if !models.ValidEnum(row.Gender, models.Genders) {
		errs = append(errs, fmt.Sprintf("Invalid gender: %s", row.Gender))
	}
	if !models.ValidEnum(row.PaymentMode, models.PaymentModes) {
		errs = append(errs, fmt.Sprintf("Invalid paymentMode: %s", row.PaymentMode))
	}
	return errs
}

// truthy recognizes the accepted orphan-flag spellings.
func truthy(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "1":
		return true
	}
	return false
}

// studentFromRequest builds the admission record with the allocated
// registration number.
func studentFromRequest(row dto.StudentRequest, registrationNumber string) models.Student {
	return models.Student{
		RegistrationNumber:  registrationNumber,
		Name:                row.Name,
		Email:               row.Email,
		EnrollmentDate:      row.EnrollmentDate,
		Campus:              models.Campus(row.Campus),
		AppliedForClass:     row.AppliedForClass,
		Session:             row.Session,
		FatherName:          row.FatherName,
		FatherQualification: row.FatherQualification,
		FatherOccupation:    row.FatherOccupation,
		MotherName:          row.MotherName,
		MotherQualification: row.MotherQualification,
		MotherOccupation:    row.MotherOccupation,
		Religion:            row.Religion,
		Nationality:         row.Nationality,
		Gender:              row.Gender,
		DateOfBirth:         row.DateOfBirth,
		PlaceOfBirth:        row.PlaceOfBirth,
		MobileNumber:        row.MobileNumber,
		WhatsAppNumber:      row.WhatsAppNumber,
		FullAddress:         row.FullAddress,
		PhysicalDeformities: row.PhysicalDeformities,
		IsOrphan:            row.IsOrphan,
		FamilyMonthlyIncome: row.FamilyMonthlyIncome,
		PhotoURL:            row.PhotoURL,
		BirthCertificateURL: row.BirthCertificateURL,
		AdmissionFees:       row.AdmissionFees,
		ReadmissionFees:     row.ReadmissionFees,
		MonthlyFees:         row.MonthlyFees,
		Concession:          row.Concession,
		CarFees:             row.CarFees,
		PaymentMode:         row.PaymentMode,
	}
}
