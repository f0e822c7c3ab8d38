package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// SeedService loads a small demo data set on an empty database so the
// console is usable immediately after first boot. Seeding is skipped when
// any account already exists.
type SeedService struct {
	users         repository.UserRepository
	teachers      repository.TeacherRepository
	students      repository.StudentRepository
	syllabi       repository.SyllabusRepository
	announcements repository.AnnouncementRepository
	finance       repository.FinanceRepository
	allocator     *RegistrationAllocator
	logger        zerolog.Logger
}

// NewSeedService constructs the seeder.
func NewSeedService(
	users repository.UserRepository,
	teachers repository.TeacherRepository,
	students repository.StudentRepository,
	syllabi repository.SyllabusRepository,
	announcements repository.AnnouncementRepository,
	finance repository.FinanceRepository,
	allocator *RegistrationAllocator,
	logger zerolog.Logger,
) *SeedService {
	return &SeedService{
		users:         users,
		teachers:      teachers,
		students:      students,
		syllabi:       syllabi,
		announcements: announcements,
		finance:       finance,
		allocator:     allocator,
		logger:        logger.With().Str("component", "seed_service").Logger(),
	}
}

// Seed populates demo records. Returns true when seeding ran.
func (s *SeedService) Seed(ctx context.Context) (bool, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	users := []models.User{
		{Name: "Anita Das", Email: "admin@idealconvent.example", Password: "admin123", Role: models.RoleAdmin, Campus: models.CampusBrindabanpur},
		{Name: "Sourav Paul", Email: "teacher@idealconvent.example", Password: "teacher123", Role: models.RoleTeacher, Campus: models.CampusBrindabanpur},
		{Name: "Mita Roy", Email: "accountant@idealconvent.example", Password: "accounts123", Role: models.RoleAccountant, Campus: models.CampusJagadishpur},
	}
	for i := range users {
		if err := s.users.Create(ctx, &users[i]); err != nil {
			return false, fmt.Errorf("seed users: %w", err)
		}
	}

	teachers := []models.Teacher{
		{Name: "Sourav Paul", Subject: "Mathematics", Email: "sourav.paul@idealconvent.example", Phone: "9000000001", Campus: models.CampusBrindabanpur, Salary: 22000, JoiningDate: "2021-04-01", Qualification: "B.Sc, B.Ed"},
		{Name: "Rina Ghosh", Subject: "English", Email: "rina.ghosh@idealconvent.example", Phone: "9000000002", Campus: models.CampusJagadishpur, Salary: 21000, JoiningDate: "2022-01-10", Qualification: "M.A"},
	}
	for i := range teachers {
		if err := s.teachers.Create(ctx, &teachers[i]); err != nil {
			return false, fmt.Errorf("seed teachers: %w", err)
		}
	}

	batch := s.allocator.NewBatch()
	seedStudents := []models.Student{
		{Name: "Aarav Sharma", Campus: models.CampusBrindabanpur, AppliedForClass: "Nursery", Session: "2024", FatherName: "Rohit Sharma", MobileNumber: "9000000000", DateOfBirth: "2019-04-12", Nationality: "Indian", Gender: "Male", PaymentMode: "Cash", PhysicalDeformities: "None", MonthlyFees: 800},
		{Name: "Diya Sen", Campus: models.CampusJagadishpur, AppliedForClass: "LKG", Session: "2024", FatherName: "Arun Sen", MobileNumber: "9111111111", DateOfBirth: "2020-01-30", Nationality: "Indian", Gender: "Female", PaymentMode: "Cash", PhysicalDeformities: "None", MonthlyFees: 850},
	}
	for i := range seedStudents {
		number, err := batch.Next(ctx, seedStudents[i].Campus)
		if err != nil {
			return false, fmt.Errorf("seed students: %w", err)
		}
		seedStudents[i].RegistrationNumber = number
	}
	if err := s.students.CreateBatch(ctx, seedStudents); err != nil {
		return false, fmt.Errorf("seed students: %w", err)
	}

	syllabus := models.Syllabus{
		Title:       "Numbers 1-10",
		Subject:     "Mathematics",
		Code:        "MATH-N-01",
		TeacherID:   teachers[0].ID,
		TeacherName: teachers[0].Name,
		Campus:      models.CampusBrindabanpur,
		Week:        "Week 1",
		ClassLevel:  "Nursery",
	}
	if err := s.syllabi.Create(ctx, &syllabus); err != nil {
		return false, fmt.Errorf("seed syllabus: %w", err)
	}

	announcement := models.Announcement{
		Title:   "Welcome to the new session",
		Content: "Classes for the 2024 session begin Monday.",
		Date:    "2024-04-01",
		Author:  users[0].Name,
		Campus:  models.CampusAll,
	}
	if err := s.announcements.Create(ctx, &announcement); err != nil {
		return false, fmt.Errorf("seed announcements: %w", err)
	}

	payment := models.FeePayment{
		StudentID:          seedStudents[0].ID,
		StudentName:        seedStudents[0].Name,
		RegistrationNumber: seedStudents[0].RegistrationNumber,
		Campus:             seedStudents[0].Campus,
		Amount:             800,
		PaymentDate:        "2024-04-05",
		PaymentForMonth:    "April",
		PaymentMode:        "Cash",
		CollectedByID:      users[2].ID,
	}
	if err := s.finance.CreateFeePayment(ctx, &payment); err != nil {
		return false, fmt.Errorf("seed fee payments: %w", err)
	}

	expense := models.Expense{
		Category:     "Supplies",
		Description:  "Chalk and notebooks",
		Amount:       1500,
		ExpenseDate:  "2024-04-03",
		Campus:       models.CampusBrindabanpur,
		RecordedByID: users[0].ID,
	}
	if err := s.finance.CreateExpense(ctx, &expense); err != nil {
		return false, fmt.Errorf("seed expenses: %w", err)
	}

	s.logger.Info().Msg("demo data seeded")
	return true, nil
}
