package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

type userRepoStub struct {
	repository.UserRepository

	users []models.User
}

func (u *userRepoStub) FindByEmail(ctx context.Context, email string) (models.User, error) {
	for _, user := range u.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (u *userRepoStub) FindByID(ctx context.Context, id uint) (models.User, error) {
	for _, user := range u.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (u *userRepoStub) Create(ctx context.Context, user *models.User) error {
	user.ID = uint(len(u.users) + 1)
	u.users = append(u.users, *user)
	return nil
}

func (u *userRepoStub) Update(ctx context.Context, user *models.User) error {
	for i := range u.users {
		if u.users[i].ID == user.ID {
			u.users[i] = *user
		}
	}
	return nil
}

func newAuthService(repo *userRepoStub) AuthService {
	return NewAuthService(repo, validator.New(), "test-secret", time.Hour, zerolog.Nop())
}

func demoAdmin() models.User {
	return models.User{
		ID:       1,
		Name:     "Anita Das",
		Email:    "admin@idealconvent.example",
		Password: "admin123",
		Role:     models.RoleAdmin,
		Campus:   models.CampusBrindabanpur,
	}
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	repo := &userRepoStub{users: []models.User{demoAdmin()}}
	svc := newAuthService(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@idealconvent.example",
		Password: "admin123",
		Role:     "Admin",
		Campus:   "Brindabanpur",
	})
	require.NoError(t, err)
	require.Equal(t, "Anita Das", resp.User.Name)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, float64(1), claims["sub"])
	require.Equal(t, "Admin", claims["role"])
	require.Equal(t, "Brindabanpur", claims["campus"])
}

func TestLoginRejectsMismatchedRoleOrCampus(t *testing.T) {
	repo := &userRepoStub{users: []models.User{demoAdmin()}}
	svc := newAuthService(repo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@idealconvent.example",
		Password: "admin123",
		Role:     "Teacher",
		Campus:   "Brindabanpur",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@idealconvent.example",
		Password: "admin123",
		Role:     "Admin",
		Campus:   "Jagadishpur",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@idealconvent.example",
		Password: "wrong",
		Role:     "Admin",
		Campus:   "Brindabanpur",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := &userRepoStub{users: []models.User{demoAdmin()}}
	svc := newAuthService(repo)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Someone Else",
		Email:    "admin@idealconvent.example",
		Password: "pass1234",
		Role:     "Teacher",
		Campus:   "Brindabanpur",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestPasswordResetWithDemoToken(t *testing.T) {
	repo := &userRepoStub{users: []models.User{demoAdmin()}}
	svc := newAuthService(repo)

	issued, err := svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{
		Email: "admin@idealconvent.example",
	})
	require.NoError(t, err)
	require.Equal(t, "123456", issued.Token)

	err = svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "admin@idealconvent.example",
		Token:       "000000",
		NewPassword: "newpass",
	})
	require.ErrorIs(t, err, ErrInvalidResetToken)

	err = svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email:       "admin@idealconvent.example",
		Token:       issued.Token,
		NewPassword: "newpass",
	})
	require.NoError(t, err)
	require.Equal(t, "newpass", repo.users[0].Password)
}

func TestChangePasswordChecksCurrent(t *testing.T) {
	repo := &userRepoStub{users: []models.User{demoAdmin()}}
	svc := newAuthService(repo)

	err := svc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpass",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "admin123",
		NewPassword:     "newpass",
	})
	require.NoError(t, err)
	require.Equal(t, "newpass", repo.users[0].Password)
}
