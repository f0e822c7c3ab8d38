package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/idealconvent/campus-api/internal/dto"
	"github.com/idealconvent/campus-api/internal/models"
	"github.com/idealconvent/campus-api/internal/repository"
)

// ErrInvalidCredentials indicates the email, password, role or campus did not
// match a stored account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken indicates a signup with an already registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidResetToken indicates a password reset with a wrong token.
var ErrInvalidResetToken = errors.New("invalid reset token")

// ErrUserNotFound indicates the account does not exist.
var ErrUserNotFound = errors.New("user not found")

// demoResetToken is the fixed token handed out by the password reset flow.
// There is no mail delivery in this deployment.
const demoResetToken = "123456"

// AuthService exposes login, signup and account self-service. Passwords are
// compared in plaintext; hardening authentication is out of scope here.
type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
	Signup(ctx context.Context, payload dto.SignupRequest) (dto.UserResponse, error)
	ForgotPassword(ctx context.Context, payload dto.ForgotPasswordRequest) (dto.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, payload dto.ResetPasswordRequest) error
	Profile(ctx context.Context, userID uint) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, payload dto.UpdateProfileRequest) (dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uint, payload dto.ChangePasswordRequest) error
}

type authService struct {
	users     repository.UserRepository
	validator *validator.Validate
	secret    []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs the auth service.
func NewAuthService(users repository.UserRepository, validate *validator.Validate, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &authService{
		users:     users,
		validator: validate,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	user, err := s.users.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	// role and campus are part of the credential triple, not a filter
	if user.Password != payload.Password ||
		user.Role != models.Role(payload.Role) ||
		user.Campus != models.Campus(payload.Campus) {
		s.logger.Warn().Str("email", payload.Email).Msg("login rejected")
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *authService) Signup(ctx context.Context, payload dto.SignupRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}
	if !models.Campus(payload.Campus).Valid() {
		return dto.UserResponse{}, fmt.Errorf("%w: %s", ErrUnknownCampus, payload.Campus)
	}

	if _, err := s.users.FindByEmail(ctx, payload.Email); err == nil {
		return dto.UserResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, err
	}

	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     models.Role(payload.Role),
		Campus:   models.Campus(payload.Campus),
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("account created")
	return dto.NewUserResponse(user), nil
}

func (s *authService) ForgotPassword(ctx context.Context, payload dto.ForgotPasswordRequest) (dto.ForgotPasswordResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ForgotPasswordResponse{}, err
	}

	if _, err := s.users.FindByEmail(ctx, payload.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ForgotPasswordResponse{}, ErrUserNotFound
		}
		return dto.ForgotPasswordResponse{}, err
	}

	return dto.ForgotPasswordResponse{Token: demoResetToken}, nil
}

func (s *authService) ResetPassword(ctx context.Context, payload dto.ResetPasswordRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}
	if payload.Token != demoResetToken {
		return ErrInvalidResetToken
	}

	user, err := s.users.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.Password = payload.NewPassword
	return s.users.Update(ctx, &user)
}

func (s *authService) Profile(ctx context.Context, userID uint) (dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uint, payload dto.UpdateProfileRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if payload.Name != "" {
		user.Name = payload.Name
	}
	if payload.AvatarURL != "" {
		user.AvatarURL = payload.AvatarURL
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, payload dto.ChangePasswordRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Password != payload.CurrentPassword {
		return ErrInvalidCredentials
	}

	user.Password = payload.NewPassword
	return s.users.Update(ctx, &user)
}

func (s *authService) issueToken(user models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":    float64(user.ID),
		"name":   user.Name,
		"role":   string(user.Role),
		"campus": string(user.Campus),
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
