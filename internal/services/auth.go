package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/password"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, params models.UserCreate) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, params models.ProfileUpdate) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// RegisterParams is the sign-up form. Password is plaintext and never stored.
type RegisterParams struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Bio           *string
	PhoneNumber   *string
	FavoriteColor *string
}

// AuthService handles registration, credential verification and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new account. A concurrent registration with the same
// email that slips past the lookup is caught by users_email_key.
func (svc *AuthService) Register(ctx context.Context, params RegisterParams) (*models.UserDB, error) {
	_, err := svc.reader.GetByEmail(ctx, params.Email)
	switch {
	case err == nil:
		logger.Log.Errorw("user already exists", "email", params.Email)
		return nil, ErrDuplicateEmail
	case !errors.Is(err, repositories.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "email", params.Email, "err", err)
		return nil, err
	}

	hash, err := password.Hash(params.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "email", params.Email, "err", err)
		return nil, err
	}

	user, err := svc.writer.Create(ctx, models.UserCreate{
		Email:         params.Email,
		PasswordHash:  hash,
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Bio:           params.Bio,
		PhoneNumber:   params.PhoneNumber,
		FavoriteColor: params.FavoriteColor,
	})
	if err != nil {
		if repositories.IsConstraint(err, "users_email_key") {
			logger.Log.Errorw("user already exists", "email", params.Email)
			return nil, ErrDuplicateEmail
		}
		logger.Log.Errorw("failed to save user", "email", params.Email, "err", err)
		return nil, err
	}

	return user, nil
}

// Verify checks an email/password pair and returns the matching user.
func (svc *AuthService) Verify(ctx context.Context, email, plaintext string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("user does not exist", "email", email)
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}

	if err := password.Compare(user.PasswordHash, plaintext); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			logger.Log.Errorw("invalid credentials", "email", email)
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to compare password", "email", email, "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := svc.Verify(ctx, email, plaintext)
	if err != nil {
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", user.UserID, "err", err)
		return "", err
	}

	return token, nil
}
