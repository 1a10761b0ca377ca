package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/password"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
)

var (
	ErrPasswordUnchanged = errors.New("new password must differ from the current one")
	ErrInvalidReference  = errors.New("referenced record does not exist")
)

// ProfileParams is the profile edit form. A nil NewPassword leaves the
// password as it is.
type ProfileParams struct {
	FirstName      string
	LastName       string
	Bio            *string
	PhoneNumber    *string
	FavoriteColor  *string
	FavoriteBookID *uuid.UUID
	NewPassword    *string
}

// UserService manages the caller's own account.
type UserService struct {
	reader UserReader
	writer UserWriter
}

func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{reader: reader, writer: writer}
}

// GetProfile returns the user with their favorite book title.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	profile, err := s.reader.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, err
	}
	return profile, nil
}

// UpdateProfile writes the editable fields and optionally rotates the password.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, params ProfileParams) (*models.UserProfile, error) {
	if params.NewPassword != nil {
		if err := s.changePassword(ctx, userID, *params.NewPassword); err != nil {
			return nil, err
		}
	}

	_, err := s.writer.Update(ctx, userID, models.ProfileUpdate{
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		Bio:            params.Bio,
		PhoneNumber:    params.PhoneNumber,
		FavoriteColor:  params.FavoriteColor,
		FavoriteBookID: params.FavoriteBookID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrUserNotFound
		case repositories.IsConstraint(err, "users_favorite_book_id_fkey"):
			logger.Log.Errorw("favorite book does not exist", "userID", userID, "bookID", params.FavoriteBookID)
			return nil, ErrInvalidReference
		}
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *UserService) changePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return err
	}

	if password.Compare(user.PasswordHash, newPassword) == nil {
		logger.Log.Errorw("password unchanged", "userID", userID)
		return ErrPasswordUnchanged
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "userID", userID, "err", err)
		return err
	}

	if err := s.writer.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to update password", "userID", userID, "err", err)
		return err
	}
	return nil
}

// DeleteAccount removes the user and, through the schema, their reviews.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	logger.Log.Infow("user deleted", "userID", userID)
	return nil
}
