package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/password"
	"github.com/sbilibin2017/gw-bookshelf/internal/repositories"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, services.NewMockUserWriter(ctrl))

	profile := &models.UserProfile{UserDB: models.UserDB{UserID: userID}, FavoriteBookTitle: strPtr("Dune")}
	reader.EXPECT().GetProfile(ctx, userID).Return(profile, nil)
	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", *got.FavoriteBookTitle)

	reader.EXPECT().GetProfile(ctx, userID).Return(nil, repositories.ErrNotFound)
	_, err = svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	currentHash := mustHash(t, "password123")

	tests := []struct {
		name    string
		params  services.ProfileParams
		setup   func(r *services.MockUserReader, w *services.MockUserWriter)
		wantErr error
	}{
		{
			name:   "profile only",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				w.EXPECT().Update(ctx, userID, models.ProfileUpdate{FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID}).
					Return(&models.UserDB{UserID: userID}, nil)
				r.EXPECT().GetProfile(ctx, userID).Return(&models.UserProfile{UserDB: models.UserDB{UserID: userID}}, nil)
			},
		},
		{
			name:   "password rotated",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace", NewPassword: strPtr("brand-new-secret")},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, PasswordHash: currentHash}, nil)
				w.EXPECT().UpdatePassword(ctx, userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, hash string) error {
						assert.NoError(t, password.Compare(hash, "brand-new-secret"))
						return nil
					})
				w.EXPECT().Update(ctx, userID, gomock.Any()).Return(&models.UserDB{UserID: userID}, nil)
				r.EXPECT().GetProfile(ctx, userID).Return(&models.UserProfile{UserDB: models.UserDB{UserID: userID}}, nil)
			},
		},
		{
			name:   "same password rejected",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace", NewPassword: strPtr("password123")},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, PasswordHash: currentHash}, nil)
			},
			wantErr: services.ErrPasswordUnchanged,
		},
		{
			name:   "new password too short",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace", NewPassword: strPtr("tiny")},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				r.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, PasswordHash: currentHash}, nil)
			},
			wantErr: password.ErrTooShort,
		},
		{
			name:   "unknown favorite book",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				w.EXPECT().Update(ctx, userID, gomock.Any()).Return(nil, &repositories.ConstraintError{
					Kind: repositories.ConstraintForeignKey, Constraint: "users_favorite_book_id_fkey",
				})
			},
			wantErr: services.ErrInvalidReference,
		},
		{
			name:   "user gone",
			params: services.ProfileParams{FirstName: "Ada", LastName: "Lovelace"},
			setup: func(r *services.MockUserReader, w *services.MockUserWriter) {
				w.EXPECT().Update(ctx, userID, gomock.Any()).Return(nil, repositories.ErrNotFound)
			},
			wantErr: services.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockUserReader(ctrl)
			writer := services.NewMockUserWriter(ctrl)
			tt.setup(reader, writer)

			svc := services.NewUserService(reader, writer)
			profile, err := svc.UpdateProfile(ctx, userID, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, profile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, profile.UserID)
		})
	}
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	writer := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(services.NewMockUserReader(ctrl), writer)

	writer.EXPECT().Delete(ctx, userID).Return(nil)
	assert.NoError(t, svc.DeleteAccount(ctx, userID))

	writer.EXPECT().Delete(ctx, userID).Return(repositories.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteAccount(ctx, userID), services.ErrUserNotFound)
}
