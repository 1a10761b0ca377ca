package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

// ProfileGetter reads the caller's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// ProfileUpdater edits the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, params services.ProfileParams) (*models.UserProfile, error)
}

// AccountDeleter removes the caller's account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// ProfileUpdateRequest represents the JSON body for a profile edit
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// required: true
	FirstName string `json:"first_name" validate:"required,max=100"`
	// required: true
	LastName       string     `json:"last_name" validate:"required,max=100"`
	Bio            *string    `json:"bio,omitempty" validate:"omitempty,max=2000"`
	PhoneNumber    *string    `json:"phone_number,omitempty" validate:"omitempty,phone"`
	FavoriteColor  *string    `json:"favorite_color,omitempty" validate:"omitempty,max=30"`
	FavoriteBookID *uuid.UUID `json:"favorite_book_id,omitempty"`
	// Set to rotate the password; must differ from the current one
	NewPassword *string `json:"new_password,omitempty" validate:"omitempty,min=8,max=72"`
}

// NewGetProfileHandler returns the caller's profile.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /profile [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler edits the caller's profile and optionally rotates the password.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} handlers.ErrorResponse "Invalid fields, unknown favorite book or unchanged password"
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		var req ProfileUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), userID, services.ProfileParams{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Bio:            req.Bio,
			PhoneNumber:    req.PhoneNumber,
			FavoriteColor:  req.FavoriteColor,
			FavoriteBookID: req.FavoriteBookID,
			NewPassword:    req.NewPassword,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewDeleteProfileHandler deletes the caller's account and their reviews.
// @Summary Delete account
// @Tags profile
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /profile [delete]
func NewDeleteProfileHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := principal(w, r)
		if !ok {
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
