package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, params services.RegisterParams) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=254"`

	// Password, 8 to 72 bytes
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=8,max=72"`

	// required: true
	// default: John
	FirstName string `json:"first_name" validate:"required,max=100"`

	// required: true
	// default: Doe
	LastName string `json:"last_name" validate:"required,max=100"`

	Bio           *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	PhoneNumber   *string `json:"phone_number,omitempty" validate:"omitempty,phone"`
	FavoriteColor *string `json:"favorite_color,omitempty" validate:"omitempty,max=30"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterParams{
			Email:         req.Email,
			Password:      req.Password,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Bio:           req.Bio,
			PhoneNumber:   req.PhoneNumber,
			FavoriteColor: req.FavoriteColor,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  user.UserID,
		})
	}
}
