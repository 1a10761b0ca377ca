package validation_test

import (
	"errors"
	"testing"

	"github.com/sbilibin2017/gw-bookshelf/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Phone    *string `json:"phone_number,omitempty" validate:"omitempty,phone"`
}

type bookRequest struct {
	ISBN13    string `json:"isbn13" validate:"required,isbn13"`
	PageCount int    `json:"page_count" validate:"gt=0"`
	Rating    int    `json:"rating" validate:"gte=1,lte=10"`
}

func strPtr(s string) *string { return &s }

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Validate(signupRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
		Phone:    strPtr("+1 (555) 010-2030"),
	}))
	assert.NoError(t, v.Validate(signupRequest{Email: "reader@example.com", Password: "12345678"}))
	assert.NoError(t, v.Validate(bookRequest{ISBN13: "9780134190440", PageCount: 1, Rating: 10}))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       any
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing email",
			req:       signupRequest{Password: "password123"},
			wantField: "email",
			wantMsg:   "is required",
		},
		{
			name:      "invalid email",
			req:       signupRequest{Email: "not-an-email", Password: "password123"},
			wantField: "email",
			wantMsg:   "must be a valid email address",
		},
		{
			name:      "short password",
			req:       signupRequest{Email: "a@b.io", Password: "short"},
			wantField: "password",
			wantMsg:   "must be at least 8 characters",
		},
		{
			name:      "bad phone",
			req:       signupRequest{Email: "a@b.io", Password: "password123", Phone: strPtr("call me")},
			wantField: "phone_number",
			wantMsg:   "must be a valid phone number",
		},
		{
			name:      "isbn with letters",
			req:       bookRequest{ISBN13: "978013419044X", PageCount: 1, Rating: 5},
			wantField: "isbn13",
			wantMsg:   "must be exactly 13 digits",
		},
		{
			name:      "zero pages",
			req:       bookRequest{ISBN13: "9780134190440", PageCount: 0, Rating: 5},
			wantField: "page_count",
			wantMsg:   "must be greater than 0",
		},
		{
			name:      "rating above range",
			req:       bookRequest{ISBN13: "9780134190440", PageCount: 1, Rating: 11},
			wantField: "rating",
			wantMsg:   "must be less than or equal to 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, validation.ErrValidation))

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Fields[tt.wantField])
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidator_NonStruct(t *testing.T) {
	v := validation.New()

	err := v.Validate("just a string")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, validation.ErrValidation))
}
