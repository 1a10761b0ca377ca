package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	svc := NewMockProfileGetter(ctrl)
	handler := NewGetProfileHandler(svc)

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().GetProfile(gomock.Any(), userID).Return(&models.UserProfile{
			UserDB:            models.UserDB{UserID: userID, Email: "ada@example.com", PasswordHash: "$2a$10$secret"},
			FavoriteBookTitle: strPtr("Dune"),
		}, nil)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/profile", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Dune", resp["favorite_book_title"])
		assert.Equal(t, "ada@example.com", resp["email"])
	})

	t.Run("no principal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/profile", nil, uuid.Nil, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("account gone", func(t *testing.T) {
		svc.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

		rr := httptest.NewRecorder()
		handler(rr, newRequest(t, http.MethodGet, "/profile", nil, userID, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	bookID := uuid.New()

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockProfileUpdater)
		expectedCode int
	}{
		{
			name: "ok with password rotation",
			body: ProfileUpdateRequest{FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID, NewPassword: strPtr("new-secret-1")},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, services.ProfileParams{
					FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID, NewPassword: strPtr("new-secret-1"),
				}).Return(&models.UserProfile{UserDB: models.UserDB{UserID: userID}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unchanged password",
			body: ProfileUpdateRequest{FirstName: "Ada", LastName: "Lovelace", NewPassword: strPtr("same-secret")},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, services.ErrPasswordUnchanged)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown favorite book",
			body: ProfileUpdateRequest{FirstName: "Ada", LastName: "Lovelace", FavoriteBookID: &bookID},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, services.ErrInvalidReference)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "favorite color longer than column",
			body:         ProfileUpdateRequest{FirstName: "Ada", LastName: "Lovelace", FavoriteColor: strPtr(strings.Repeat("b", 31))},
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "favorite color at column width",
			body:         ProfileUpdateRequest{FirstName: "Ada", LastName: "Lovelace", FavoriteColor: strPtr(strings.Repeat("b", 30))},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(&models.UserProfile{UserDB: models.UserDB{UserID: userID}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing names",
			body:         ProfileUpdateRequest{},
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown field",
			body:         `{"first_name":"Ada","last_name":"L","password_hash":"x"}`,
			mockSetup:    func(m *MockProfileUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockProfileUpdater(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewUpdateProfileHandler(svc)(rr, newRequest(t, http.MethodPut, "/profile", tt.body, userID, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDeleteProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	svc := NewMockAccountDeleter(ctrl)
	handler := NewDeleteProfileHandler(svc)

	svc.EXPECT().DeleteAccount(gomock.Any(), userID).Return(nil)
	rr := httptest.NewRecorder()
	handler(rr, newRequest(t, http.MethodDelete, "/profile", nil, userID, nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	svc.EXPECT().DeleteAccount(gomock.Any(), userID).Return(services.ErrUserNotFound)
	rr = httptest.NewRecorder()
	handler(rr, newRequest(t, http.MethodDelete, "/profile", nil, userID, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
