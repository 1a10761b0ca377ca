package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Email: "john@example.com", Password: "pass1234"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass1234").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name:      "wrong password",
			inputBody: LoginRequest{Email: "john@example.com", Password: "wrongpass"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid email or password"},
		},
		{
			name:      "unknown email looks the same",
			inputBody: LoginRequest{Email: "ghost@example.com", Password: "whatever1"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "whatever1").
					Return("", services.ErrUserNotFound)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Invalid email or password"},
		},
		{
			name:      "internal error",
			inputBody: LoginRequest{Email: "john@example.com", Password: "pass1234"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john@example.com", "pass1234").
					Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{bad json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			handler := NewLoginHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, tt.inputBody))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
