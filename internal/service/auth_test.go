package service

import (
	"fmt"
	"testing"

	"wordrace/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		input    string
		expected bool
	}{
		{
			name:     "correct password",
			password: "secret123",
			input:    "secret123",
			expected: true,
		},
		{
			name:     "wrong password",
			password: "secret123",
			input:    "wrong",
			expected: false,
		},
		{
			name:     "empty input",
			password: "secret123",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			service := NewAuthService(mockRepo, tt.password)

			assert.Equal(t, tt.expected, service.CheckPassword(tt.input))
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    bool
		mockError     error
		expected      bool
		expectedError bool
	}{
		{
			name:       "authorized user",
			userID:     123,
			mockReturn: true,
			expected:   true,
		},
		{
			name:       "unauthorized user",
			userID:     456,
			mockReturn: false,
			expected:   false,
		},
		{
			name:          "database error",
			userID:        789,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("IsAuthorized", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAuthService(mockRepo, "password")
			authorized, err := service.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, authorized)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthorizeUser(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("AuthorizeUser", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password")

	assert.NoError(t, service.AuthorizeUser(123))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_EnsureUserExists(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureUserExists", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, "password")

	assert.NoError(t, service.EnsureUserExists(123))
	mockRepo.AssertExpectations(t)
}
