package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gymfit_backend/internal/auth"
	"gymfit_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user row directly, hashing the raw password held in
// PasswordHash. Registration-level validation is bypassed on purpose.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()

	hashed, err := auth.HashPassword(user.PasswordHash)
	require.NoError(t, err)
	user.PasswordHash = hashed

	if user.PhoneNumber == "" {
		user.PhoneNumber = "0740123456"
	}
	if user.DateOfBirth.IsZero() {
		user.DateOfBirth = time.Date(1995, time.March, 12, 0, 0, 0, 0, time.UTC)
	}

	require.NoError(t, db.Create(user).Error)
	return user
}

// Login authenticates through the API and returns the bearer token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// LoginAdmin logs in as the seeded admin.
func LoginAdmin(t *testing.T, ts *TestServer) string {
	t.Helper()
	return Login(t, ts, AdminEmail, AdminPassword)
}

// CreateAndLoginUser creates a user directly and logs it in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	})
	return Login(t, ts, email, password), user
}
