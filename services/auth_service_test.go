package services_test

import (
	"testing"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/models"
	"github.com/Adam-Aviv/calorie-tracker-api/services"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	user, err := svc.Register("New@Example.com", "password123", "New User")
	require.NoError(t, err)

	// Email normalized, password hashed, goal defaults applied.
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, utils.CheckPasswordHash("password123", user.Password))
	assert.Equal(t, 2000.0, user.DailyCalorieGoal)
	assert.Equal(t, 150.0, user.ProteinGoal)
	assert.Equal(t, 250.0, user.CarbsGoal)
	assert.Equal(t, 65.0, user.FatsGoal)
	assert.Equal(t, "other", user.Gender)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register("dup@example.com", "password123", "First")
	require.NoError(t, err)

	_, err = svc.Register("DUP@example.com", "different1", "Second")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestAuthService_Authenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	_, err := svc.Register("login@example.com", "password123", "Login User")
	require.NoError(t, err)

	user, err := svc.Authenticate("login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", user.Email)

	// Wrong password and unknown email fail identically.
	_, err = svc.Authenticate("login@example.com", "wrongpass1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = svc.Authenticate("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ForgotPasswordUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	// Unknown accounts are not an error; the response must not leak existence.
	assert.NoError(t, svc.ForgotPassword("ghost@example.com"))
}

func TestAuthService_ResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	registered, err := svc.Register("reset@example.com", "oldpassword", "Reset User")
	require.NoError(t, err)

	// Plant a reset code directly; ForgotPassword's email delivery is not
	// under test here.
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", registered.ID).
		Updates(map[string]interface{}{
			"reset_token":     "abc123",
			"reset_token_exp": time.Now().Add(15 * time.Minute),
		}).Error)

	require.NoError(t, svc.ResetPassword("abc123", "newpassword"))

	_, err = svc.Authenticate("reset@example.com", "newpassword")
	assert.NoError(t, err)
	_, err = svc.Authenticate("reset@example.com", "oldpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Codes are single-use.
	assert.ErrorIs(t, svc.ResetPassword("abc123", "another1"), services.ErrInvalidResetToken)
}

func TestAuthService_ResetPasswordExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(db)

	registered, err := svc.Register("expired@example.com", "oldpassword", "Expired User")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", registered.ID).
		Updates(map[string]interface{}{
			"reset_token":     "stale1",
			"reset_token_exp": time.Now().Add(-1 * time.Minute),
		}).Error)

	assert.ErrorIs(t, svc.ResetPassword("stale1", "newpassword"), services.ErrInvalidResetToken)
}
