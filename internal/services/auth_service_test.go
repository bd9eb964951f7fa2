package services

import (
	"testing"

	"github.com/Karlyle101/tip-me-api/internal/database"
	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-length"

func setupAuthTestDB(t *testing.T) (*repository.UserRepository, *AuthService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	tokenService := NewTokenService(testSecret)
	authService := NewAuthService(userRepo, tokenService, 4)

	return userRepo, authService
}

func TestAuthService_Register(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	token, user, err := authService.Register("alice@example.com", "password123", "Alice", models.RoleBarista, "alice-cafe")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.RoleBarista, user.Role)
	assert.Equal(t, "alice-cafe", user.Handle)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, user, err := authService.Register("bob@example.com", "password123", "Bob", "", "bob_handle")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestAuthService_Register_AdminNotSelfSelectable(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("eve@example.com", "password123", "Eve", models.RoleAdmin, "eve-handle")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_Register_Validation(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("not-an-email", "password123", "X", "", "somehandle")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, _, err = authService.Register("x@example.com", "short", "X", "", "somehandle")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, _, err = authService.Register("x@example.com", "password123", "X", "", "ab")
	assert.ErrorIs(t, err, ErrInvalidHandle)

	_, _, err = authService.Register("x@example.com", "password123", "X", "", "has spaces!")
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("dup@example.com", "password123", "First", "", "first-handle")
	require.NoError(t, err)

	// Same email, every other field different, still a conflict.
	_, _, err = authService.Register("dup@example.com", "otherpassword", "Second", models.RoleBarista, "second-handle")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_DuplicateHandle(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("one@example.com", "password123", "One", "", "shared-handle")
	require.NoError(t, err)

	_, _, err = authService.Register("two@example.com", "password123", "Two", "", "shared-handle")
	assert.ErrorIs(t, err, ErrHandleTaken)
}

func TestAuthService_Login(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("carol@example.com", "password123", "Carol", "", "carol-handle")
	require.NoError(t, err)

	token, user, err := authService.Login("carol@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "carol@example.com", user.Email)
}

func TestAuthService_Login_SameErrorForUnknownAndMismatch(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, _, err := authService.Register("dave@example.com", "password123", "Dave", "", "dave-handle")
	require.NoError(t, err)

	_, _, badPassword := authService.Login("dave@example.com", "wrongpassword")
	_, _, unknownEmail := authService.Login("nobody@example.com", "password123")

	assert.ErrorIs(t, badPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestAuthService_UpdateUserRole(t *testing.T) {
	userRepo, authService := setupAuthTestDB(t)

	_, user, err := authService.Register("staff@example.com", "password123", "Staff", models.RoleBarista, "staff-handle")
	require.NoError(t, err)

	updated, err := authService.UpdateUserRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestAuthService_UpdateUserRole_Errors(t *testing.T) {
	_, authService := setupAuthTestDB(t)

	_, err := authService.UpdateUserRole(9999, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, user, err := authService.Register("u@example.com", "password123", "U", "", "u-handle")
	require.NoError(t, err)

	_, err = authService.UpdateUserRole(user.ID, models.Role("SUPERUSER"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}
