package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, nil)

	// The model hooks hash the password on create
	user := &models.User{Username: "admin", Password: "secret123", Role: "admin"}
	require.NoError(t, db.Create(user).Error)
	require.NotEqual(t, "secret123", user.Password)

	authed, err := svc.Authenticate("admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "hostel-management-service", claims.Issuer)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	svc := NewJWTService(&config.Config{JWTSecretKey: "test-secret"})
	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})

	token, err := other.GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token)
	assert.Error(t, err)
}
