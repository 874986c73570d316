package jwt

import (
	"testing"
	"time"

	"go-hospital-booking/config"
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "doc@example.com", claims.Email)
	require.Equal(t, entity.RoleDoctor, claims.Role)
	require.Equal(t, AccessToken, claims.TokenType)
	require.Equal(t, tokenID, claims.TokenID)

	id := claims.Identity()
	require.Equal(t, userID, id.ID)
	require.Equal(t, entity.RoleDoctor, id.Role)
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "pat@example.com", entity.RolePatient)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testService("test-secret")
	other := testService("other-secret")

	token, _, err := svc.GenerateAccessToken(uuid.New(), "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testService("test-secret")

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(userID, "doc@example.com", entity.RoleDoctor)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
