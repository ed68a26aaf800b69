package auth

import (
	"testing"

	"madcrew-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundtrip(t *testing.T) {
	secret := "test-geheim-van-minimaal-32-tekens!!"
	user := &models.User{Email: "admin@mad.crew", Role: models.RoleAdmin}
	user.ID = 7

	tokenStr, err := GenerateToken(secret, user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*JWTCustomClaims)
	require.True(t, ok)
	require.Equal(t, uint(7), claims.UserID)
	require.Equal(t, "admin@mad.crew", claims.Email)
	require.Equal(t, models.RoleAdmin, claims.Role)
}

func TestGenerateTokenVerkeerdGeheim(t *testing.T) {
	user := &models.User{Email: "admin@mad.crew", Role: models.RoleAdmin}

	tokenStr, err := GenerateToken("geheim-een-geheim-een-geheim-een", user)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("ander-geheim-ander-geheim-ander!"), nil
	})
	require.Error(t, err)
}
