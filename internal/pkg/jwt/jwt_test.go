package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gumutoni/tasktidy/internal/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("secret")
	token, err := jwt.GenerateToken("user-1", secret, time.Hour)
	require.NoError(t, err)

	claims, err := jwt.ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := jwt.GenerateToken("user-1", []byte("secret"), time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseToken(token, []byte("other"))
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("secret")
	token, err := jwt.GenerateToken("user-1", secret, -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ParseToken(token, secret)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := jwt.ParseToken("not-a-token", []byte("secret"))
	require.Error(t, err)
}
