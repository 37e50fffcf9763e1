package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Str0ngPass!")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass!", hash)

	assert.NoError(t, CompareHashAndPassword(hash, "Str0ngPass!"))
	assert.Error(t, CompareHashAndPassword(hash, "wrong-password"))
}

func TestCreateAndVerifyJwtToken(t *testing.T) {
	key := []byte("test-signing-key")
	token, err := CreateJwtToken(42, "jane@example.com", "Jane", "Doe", key, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, key)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
}

func TestVerifyTokenWrongKey(t *testing.T) {
	token, err := CreateJwtToken(1, "jane@example.com", "Jane", "Doe", []byte("key-one"), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("key-two"))
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	key := []byte("test-signing-key")
	token, err := CreateJwtToken(1, "jane@example.com", "Jane", "Doe", key, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = VerifyToken(token, key)
	assert.Error(t, err)
}

func TestGetUserIdFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, uint(0), GetUserIdFromContext(ctx))

	ctx.Set("user_id", uint(7))
	assert.Equal(t, uint(7), GetUserIdFromContext(ctx))

	ctx.Set("user_id", "not-a-uint")
	assert.Equal(t, uint(0), GetUserIdFromContext(ctx))
}

func TestGenerateSecretKey(t *testing.T) {
	first := GenerateSecretKey()
	second := GenerateSecretKey()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
