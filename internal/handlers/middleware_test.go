package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coachally/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rh := &RestHandler{}
	var seenUserId uint

	router := gin.New()
	router.GET("/protected", rh.MustAuthenticateMiddleware(), func(ctx *gin.Context) {
		seenUserId = utils.GetUserIdFromContext(ctx)
		ctx.Status(http.StatusOK)
	})
	return router, &seenUserId
}

func TestMustAuthenticateMiddlewareValidToken(t *testing.T) {
	router, seenUserId := newAuthTestRouter(t)

	token, err := utils.CreateJwtToken(42, "jane@example.com", "Jane", "Doe",
		utils.GetJwtKey(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, uint(42), *seenUserId)
}

func TestMustAuthenticateMiddlewareMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMustAuthenticateMiddlewareInvalidToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMustAuthenticateMiddlewareExpiredToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	token, err := utils.CreateJwtToken(42, "jane@example.com", "Jane", "Doe",
		utils.GetJwtKey(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
