package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/middleware"
	"fuelbooks/internal/service"
	"fuelbooks/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := new(mocks.MockTokenValidator)

	userID := uuid.New()
	validator.On("ValidateToken", "valid-token").Return(&service.Claims{
		UserID:  userID,
		Email:   "manager@station.test",
		Role:    "manager",
		Station: "KA-BLR-014",
	}, nil)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(validator))
	r.GET("/test", func(c *gin.Context) {
		uid, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": uid,
			"role":    middleware.GetRole(c),
			"station": c.GetString(middleware.ContextKeyStation),
		})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, userID.String(), resp["user_id"])
	assert.Equal(t, "manager", resp["role"])
	assert.Equal(t, "KA-BLR-014", resp["station"])
	validator.AssertExpectations(t)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	validator := new(mocks.MockTokenValidator)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(validator))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	validator.AssertNotCalled(t, "ValidateToken", "")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	validator := new(mocks.MockTokenValidator)

	r := gin.New()
	r.Use(middleware.AuthMiddleware(validator))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	validator := new(mocks.MockTokenValidator)
	validator.On("ValidateToken", "expired").Return(nil, domain.ErrUnauthorized)

	reached := false
	r := gin.New()
	r.Use(middleware.AuthMiddleware(validator))
	r.GET("/test", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestGetUserID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetUserID(c)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
