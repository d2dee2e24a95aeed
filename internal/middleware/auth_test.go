package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"course_review_backend/internal/config"
	"course_review_backend/internal/model"
	"course_review_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-test-secret-test-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		if claims := util.GetUserFromContext(c); claims != nil {
			c.String(http.StatusOK, "user:%d", claims.UserID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/", handlers...)
	return r
}

func token(t *testing.T, id uint, role model.UserRole, ttl time.Duration) string {
	t.Helper()
	user := &model.User{BaseModel: model.BaseModel{ID: id}, Role: role}
	tok, err := util.GenerateJWT(user, secret, ttl)
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret}}
	r := newRouter(AuthMiddleware(cfg))

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, token(t, 3, model.RoleUser, -time.Minute)).Code)

	w := do(r, token(t, 3, model.RoleUser, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user:3", w.Body.String())
}

func TestTryAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret}}
	r := newRouter(TryAuthMiddleware(cfg))

	assert.Equal(t, "anonymous", do(r, "").Body.String())
	assert.Equal(t, "anonymous", do(r, "garbage").Body.String())
	assert.Equal(t, "user:4", do(r, token(t, 4, model.RoleUser, time.Hour)).Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret}}
	r := newRouter(AuthMiddleware(cfg), RoleMiddleware())

	assert.Equal(t, http.StatusForbidden, do(r, token(t, 1, model.RoleUser, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, token(t, 2, model.RoleAdmin, time.Hour)).Code)
}
