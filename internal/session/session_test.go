package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"community-events/internal/model"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tm := session.NewTokenManager("test-secret")
	user := &model.User{UID: "u1", Role: model.RoleOrganizer, DisplayName: "Alice"}

	t.Run("Success - issue then parse", func(t *testing.T) {
		token, err := tm.Issue(user)
		require.NoError(t, err)

		sess, err := tm.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", sess.UID)
		assert.Equal(t, model.RoleOrganizer, sess.Role)
		assert.Equal(t, "Alice", sess.DisplayName)
		assert.True(t, sess.IsOrganizer())
	})

	t.Run("Failed - garbage token", func(t *testing.T) {
		_, err := tm.Parse("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
	})

	t.Run("Failed - wrong secret", func(t *testing.T) {
		token, err := session.NewTokenManager("other-secret").Issue(user)
		require.NoError(t, err)

		_, err = tm.Parse(token)
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm := session.NewTokenManager("test-secret")

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", session.Middleware(tm), func(c *gin.Context) {
			sess, ok := session.FromContext(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"uid": sess.UID})
		})
		return router
	}

	t.Run("Success - valid bearer token passes through", func(t *testing.T) {
		token, err := tm.Issue(&model.User{UID: "u1", Role: model.RoleUser, DisplayName: "Bob"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u1")
	})

	t.Run("Failed - missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Please log in to continue")
	})

	t.Run("Failed - not a bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token format")
	})

	t.Run("Failed - invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bogus")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
