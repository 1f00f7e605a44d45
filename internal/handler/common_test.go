package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"community-events/internal/model"
	"community-events/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// injectSession 測試用 middleware：跳過 JWT 驗證，直接塞 Session。
// sess 為 nil 時模擬 middleware 沒放行卻進到 handler 的防禦路徑。
func injectSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			session.Inject(c, sess)
		}
		c.Next()
	}
}

func testOrganizer() *session.Session {
	return &session.Session{UID: "u1", Role: model.RoleOrganizer, DisplayName: "Alice"}
}

func testUser() *session.Session {
	return &session.Session{UID: "u2", Role: model.RoleUser, DisplayName: "Bob"}
}

func createJSONHTTPRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
