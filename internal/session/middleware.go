package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware 解析 Bearer token 並把 Session 注入 context；
// 沒帶或驗不過一律 401，提示重新登入
func Middleware(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
			c.Abort()
			return
		}

		// Expect: "Bearer token"
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		sess, err := tm.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
			c.Abort()
			return
		}

		Inject(c, sess)
		c.Next()
	}
}
