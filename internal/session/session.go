package session

import (
	"fmt"
	"time"

	"community-events/internal/model"
	apperrors "community-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session 目前登入者的身份，透過 gin context 注入，不用全域變數，
// 測試可以直接塞一個固定 Session。
type Session struct {
	UID         string
	Role        model.Role
	DisplayName string
}

func (s *Session) IsOrganizer() bool {
	return s.Role == model.RoleOrganizer
}

const contextKey = "session"

// FromContext 取出目前請求的 Session；沒登入回傳 false
func FromContext(c *gin.Context) (*Session, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	sess, ok := value.(*Session)
	return sess, ok
}

// Inject 把 Session 塞進 gin context，middleware 與測試共用
func Inject(c *gin.Context, sess *Session) {
	c.Set(contextKey, sess)
}

// TokenManager 簽發與驗證 JWT，claims 帶 uid、role、name
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: 24 * time.Hour}
}

func (tm *TokenManager) Issue(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":  user.UID,
		"role": string(user.Role),
		"name": user.DisplayName,
		"exp":  time.Now().Add(tm.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Parse(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrAuthenticationRequired
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrAuthenticationRequired
	}

	uid, _ := claims["uid"].(string)
	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	if uid == "" || !model.Role(role).IsValid() {
		return nil, apperrors.ErrAuthenticationRequired
	}

	return &Session{UID: uid, Role: model.Role(role), DisplayName: name}, nil
}
