package handler

import (
	"errors"
	"net/http"

	"community-events/internal/model"
	"community-events/internal/service"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	service service.UserService
	tokens  *session.TokenManager
}

func NewUserHandler(service service.UserService, tokens *session.TokenManager) *UserHandler {
	return &UserHandler{service: service, tokens: tokens}
}

// RegisterRoutes 註冊與登入不用帶 token，profile 需要
func (h *UserHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	public := r.Group("/api/v1")
	{
		public.POST("auth/register", h.Register)
		public.POST("auth/login", h.Login)
	}
	private := r.Group("/api/v1", auth)
	{
		private.GET("profile", h.GetProfile)
		private.PUT("profile", h.UpdateProfile)
	}
}

// RegisterRequest 註冊請求；role 只在註冊時決定
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest 只開放改顯示名稱
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Register(c, service.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        model.Role(req.Role),
	})
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.service.Authenticate(c, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	sess, ok := session.FromContext(c)
	if !ok {
		h.handleError(c, apperrors.ErrAuthenticationRequired, "GetProfile")
		return
	}

	user, err := h.service.GetProfile(c, sess.UID)
	if err != nil {
		h.handleError(c, err, "GetProfile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	sess, _ := session.FromContext(c)
	user, err := h.service.UpdateDisplayName(c, sess, req.DisplayName)
	if err != nil {
		h.handleError(c, err, "UpdateProfile")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		log.Warn("Authentication required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Email already registered")
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
