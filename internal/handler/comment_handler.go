package handler

import (
	"errors"
	"net/http"

	"community-events/internal/service"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("events/:id/comments", h.ListByEventID)
		router.POST("events/:id/comments", h.Create)
	}
}

// CreateCommentRequest 新增留言請求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) ListByEventID(c *gin.Context) {
	comments, err := h.service.ListByEventID(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "ListByEventID")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	sess, _ := session.FromContext(c)
	created, err := h.service.Create(c, sess, c.Param("id"), req.Content)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CommentHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		log.Warn("Authentication required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
