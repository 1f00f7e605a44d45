package handler

import (
	"errors"
	"net/http"
	"time"

	"community-events/internal/model"
	"community-events/internal/query"
	"community-events/internal/service"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"
	"community-events/pkg/timefmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group("/api/v1", auth)
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.UpdateByID)
		router.DELETE("events/:id", h.DeleteByID)
		router.POST("events/:id/rsvp", h.ToggleRSVP)
		router.POST("events/refresh", h.Refresh)
	}
}

// ListEventsQuery 清單過濾條件；from/to 必須成對出現
type ListEventsQuery struct {
	Q          string `form:"q"`
	Type       string `form:"type"`
	Difficulty string `form:"difficulty"`
	From       string `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         string `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title            string            `json:"title" binding:"required"`
	Type             model.EventType   `json:"type" binding:"required"`
	Difficulty       model.Difficulty  `json:"difficulty" binding:"required"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	ImageURL         string            `json:"imageURL"`
	DateTime         time.Time         `json:"dateTime" binding:"required"`
	Duration         int               `json:"duration" binding:"required,min=1"`
	Address          string            `json:"address"`
	Coordinates      model.Coordinates `json:"coordinates"`
}

// EventResponse 活動加上給畫面直接用的時間字串
type EventResponse struct {
	*model.Event
	DisplayTime     string `json:"displayTime"`
	DisplayDuration string `json:"displayDuration"`
}

func toEventResponse(event *model.Event, now time.Time) EventResponse {
	return EventResponse{
		Event:           event,
		DisplayTime:     timefmt.FormatEventTime(event.DateTime, now),
		DisplayDuration: timefmt.FormatDuration(event.Duration),
	}
}

func toEventResponses(events []*model.Event, now time.Time) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event, now))
	}
	return out
}

// UpdateEventRequest 更新活動請求，只帶要改的欄位
type UpdateEventRequest struct {
	Title            *string            `json:"title"`
	Type             *model.EventType   `json:"type"`
	Difficulty       *model.Difficulty  `json:"difficulty"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"shortDescription"`
	ImageURL         *string            `json:"imageURL"`
	DateTime         *time.Time         `json:"dateTime"`
	Duration         *int               `json:"duration"`
	Address          *string            `json:"address"`
	Coordinates      *model.Coordinates `json:"coordinates"`
}

func (h *EventHandler) List(c *gin.Context) {
	var q ListEventsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	criteria := query.Criteria{Text: q.Q}
	if q.Type != "" {
		eventType := model.EventType(q.Type)
		if !eventType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event type"})
			return
		}
		criteria.Type = &eventType
	}
	if q.Difficulty != "" {
		difficulty := model.Difficulty(q.Difficulty)
		if !difficulty.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid difficulty"})
			return
		}
		criteria.Difficulty = &difficulty
	}

	// 日期區間 all-or-nothing，只給一邊視為錯誤
	if (q.From == "") != (q.To == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both from and to are required for a date range"})
		return
	}
	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp"})
			return
		}
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp"})
			return
		}
		criteria.From = &from
		criteria.To = &to
	}

	events := h.service.List(criteria)
	c.JSON(http.StatusOK, gin.H{
		"events":  toEventResponses(events, time.Now().UTC()),
		"loading": h.service.Loading(),
	})
}

func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event, time.Now().UTC()))
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	sess, _ := session.FromContext(c)
	event := &model.Event{
		Title:            req.Title,
		Type:             req.Type,
		Difficulty:       req.Difficulty,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		DateTime:         req.DateTime,
		Duration:         req.Duration,
		Address:          req.Address,
		Coordinates:      req.Coordinates,
	}

	created, err := h.service.Create(c, sess, event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) UpdateByID(c *gin.Context) {
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	sess, _ := session.FromContext(c)
	params := model.UpdateEventParams{
		Title:            req.Title,
		Type:             req.Type,
		Difficulty:       req.Difficulty,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ImageURL:         req.ImageURL,
		DateTime:         req.DateTime,
		Duration:         req.Duration,
		Address:          req.Address,
		Coordinates:      req.Coordinates,
	}

	if err := h.service.Update(c, sess, c.Param("id"), params); err != nil {
		h.handleError(c, err, "UpdateByID")
		return
	}
	c.Status(http.StatusOK)
}

func (h *EventHandler) DeleteByID(c *gin.Context) {
	sess, _ := session.FromContext(c)
	if err := h.service.Delete(c, sess, c.Param("id")); err != nil {
		h.handleError(c, err, "DeleteByID")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) ToggleRSVP(c *gin.Context) {
	sess, _ := session.FromContext(c)
	result, err := h.service.ToggleRSVP(c, sess, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "ToggleRSVP")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventHandler) Refresh(c *gin.Context) {
	h.service.Refresh()
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		log.Warn("Authentication required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		log.Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed to do this"})
	case errors.Is(err, apperrors.ErrEventEnded):
		log.Warn("Event already ended")
		c.JSON(http.StatusConflict, gin.H{"error": "This event has already started"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
