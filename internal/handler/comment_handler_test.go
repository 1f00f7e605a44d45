package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community-events/internal/handler"
	"community-events/internal/model"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentService) Create(ctx context.Context, sess *session.Session, eventID string, content string) (*model.Comment, error) {
	args := m.Called(ctx, sess, eventID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func setupCommentRouter(svc *mockCommentService, sess *session.Session) *gin.Engine {
	router := gin.New()
	handler.NewCommentHandler(svc).RegisterRoutes(router, injectSession(sess))
	return router
}

func TestCommentHandler_ListByEventID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mockCommentService)
		comments := []*model.Comment{
			{ID: "c1", EventID: "e1", UserID: "u2", UserName: "Bob", Content: "See you there", CreatedAt: time.Now()},
		}
		mockService.On("ListByEventID", mock.Anything, "e1").Return(comments, nil).Once()
		router := setupCommentRouter(mockService, testUser())

		w := performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/events/e1/comments", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got []*model.Comment
		decodeBody(t, w, &got)
		assert.Len(t, got, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		mockService := new(mockCommentService)
		mockService.On("ListByEventID", mock.Anything, "missing").Return(nil, apperrors.ErrEventNotFound).Once()
		router := setupCommentRouter(mockService, testUser())

		w := performRequest(router, httptest.NewRequest(http.MethodGet, "/api/v1/events/missing/comments", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(mockCommentService)
		created := &model.Comment{ID: "c1", EventID: "e1", UserID: "u2", UserName: "Bob", Content: "Count me in"}
		mockService.On("Create", mock.Anything, testUser(), "e1", "Count me in").Return(created, nil).Once()
		router := setupCommentRouter(mockService, testUser())

		w := performRequest(router, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/events/e1/comments",
			gin.H{"content": "Count me in"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Comment
		decodeBody(t, w, &got)
		assert.Equal(t, "c1", got.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - empty content rejected by binding", func(t *testing.T) {
		mockService := new(mockCommentService)
		router := setupCommentRouter(mockService, testUser())

		w := performRequest(router, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/events/e1/comments",
			gin.H{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - blank content rejected by service", func(t *testing.T) {
		mockService := new(mockCommentService)
		mockService.On("Create", mock.Anything, testUser(), "e1", "   ").
			Return(nil, apperrors.ErrInvalidInput).Once()
		router := setupCommentRouter(mockService, testUser())

		w := performRequest(router, createJSONHTTPRequest(t, http.MethodPost, "/api/v1/events/e1/comments",
			gin.H{"content": "   "}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})
}
