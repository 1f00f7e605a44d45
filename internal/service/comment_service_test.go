package service_test

import (
	"context"
	"testing"
	"time"

	"community-events/internal/model"
	rmmocks "community-events/internal/readmodel/mocks"
	"community-events/internal/service"
	apperrors "community-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func TestCommentService_ListByEventID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mockCommentRepository)
		mockProvider := rmmocks.NewMockEventProvider(t)
		svc := service.NewCommentService(mockRepo, mockProvider)

		mockProvider.EXPECT().EventByID("e1").Return(futureEvent("e1", "host"), true).Once()
		comments := []*model.Comment{
			{ID: "c2", EventID: "e1", UserID: "u2", UserName: "Bob", Content: "See you there", CreatedAt: time.Now()},
			{ID: "c1", EventID: "e1", UserID: "u1", UserName: "Alice", Content: "First!", CreatedAt: time.Now().Add(-time.Hour)},
		}
		mockRepo.On("ListByEventID", ctx, "e1").Return(comments, nil).Once()

		got, err := svc.ListByEventID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, comments, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		mockRepo := new(mockCommentRepository)
		mockProvider := rmmocks.NewMockEventProvider(t)
		svc := service.NewCommentService(mockRepo, mockProvider)

		mockProvider.EXPECT().EventByID("missing").Return(nil, false).Once()

		_, err := svc.ListByEventID(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		mockRepo.AssertNotCalled(t, "ListByEventID")
	})
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - user name is a snapshot of the session", func(t *testing.T) {
		mockRepo := new(mockCommentRepository)
		mockProvider := rmmocks.NewMockEventProvider(t)
		svc := service.NewCommentService(mockRepo, mockProvider)

		mockProvider.EXPECT().EventByID("e1").Return(futureEvent("e1", "host"), true).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Comment")).
			Return(&model.Comment{ID: "c1", EventID: "e1", UserID: "u2", UserName: "Bob", Content: "Count me in"}, nil).
			Once()

		created, err := svc.Create(ctx, userSession("u2"), "e1", "Count me in")
		require.NoError(t, err)
		assert.Equal(t, "Bob", created.UserName)

		sent := mockRepo.Calls[0].Arguments.Get(1).(*model.Comment)
		assert.Equal(t, "u2", sent.UserID)
		assert.Equal(t, "Bob", sent.UserName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failed - no session", func(t *testing.T) {
		svc := service.NewCommentService(new(mockCommentRepository), rmmocks.NewMockEventProvider(t))

		_, err := svc.Create(ctx, nil, "e1", "hello")
		assert.ErrorIs(t, err, apperrors.ErrAuthenticationRequired)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		mockProvider := rmmocks.NewMockEventProvider(t)
		svc := service.NewCommentService(new(mockCommentRepository), mockProvider)
		mockProvider.EXPECT().EventByID("missing").Return(nil, false).Once()

		_, err := svc.Create(ctx, userSession("u2"), "missing", "hello")
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("Failed - blank content", func(t *testing.T) {
		mockProvider := rmmocks.NewMockEventProvider(t)
		svc := service.NewCommentService(new(mockCommentRepository), mockProvider)
		mockProvider.EXPECT().EventByID("e1").Return(futureEvent("e1", "host"), true).Once()

		_, err := svc.Create(ctx, userSession("u2"), "e1", "   ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
