package service

import (
	"context"
	"fmt"
	"strings"

	"community-events/internal/model"
	"community-events/internal/readmodel"
	"community-events/internal/repository"
	"community-events/internal/session"
	apperrors "community-events/pkg/app_errors"
)

type CommentService interface {
	ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error)
	// Create 留言建立後不可修改；UserName 是發文當下的名稱快照
	Create(ctx context.Context, sess *session.Session, eventID string, content string) (*model.Comment, error)
}

type CommentServiceImpl struct {
	repo   repository.CommentRepository
	events readmodel.EventProvider
}

func NewCommentService(repo repository.CommentRepository, events readmodel.EventProvider) CommentService {
	return &CommentServiceImpl{repo: repo, events: events}
}

func (s *CommentServiceImpl) ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error) {
	if _, ok := s.events.EventByID(eventID); !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *CommentServiceImpl) Create(ctx context.Context, sess *session.Session, eventID string, content string) (*model.Comment, error) {
	if sess == nil {
		return nil, apperrors.ErrAuthenticationRequired
	}
	if _, ok := s.events.EventByID(eventID); !ok {
		return nil, apperrors.ErrEventNotFound
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrInvalidInput
	}

	comment := &model.Comment{
		EventID:  eventID,
		UserID:   sess.UID,
		UserName: sess.DisplayName,
		Content:  content,
	}
	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("could not post comment: %w", err)
	}
	return created, nil
}
