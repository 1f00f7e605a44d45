package service

import (
	"context"
	"fmt"
	"time"

	"community-events/internal/model"
	"community-events/internal/query"
	"community-events/internal/readmodel"
	"community-events/internal/session"
	"community-events/internal/store"
	apperrors "community-events/pkg/app_errors"
)

// RSVPResult 切換後的狀態，Joined 表示呼叫者現在是否在名單內
type RSVPResult struct {
	EventID string `json:"event_id"`
	Joined  bool   `json:"joined"`
}

type EventService interface {
	// List 從 read-model 取完整清單後套用純過濾投影
	List(criteria query.Criteria) []*model.Event
	GetByID(id string) (*model.Event, error)
	Loading() bool
	Refresh()
	// Create 只有 organizer 可以建立活動；host 欄位取自建立者身份，之後不再變動
	Create(ctx context.Context, sess *session.Session, event *model.Event) (*model.Event, error)
	// Update / Delete 只有 host 本人可以執行
	Update(ctx context.Context, sess *session.Session, id string, params model.UpdateEventParams) error
	Delete(ctx context.Context, sess *session.Session, id string) error
	// ToggleRSVP 切換呼叫者的報名狀態。本地清單不直接改，
	// 新狀態等訂閱把已提交的寫入 echo 回來才看得到。
	ToggleRSVP(ctx context.Context, sess *session.Session, id string) (*RSVPResult, error)
}

type EventServiceImpl struct {
	events readmodel.EventProvider
	store  store.EventStore
}

func NewEventService(events readmodel.EventProvider, eventStore store.EventStore) EventService {
	return &EventServiceImpl{events: events, store: eventStore}
}

func (s *EventServiceImpl) List(criteria query.Criteria) []*model.Event {
	return query.Filter(s.events.Events(), criteria)
}

func (s *EventServiceImpl) GetByID(id string) (*model.Event, error) {
	event, ok := s.events.EventByID(id)
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *EventServiceImpl) Loading() bool {
	return s.events.Loading()
}

func (s *EventServiceImpl) Refresh() {
	s.events.Refresh()
}

func (s *EventServiceImpl) Create(ctx context.Context, sess *session.Session, event *model.Event) (*model.Event, error) {
	if sess == nil {
		return nil, apperrors.ErrAuthenticationRequired
	}
	if !sess.IsOrganizer() {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	event.HostID = sess.UID
	event.HostName = sess.DisplayName
	event.RSVPCount = 0
	event.RSVPList = []string{}

	created, err := s.store.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("could not create event: %w", err)
	}
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, sess *session.Session, id string, params model.UpdateEventParams) error {
	if sess == nil {
		return apperrors.ErrAuthenticationRequired
	}
	event, ok := s.events.EventByID(id)
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if event.HostID != sess.UID {
		return apperrors.ErrPermissionDenied
	}
	if err := validateUpdateParams(params); err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, params); err != nil {
		return fmt.Errorf("could not update event: %w", err)
	}
	return nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, sess *session.Session, id string) error {
	if sess == nil {
		return apperrors.ErrAuthenticationRequired
	}
	event, ok := s.events.EventByID(id)
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if event.HostID != sess.UID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete event: %w", err)
	}
	return nil
}

func (s *EventServiceImpl) ToggleRSVP(ctx context.Context, sess *session.Session, id string) (*RSVPResult, error) {
	if sess == nil {
		return nil, apperrors.ErrAuthenticationRequired
	}
	event, ok := s.events.EventByID(id)
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	// 已開始的活動不開放加退
	if event.IsPast(time.Now().UTC()) {
		return nil, apperrors.ErrEventEnded
	}

	joined, err := s.store.ToggleRSVP(ctx, id, sess.UID)
	if err != nil {
		if err == apperrors.ErrEventNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("could not update RSVP: %w", err)
	}
	return &RSVPResult{EventID: id, Joined: joined}, nil
}

func validateEvent(event *model.Event) error {
	if event == nil || event.Title == "" {
		return apperrors.ErrInvalidInput
	}
	if !event.Type.IsValid() || !event.Difficulty.IsValid() {
		return apperrors.ErrInvalidInput
	}
	if event.DateTime.IsZero() || event.Duration <= 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

func validateUpdateParams(params model.UpdateEventParams) error {
	if params.Title != nil && *params.Title == "" {
		return apperrors.ErrInvalidInput
	}
	if params.Type != nil && !params.Type.IsValid() {
		return apperrors.ErrInvalidInput
	}
	if params.Difficulty != nil && !params.Difficulty.IsValid() {
		return apperrors.ErrInvalidInput
	}
	if params.Duration != nil && *params.Duration <= 0 {
		return apperrors.ErrInvalidInput
	}
	if params.DateTime != nil && params.DateTime.IsZero() {
		return apperrors.ErrInvalidInput
	}
	return nil
}
