package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"community-events/internal/model"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChangedChannel 任何一筆活動寫入成功後都會往這個 channel 發通知，
// 訂閱端收到通知就重新讀整個 collection。
const ChangedChannel = "events:changed"

// Snapshot 一次完整的 collection 快照 (依 date_time 升冪)。
// Err 非 nil 時 Documents 為空，訂閱端應保留手上的舊資料。
type Snapshot struct {
	Documents []Document
	Err       error
}

type EventStore interface {
	// Snapshots 開啟長連線訂閱：先送出當下快照，之後每次有任何寫入就重送完整快照
	Snapshots(ctx context.Context) (<-chan Snapshot, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id string, params model.UpdateEventParams) error
	Delete(ctx context.Context, id string) error
	// ToggleRSVP 以單一條件式更新切換報名狀態：以已提交的 rsvpList 為準決定加或減，
	// rsvpCount 同句更新，讀取端永遠看不到兩者不一致。回傳切換後是否在名單內。
	ToggleRSVP(ctx context.Context, id string, uid string) (bool, error)
}

type PostgresEventStoreImpl struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewPostgresEventStore(pool *pgxpool.Pool, rdb *redis.Client) EventStore {
	return &PostgresEventStoreImpl{pool: pool, rdb: rdb}
}

func (s *PostgresEventStoreImpl) Snapshots(ctx context.Context) (<-chan Snapshot, error) {
	sub := s.rdb.Subscribe(ctx, ChangedChannel)
	// 確認訂閱已建立，避免漏掉建立期間的通知
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", ChangedChannel, err)
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)
		defer sub.Close()

		// 初始快照
		if !s.deliver(ctx, out) {
			return
		}

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				if !s.deliver(ctx, out) {
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *PostgresEventStoreImpl) deliver(ctx context.Context, out chan<- Snapshot) bool {
	docs, err := s.queryAll(ctx)
	snapshot := Snapshot{Documents: docs, Err: err}
	select {
	case out <- snapshot:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *PostgresEventStoreImpl) queryAll(ctx context.Context) ([]Document, error) {
	query := `
		SELECT id, data
		FROM events
		ORDER BY date_time ASC
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var data map[string]interface{}
		if err := json.Unmarshal(raw, &data); err != nil {
			// 壞掉的單筆文件跳過，不讓整份快照失敗
			logger.WithComponent("store").Warn("skip malformed event document",
				zap.String("event_id", id), zap.Error(err))
			continue
		}
		docs = append(docs, Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

func (s *PostgresEventStoreImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.RSVPList == nil {
		event.RSVPList = []string{}
	}

	body, err := json.Marshal(EncodeEvent(event))
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO events (id, date_time, data)
		VALUES ($1, $2, $3)
	`
	if _, err := s.pool.Exec(ctx, query, event.ID, event.DateTime, body); err != nil {
		return nil, err
	}

	s.publishChanged(ctx, event.ID)
	return event, nil
}

func (s *PostgresEventStoreImpl) Update(ctx context.Context, id string, params model.UpdateEventParams) error {
	patch := map[string]interface{}{}
	if params.Title != nil {
		patch["title"] = *params.Title
	}
	if params.Type != nil {
		patch["type"] = string(*params.Type)
	}
	if params.Difficulty != nil {
		patch["difficulty"] = string(*params.Difficulty)
	}
	if params.Description != nil {
		patch["description"] = *params.Description
	}
	if params.ShortDescription != nil {
		patch["shortDescription"] = *params.ShortDescription
	}
	if params.ImageURL != nil {
		patch["imageURL"] = *params.ImageURL
	}
	if params.DateTime != nil {
		patch["dateTime"] = params.DateTime.UnixMilli()
	}
	if params.Duration != nil {
		patch["duration"] = *params.Duration
	}
	if params.Address != nil {
		patch["address"] = *params.Address
	}
	if params.Coordinates != nil {
		patch["coordinates"] = map[string]interface{}{
			"latitude":  params.Coordinates.Latitude,
			"longitude": params.Coordinates.Longitude,
		}
	}

	if len(patch) == 0 {
		return apperrors.ErrInvalidInput
	}
	patch["updatedAt"] = time.Now().UTC().UnixMilli()

	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}

	// date_time 欄位與 body 內的 dateTime 一起換，排序才會跟著走
	query := `
		UPDATE events
		SET data = data || $2::jsonb,
		    date_time = COALESCE($3, date_time)
		WHERE id = $1
	`
	result, err := s.pool.Exec(ctx, query, id, body, params.DateTime)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	s.publishChanged(ctx, id)
	return nil
}

func (s *PostgresEventStoreImpl) Delete(ctx context.Context, id string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	s.publishChanged(ctx, id)
	return nil
}

func (s *PostgresEventStoreImpl) ToggleRSVP(ctx context.Context, id string, uid string) (bool, error) {
	// 單一 UPDATE 內完成判斷與更新：
	// 1. uid 已在名單 -> 移除並以移除後的長度回填 rsvpCount
	// 2. uid 不在名單 -> 加入並把 rsvpCount 加一
	// 分支以資料庫內已提交的名單為準，連點兩下也不會重複加入
	query := `
		UPDATE events
		SET data = CASE WHEN data->'rsvpList' ? $2::text
			THEN jsonb_set(jsonb_set(jsonb_set(data,
				'{rsvpList}', (data->'rsvpList') - $2::text),
				'{rsvpCount}', to_jsonb(jsonb_array_length((data->'rsvpList') - $2::text))),
				'{updatedAt}', to_jsonb($3::bigint))
			ELSE jsonb_set(jsonb_set(jsonb_set(data,
				'{rsvpList}', (data->'rsvpList') || to_jsonb($2::text)),
				'{rsvpCount}', to_jsonb(jsonb_array_length(data->'rsvpList') + 1)),
				'{updatedAt}', to_jsonb($3::bigint))
			END
		WHERE id = $1
		RETURNING data->'rsvpList' ? $2::text
	`

	var joined bool
	err := s.pool.QueryRow(ctx, query, id, uid, time.Now().UTC().UnixMilli()).Scan(&joined)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, apperrors.ErrEventNotFound
		}
		return false, err
	}

	s.publishChanged(ctx, id)
	return joined, nil
}

func (s *PostgresEventStoreImpl) publishChanged(ctx context.Context, id string) {
	if err := s.rdb.Publish(ctx, ChangedChannel, id).Err(); err != nil {
		// 寫入已提交，只是通知沒送出去；下一次任何寫入的通知會把這筆一起帶回來
		logger.WithComponent("store").Warn("publish change notification failed",
			zap.String("event_id", id), zap.Error(err))
	}
}
