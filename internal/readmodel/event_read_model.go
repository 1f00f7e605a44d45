package readmodel

import (
	"context"
	"sort"
	"sync"

	"community-events/internal/cache"
	"community-events/internal/model"
	"community-events/internal/store"
	"community-events/pkg/logger"

	"go.uber.org/zap"
)

// EventProvider read-model 的唯讀視角，service 與 handler 只拿這個介面。
// Events 每次回傳完整清單的拷貝，呼叫端不能假設增量差異。
type EventProvider interface {
	Events() []*model.Event
	EventByID(id string) (*model.Event, bool)
	Loading() bool
	// Refresh 訂閱常駐，手動刷新只需要清掉錯誤狀態
	Refresh()
}

// EventReadModel 活動 read-model 同步器：
// 1. 啟動時先從本機快取 hydrate，畫面立刻有 (可能過期的) 資料
// 2. 同時開一條長連線訂閱，每份快照整批取代記憶體清單並回寫快取
// 清單只有同步器這一個 writer，其他元件只讀。
type EventReadModel interface {
	EventProvider
	// Start hydrate 並開啟訂閱；回傳後背景 goroutine 持續套用快照直到 ctx 結束
	Start(ctx context.Context) error
	LastError() error
}

type EventReadModelImpl struct {
	store store.EventStore
	cache cache.SnapshotCache

	mu      sync.RWMutex
	events  []*model.Event
	loading bool
	lastErr error
}

func NewEventReadModel(eventStore store.EventStore, snapshotCache cache.SnapshotCache) EventReadModel {
	return &EventReadModelImpl{
		store:   eventStore,
		cache:   snapshotCache,
		events:  []*model.Event{},
		loading: true,
	}
}

func (m *EventReadModelImpl) Start(ctx context.Context) error {
	m.hydrate(ctx)

	snapshots, err := m.store.Snapshots(ctx)
	if err != nil {
		return err
	}

	go func() {
		for snapshot := range snapshots {
			if snapshot.Err != nil {
				// 清單保持 stale-but-consistent，只清 loading 避免畫面一直轉圈
				m.mu.Lock()
				m.loading = false
				m.lastErr = snapshot.Err
				m.mu.Unlock()
				logger.WithComponent("readmodel").Warn("snapshot delivery failed, keeping stale list",
					zap.Error(snapshot.Err))
				continue
			}
			m.apply(ctx, snapshot.Documents)
		}
	}()
	return nil
}

// hydrate 從本機快取還原上一次的清單；讀不到就空清單等第一份快照
func (m *EventReadModelImpl) hydrate(ctx context.Context) {
	cached, err := m.cache.Load(ctx)
	if err != nil {
		logger.WithComponent("readmodel").Info("snapshot cache unreadable, cold start", zap.Error(err))
		return
	}
	if len(cached) == 0 {
		return
	}

	sortByDateTime(cached)

	m.mu.Lock()
	m.events = cached
	m.mu.Unlock()

	logger.WithComponent("readmodel").Info("hydrated events from local cache", zap.Int("count", len(cached)))
}

// apply 整批取代：解碼快照、重新排序、覆寫記憶體清單、回寫快取
func (m *EventReadModelImpl) apply(ctx context.Context, docs []store.Document) {
	events := make([]*model.Event, 0, len(docs))
	for _, doc := range docs {
		event, err := store.DecodeEvent(doc)
		if err != nil {
			logger.WithComponent("readmodel").Warn("skip undecodable event document",
				zap.String("event_id", doc.ID), zap.Error(err))
			continue
		}
		events = append(events, event)
	}

	sortByDateTime(events)

	m.mu.Lock()
	m.events = events
	m.loading = false
	m.lastErr = nil
	m.mu.Unlock()

	if err := m.cache.Store(ctx, events); err != nil {
		logger.WithComponent("readmodel").Warn("mirror snapshot to local cache failed", zap.Error(err))
	}
}

func (m *EventReadModelImpl) Events() []*model.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Event, len(m.events))
	for i, e := range m.events {
		out[i] = e.Clone()
	}
	return out
}

func (m *EventReadModelImpl) EventByID(id string) (*model.Event, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.events {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return nil, false
}

func (m *EventReadModelImpl) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *EventReadModelImpl) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *EventReadModelImpl) Refresh() {
	m.mu.Lock()
	m.lastErr = nil
	m.mu.Unlock()
}

func sortByDateTime(events []*model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DateTime.Before(events[j].DateTime)
	})
}
