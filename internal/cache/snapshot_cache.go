package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"community-events/internal/model"

	_ "modernc.org/sqlite"
)

// snapshotKey 固定 key：整份活動清單只存一筆，永遠整份覆蓋
const snapshotKey = "events:last"

// SnapshotCache 本機的可拋棄式鏡像：啟動時讀一次，之後每次成功同步整份覆寫。
// 讀不到或解不開一律當 cold start，不影響訂閱路徑。
type SnapshotCache interface {
	Load(ctx context.Context) ([]*model.Event, error)
	Store(ctx context.Context, events []*model.Event) error
	Close() error
}

type SQLiteSnapshotCacheImpl struct {
	db *sql.DB
}

func NewSQLiteSnapshotCache(path string) (SnapshotCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key      TEXT PRIMARY KEY,
			payload  BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		)
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot cache schema: %w", err)
	}

	return &SQLiteSnapshotCacheImpl{db: db}, nil
}

func (c *SQLiteSnapshotCacheImpl) Load(ctx context.Context) ([]*model.Event, error) {
	var payload []byte
	query := `SELECT payload FROM snapshots WHERE key = ?`
	err := c.db.QueryRowContext(ctx, query, snapshotKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	events, err := UnmarshalEvents(payload)
	if err != nil {
		return nil, fmt.Errorf("decode cached snapshot: %w", err)
	}
	return events, nil
}

func (c *SQLiteSnapshotCacheImpl) Store(ctx context.Context, events []*model.Event) error {
	payload, err := MarshalEvents(events)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO snapshots (key, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`
	_, err = c.db.ExecContext(ctx, query, snapshotKey, payload, time.Now().UTC().UnixMilli())
	return err
}

func (c *SQLiteSnapshotCacheImpl) Close() error {
	return c.db.Close()
}
