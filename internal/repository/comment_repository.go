package repository

import (
	"context"

	"community-events/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository interface {
	// ListByEventID 依建立時間新到舊，一次撈完 (非訂閱)
	ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
}

type CommentRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &CommentRepositoryImpl{
		pool: pool,
	}
}

func (r *CommentRepositoryImpl) ListByEventID(ctx context.Context, eventID string) ([]*model.Comment, error) {
	query := `
		SELECT id, event_id, user_id, user_name, content, created_at
		FROM comments
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.EventID,
			&comment.UserID,
			&comment.UserName,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	query := `
		INSERT INTO comments (id, event_id, user_id, user_name, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, user_id, user_name, content, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		comment.ID, comment.EventID, comment.UserID, comment.UserName, comment.Content,
	).Scan(
		&comment.ID,
		&comment.EventID,
		&comment.UserID,
		&comment.UserName,
		&comment.Content,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
