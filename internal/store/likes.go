package store

import (
	"context"
	"time"

	"gallerie/internal/models"
)

func (s *Store) GetLikes(ctx context.Context) ([]models.Like, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, post_id FROM likes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []models.Like
	for rows.Next() {
		var l models.Like
		if err := rows.Scan(&l.UserID, &l.PostID); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (s *Store) CountLikesForPost(ctx context.Context, postID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = ?`, postID).Scan(&n)
	return n, err
}

// AddLike is idempotent: liking a post twice keeps a single row.
func (s *Store) AddLike(ctx context.Context, userID, postID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO likes (user_id, post_id, created_at) VALUES (?,?,?)`,
		userID, postID, time.Now())
	return err
}

func (s *Store) RemoveLike(ctx context.Context, userID, postID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	return err
}
