package store

import (
	"context"
	"time"

	"gallerie/internal/models"
)

func (s *Store) GetFollows(ctx context.Context) ([]models.Follow, error) {
	return s.listFollows(ctx, `SELECT follower_id, followed_id, created_at FROM follows`)
}

func (s *Store) ListFollowsByFollower(ctx context.Context, followerID int64) ([]models.Follow, error) {
	return s.listFollows(ctx, `SELECT follower_id, followed_id, created_at FROM follows WHERE follower_id = ?`, followerID)
}

func (s *Store) listFollows(ctx context.Context, query string, args ...any) ([]models.Follow, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var follows []models.Follow
	for rows.Next() {
		var f models.Follow
		if err := rows.Scan(&f.FollowerID, &f.FollowedID, &f.CreatedAt); err != nil {
			return nil, err
		}
		follows = append(follows, f)
	}
	return follows, rows.Err()
}

// Follow is idempotent: a (follower, followed) pair exists at most once.
func (s *Store) Follow(ctx context.Context, followerID, followedID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO follows (follower_id, followed_id, created_at) VALUES (?,?,?)`,
		followerID, followedID, time.Now())
	return err
}

func (s *Store) Unfollow(ctx context.Context, followerID, followedID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND followed_id = ?`, followerID, followedID)
	return err
}

// UpdateFollowByFollower repoints every follow row of a follower. The match
// key is the follower id.
func (s *Store) UpdateFollowByFollower(ctx context.Context, followerID, followedID int64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE follows SET followed_id = ? WHERE follower_id = ?`, followedID, followerID)
	return err
}
