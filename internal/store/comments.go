package store

import (
	"context"
	"time"

	"gallerie/internal/models"
)

func (s *Store) GetCommentByID(ctx context.Context, id int64) (models.Comment, error) {
	var c models.Comment
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, post_id, user_id, created_at FROM comments WHERE id = ?`, id).
		Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt)
	return c, notFound(err)
}

func (s *Store) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.listComments(ctx, `SELECT id, content, post_id, user_id, created_at FROM comments WHERE post_id = ? ORDER BY created_at ASC`, postID)
}

func (s *Store) ListCommentsByUser(ctx context.Context, userID int64) ([]models.Comment, error) {
	return s.listComments(ctx, `SELECT id, content, post_id, user_id, created_at FROM comments WHERE user_id = ? ORDER BY created_at ASC`, userID)
}

func (s *Store) listComments(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *Store) CreateComment(ctx context.Context, content string, postID, userID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO comments (content, post_id, user_id, created_at) VALUES (?,?,?,?)`,
		content, postID, userID, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) UpdateComment(ctx context.Context, id int64, content string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE comments SET content = ? WHERE id = ?`, content, id)
	return err
}

func (s *Store) DeleteComment(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}

// CollectionComment is a comment row joined with its author.
type CollectionComment struct {
	models.Comment
	Author string
}

// ListCommentsByCollection returns every comment under a collection's posts
// with authors resolved, one query for the whole page.
func (s *Store) ListCommentsByCollection(ctx context.Context, collectionID int64) ([]CollectionComment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.content, c.post_id, c.user_id, c.created_at, u.username
		  FROM comments c
		  JOIN users u ON u.id = c.user_id
		  JOIN posts p ON p.id = c.post_id
		 WHERE p.collection_id = ?
		 ORDER BY c.created_at ASC`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []CollectionComment
	for rows.Next() {
		var c CollectionComment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.UserID, &c.CreatedAt, &c.Author); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
