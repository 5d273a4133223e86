package store

import (
	"context"
	"time"

	"gallerie/internal/models"
)

const postCols = `id, title, description, image, user_id, collection_id, created_at`

func scanPost(row interface{ Scan(...any) error }) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.UserID, &p.CollectionID, &p.CreatedAt)
	return p, err
}

func (s *Store) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return s.listPosts(ctx, `SELECT `+postCols+` FROM posts ORDER BY created_at DESC`)
}

func (s *Store) ListPostsByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.listPosts(ctx, `SELECT `+postCols+` FROM posts WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

func (s *Store) ListPostsByCollection(ctx context.Context, collectionID int64) ([]models.Post, error) {
	return s.listPosts(ctx, `SELECT `+postCols+` FROM posts WHERE collection_id = ? ORDER BY created_at DESC`, collectionID)
}

func (s *Store) listPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *Store) GetPostByID(ctx context.Context, id int64) (models.Post, error) {
	p, err := scanPost(s.db.QueryRowContext(ctx, `SELECT `+postCols+` FROM posts WHERE id = ?`, id))
	return p, notFound(err)
}

func (s *Store) CreatePost(ctx context.Context, p models.Post) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (title, description, image, user_id, collection_id, created_at)
		VALUES (?,?,?,?,?,?)`,
		p.Title, p.Description, p.Image, p.UserID, p.CollectionID, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) UpdatePost(ctx context.Context, id int64, title, description, image string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, description = ?, image = ? WHERE id = ?`,
		title, description, image, id)
	return err
}

func (s *Store) DeletePost(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

// CollectionPost is a post row joined with its author and like count, as shown
// on a collection page.
type CollectionPost struct {
	models.Post
	Author string
	Likes  int
}

// ListCollectionPosts returns the posts of a collection with author and like
// count resolved in a single query instead of one lookup per post.
func (s *Store) ListCollectionPosts(ctx context.Context, collectionID int64) ([]CollectionPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.description, p.image, p.user_id, p.collection_id, p.created_at,
		       u.username, COUNT(l.post_id) AS likes
		  FROM posts p
		  JOIN users u ON u.id = p.user_id
		  LEFT JOIN likes l ON l.post_id = p.id
		 WHERE p.collection_id = ?
		 GROUP BY p.id, p.title, p.description, p.image, p.user_id, p.collection_id, p.created_at, u.username
		 ORDER BY p.created_at DESC`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []CollectionPost
	for rows.Next() {
		var p CollectionPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.UserID, &p.CollectionID,
			&p.CreatedAt, &p.Author, &p.Likes); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
