package store

import (
	"context"

	"gallerie/internal/models"
)

func (s *Store) GetCollections(ctx context.Context) ([]models.Collection, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, created_at FROM collections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []models.Collection
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

func (s *Store) GetCollectionByID(ctx context.Context, id int64) (models.Collection, error) {
	var c models.Collection
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at FROM collections WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	return c, notFound(err)
}
