package store

import (
	"context"
	"time"

	"gallerie/internal/models"
)

const userCols = `id, first_name, last_name, username, email, password_hash, bio, age, profile_picture, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email,
		&u.PasswordHash, &u.Bio, &u.Age, &u.ProfilePicture, &u.CreatedAt)
	return u, err
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userCols+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userCols+` FROM users WHERE id = ?`, id))
	return u, notFound(err)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userCols+` FROM users WHERE email = ?`, email))
	return u, notFound(err)
}

func (s *Store) CreateUser(ctx context.Context, u models.User) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (first_name, last_name, username, email, password_hash, bio, age, profile_picture, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		u.FirstName, u.LastName, u.Username, u.Email, u.PasswordHash, u.Bio, u.Age, u.ProfilePicture, time.Now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) UpdateUser(ctx context.Context, u models.User) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE users
		   SET first_name = ?, last_name = ?, username = ?, email = ?, password_hash = ?, bio = ?, age = ?, profile_picture = ?
		 WHERE id = ?`,
		u.FirstName, u.LastName, u.Username, u.Email, u.PasswordHash, u.Bio, u.Age, u.ProfilePicture, u.ID)
	return err
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}
