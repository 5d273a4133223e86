package auth

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"gallerie/internal/models"
)

const CookieName = "gallerie_session"

// Manager keeps sessions in the database, keyed by a uuid carried in a
// cookie.
type Manager struct {
	db       *sql.DB
	lifetime time.Duration
}

func NewManager(db *sql.DB, lifetime time.Duration) *Manager {
	return &Manager{db: db, lifetime: lifetime}
}

// Create inserts a session row for the user and sets the cookie.
func (m *Manager) Create(w http.ResponseWriter, userID int64) error {
	sid := uuid.New().String()
	exp := time.Now().Add(m.lifetime)

	_, err := m.db.Exec(
		`INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES (?,?,?,?)`,
		sid, userID, exp, time.Now())
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	return nil
}

// Destroy deletes the session row and clears the cookie.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		_, _ = m.db.Exec(`DELETE FROM sessions WHERE id = ?`, c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// Identity resolves the request's cookie to the logged-in user's session
// identity. Expired or unknown sessions yield ErrNoSession.
func (m *Manager) Identity(r *http.Request) (models.SessionUser, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return models.SessionUser{}, ErrNoSession
	}

	var u models.SessionUser
	var exp time.Time
	err = m.db.QueryRow(`
		SELECT u.id, u.username, u.email, u.profile_picture, s.expires_at
		  FROM sessions s
		  JOIN users u ON u.id = s.user_id
		 WHERE s.id = ?`, c.Value).
		Scan(&u.ID, &u.Username, &u.Email, &u.ProfilePicture, &exp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SessionUser{}, ErrNoSession
	}
	if err != nil {
		return models.SessionUser{}, err
	}
	if time.Now().After(exp) {
		return models.SessionUser{}, ErrNoSession
	}
	return u, nil
}
