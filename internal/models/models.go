package models

import "time"

type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Username       string
	Email          string
	PasswordHash   string
	Bio            string
	Age            int
	ProfilePicture string
	CreatedAt      time.Time
}

// SessionUser is the minimal identity cached for a logged-in browser session.
type SessionUser struct {
	ID             int64
	Username       string
	Email          string
	ProfilePicture string
}

type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Collection struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

type Post struct {
	ID           int64
	Title        string
	Description  string
	Image        string
	UserID       int64
	CollectionID int64
	CreatedAt    time.Time
}

type Comment struct {
	ID        int64
	Content   string
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

type Like struct {
	UserID int64
	PostID int64
}

// Follow says FollowerID follows FollowedID.
type Follow struct {
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}
