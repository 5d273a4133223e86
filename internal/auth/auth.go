package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gallerie/internal/models"
)

var (
	ErrInvalidLogin = errors.New("invalid email or password")
	ErrNoSession    = errors.New("session not found")
)

// ----------------------------
// Context helpers (for middleware and handlers)
// ----------------------------

type ctxKeyUser struct{}

func WithUser(ctx context.Context, u models.SessionUser) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, u)
}

func UserFrom(ctx context.Context) (models.SessionUser, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(models.SessionUser)
	return u, ok && u.ID != 0
}

// ----------------------------
// Passwords
// ----------------------------

func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword compares in constant time; returns ErrInvalidLogin on
// mismatch.
func VerifyPassword(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrInvalidLogin
	}
	return nil
}
