package httpx

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gallerie/internal/auth"
	"gallerie/internal/models"
	"gallerie/internal/store"
	"gallerie/internal/util"
)

func loginError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	util.Render(w, "login.html", map[string]any{
		"Error": r.URL.Query().Get("error"),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("userPassword")

	if email == "" || password == "" {
		loginError(w, r, "Email and password required")
		return
	}

	user, err := s.Store.GetUserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		loginError(w, r, "User not found")
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		s.Log.Info().Str("email", email).Msg("login failed")
		loginError(w, r, "Incorrect password")
		return
	}

	if err := s.Sessions.Create(w, user.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	util.Render(w, "signup.html", nil)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("userPassword")
	if email == "" || password == "" {
		http.Error(w, "Email and Password required!", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	age, _ := strconv.Atoi(r.FormValue("age"))
	u := models.User{
		FirstName:      strings.TrimSpace(r.FormValue("firstName")),
		LastName:       strings.TrimSpace(r.FormValue("lastName")),
		Username:       strings.TrimSpace(r.FormValue("username")),
		Email:          email,
		PasswordHash:   hash,
		Bio:            r.FormValue("bio"),
		Age:            age,
		ProfilePicture: strings.TrimSpace(r.FormValue("profilePicture")),
	}

	// the session identity comes from the insert result
	id, err := s.Store.CreateUser(r.Context(), u)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := s.Sessions.Create(w, id); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
