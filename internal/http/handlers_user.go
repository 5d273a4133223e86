package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"gallerie/internal/auth"
	"gallerie/internal/util"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	posts, err := s.Store.ListPostsByUser(r.Context(), user.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	util.Render(w, "dashboard.html", map[string]any{
		"User":  user,
		"Posts": posts,
	})
}

func (s *Server) handleUserEditForm(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.UserFrom(r.Context())
	user, err := s.Store.GetUserByID(r.Context(), sess.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	util.Render(w, "user_edit.html", map[string]any{"User": user})
}

func (s *Server) handleUserEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, _ := auth.UserFrom(ctx)

	user, err := s.Store.GetUserByID(ctx, sess.ID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	// a blank password keeps the stored hash
	if pw := r.FormValue("userPassword"); strings.TrimSpace(pw) != "" {
		hash, err := auth.HashPassword(pw)
		if err != nil {
			s.serverError(w, r, err)
			return
		}
		user.PasswordHash = hash
	}

	user.FirstName = strings.TrimSpace(r.FormValue("firstName"))
	user.LastName = strings.TrimSpace(r.FormValue("lastName"))
	user.Username = strings.TrimSpace(r.FormValue("username"))
	user.Email = strings.TrimSpace(r.FormValue("email"))
	user.Bio = r.FormValue("bio")
	user.Age, _ = strconv.Atoi(r.FormValue("age"))
	user.ProfilePicture = strings.TrimSpace(r.FormValue("profilePicture"))

	if err := s.Store.UpdateUser(ctx, user); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFrom(r.Context())
	if err := s.Store.DeleteUser(r.Context(), user.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	s.Sessions.Destroy(w, r)
	http.Redirect(w, r, "/signup", http.StatusSeeOther)
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if id == user.ID {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := s.Store.Follow(r.Context(), user.ID, id); err != nil {
		s.serverError(w, r, err)
		return
	}
	backTo(w, r)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if err := s.Store.Unfollow(r.Context(), user.ID, id); err != nil {
		s.serverError(w, r, err)
		return
	}
	backTo(w, r)
}
