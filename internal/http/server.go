package httpx

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"gallerie/internal/app"
	"gallerie/internal/auth"
	"gallerie/internal/store"
	"gallerie/web"
)

type Server struct {
	Store    *store.Store
	Sessions *auth.Manager
	Cfg      app.Config
	Log      zerolog.Logger

	mux     *http.ServeMux
	handler http.Handler
}

func NewServer(st *store.Store, sessions *auth.Manager, cfg app.Config, logger zerolog.Logger) *Server {
	s := &Server{Store: st, Sessions: sessions, Cfg: cfg, Log: logger}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.FileServerFS(web.Assets))

	// public
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /signup", s.handleSignupForm)
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /logout", s.handleLogout)

	// guarded
	mux.Handle("GET /collections", s.requireAuth(s.handleCollections))
	mux.Handle("GET /collection/{id}", s.requireAuth(s.handleCollection))
	mux.Handle("GET /collection/{id}/posts/new", s.requireAuth(s.handlePostNew))
	mux.Handle("POST /collection/{id}/posts", s.requireAuth(s.handlePostCreate))
	mux.Handle("GET /posts/{id}/edit", s.requireAuth(s.handlePostEditForm))
	mux.Handle("POST /posts/{id}/edit", s.requireAuth(s.handlePostEdit))
	mux.Handle("POST /posts/{id}/delete", s.requireAuth(s.handlePostDelete))
	mux.Handle("POST /posts/{id}/like", s.requireAuth(s.handleLike))
	mux.Handle("POST /posts/{id}/unlike", s.requireAuth(s.handleUnlike))
	mux.Handle("POST /posts/{id}/comments", s.requireAuth(s.handleCommentCreate))
	mux.Handle("POST /comments/{id}/delete", s.requireAuth(s.handleCommentDelete))
	mux.Handle("GET /dashboard", s.requireAuth(s.handleDashboard))
	mux.Handle("GET /users/edit", s.requireAuth(s.handleUserEditForm))
	mux.Handle("POST /users/edit", s.requireAuth(s.handleUserEdit))
	mux.Handle("POST /users/delete", s.requireAuth(s.handleUserDelete))
	mux.Handle("POST /users/{id}/follow", s.requireAuth(s.handleFollow))
	mux.Handle("POST /users/{id}/unfollow", s.requireAuth(s.handleUnfollow))

	s.mux = mux
	// recover wraps everything so no handler failure escapes unlogged
	s.handler = s.withRecover(s.withAccessLog(s.withSession(mux)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.handler.ServeHTTP(w, r) }

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.Log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("handler error")
	http.Error(w, "Server error", http.StatusInternalServerError)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

// backTo redirects to the referring page, falling back to home.
func backTo(w http.ResponseWriter, r *http.Request) {
	to := r.Referer()
	if to == "" {
		to = "/"
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}
