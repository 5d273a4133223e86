package httpx

import (
	"errors"
	"net/http"
	"strings"

	"gallerie/internal/auth"
	"gallerie/internal/store"
)

func (s *Server) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	content := strings.TrimSpace(r.FormValue("commentDesc"))
	if content == "" {
		http.Error(w, "Comment is required.", http.StatusBadRequest)
		return
	}

	user, _ := auth.UserFrom(r.Context())
	if _, err := s.Store.CreateComment(r.Context(), content, post.ID, user.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}

func (s *Server) handleCommentDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	comment, err := s.Store.GetCommentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	user, _ := auth.UserFrom(ctx)
	if !auth.Can(user.ID, auth.Resource{Kind: "comment", OwnerID: comment.UserID}, auth.ActionDelete) {
		http.Error(w, "Unauthorized", http.StatusForbidden)
		return
	}

	post, err := s.Store.GetPostByID(ctx, comment.PostID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if err := s.Store.DeleteComment(ctx, comment.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}
