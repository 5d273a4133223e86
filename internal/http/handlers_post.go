package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gallerie/internal/auth"
	"gallerie/internal/models"
	"gallerie/internal/store"
	"gallerie/internal/util"
)

func redirectToCollection(w http.ResponseWriter, r *http.Request, collectionID int64) {
	http.Redirect(w, r, fmt.Sprintf("/collection/%d", collectionID), http.StatusSeeOther)
}

// getPost loads a post or writes a 404, returning ok=false when handled.
func (s *Server) getPost(w http.ResponseWriter, r *http.Request) (models.Post, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return models.Post{}, false
	}
	post, err := s.Store.GetPostByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Post not found", http.StatusNotFound)
		return models.Post{}, false
	}
	if err != nil {
		s.serverError(w, r, err)
		return models.Post{}, false
	}
	return post, true
}

func (s *Server) handlePostNew(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	util.Render(w, "post_new.html", map[string]any{"CollectionID": id})
}

func (s *Server) handlePostCreate(w http.ResponseWriter, r *http.Request) {
	collectionID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	user, _ := auth.UserFrom(r.Context())

	_, err = s.Store.CreatePost(r.Context(), models.Post{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  r.FormValue("postDescription"),
		Image:        strings.TrimSpace(r.FormValue("image1")),
		UserID:       user.ID,
		CollectionID: collectionID,
	})
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, collectionID)
}

func (s *Server) handlePostEditForm(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if !auth.Can(user.ID, auth.Resource{Kind: "post", OwnerID: post.UserID}, auth.ActionEdit) {
		http.Error(w, "Not authorized to edit this post.", http.StatusForbidden)
		return
	}
	util.Render(w, "post_edit.html", map[string]any{"Post": post})
}

func (s *Server) handlePostEdit(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if !auth.Can(user.ID, auth.Resource{Kind: "post", OwnerID: post.UserID}, auth.ActionEdit) {
		http.Error(w, "Not authorized to edit this post.", http.StatusForbidden)
		return
	}

	err := s.Store.UpdatePost(r.Context(), post.ID,
		strings.TrimSpace(r.FormValue("title")),
		r.FormValue("postDescription"),
		strings.TrimSpace(r.FormValue("image1")))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}

func (s *Server) handlePostDelete(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if !auth.Can(user.ID, auth.Resource{Kind: "post", OwnerID: post.UserID}, auth.ActionDelete) {
		http.Error(w, "Unauthorized", http.StatusForbidden)
		return
	}

	if err := s.Store.DeletePost(r.Context(), post.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}

func (s *Server) handleLike(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if err := s.Store.AddLike(r.Context(), user.ID, post.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}

func (s *Server) handleUnlike(w http.ResponseWriter, r *http.Request) {
	post, ok := s.getPost(w, r)
	if !ok {
		return
	}
	user, _ := auth.UserFrom(r.Context())
	if err := s.Store.RemoveLike(r.Context(), user.ID, post.ID); err != nil {
		s.serverError(w, r, err)
		return
	}
	redirectToCollection(w, r, post.CollectionID)
}
