package httpx

import (
	"errors"
	"net/http"

	"gallerie/internal/store"
	"gallerie/internal/util"
)

// postVM is a collection-page post with its comments attached.
type postVM struct {
	store.CollectionPost
	Comments []store.CollectionComment
}

// ------------ home ------------

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	collections, err := s.Store.GetCollections(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	users, err := s.Store.GetUsers(ctx)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	util.Render(w, "home.html", map[string]any{
		"Title":       "Gallerie",
		"Collections": collections,
		"Users":       users,
	})
}

// ------------ collections ------------

func (s *Server) handleCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.Store.GetCollections(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	util.Render(w, "collections.html", map[string]any{
		"Title":       "Collections",
		"Collections": collections,
	})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	collection, err := s.Store.GetCollectionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Collection not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	// two batched queries for the whole page, then group comments by post
	posts, err := s.Store.ListCollectionPosts(ctx, id)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	comments, err := s.Store.ListCommentsByCollection(ctx, id)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	byPost := make(map[int64][]store.CollectionComment)
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	vms := make([]postVM, 0, len(posts))
	for _, p := range posts {
		vms = append(vms, postVM{CollectionPost: p, Comments: byPost[p.ID]})
	}

	util.Render(w, "collection.html", map[string]any{
		"Collection": collection,
		"Posts":      vms,
	})
}
