package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerie/internal/db"
	"gallerie/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, db.Migrate(d))
	return New(d)
}

func seedUser(t *testing.T, s *Store, username, email string) int64 {
	t.Helper()
	id, err := s.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return id
}

func seedPost(t *testing.T, s *Store, userID, collectionID int64, title string) int64 {
	t.Helper()
	id, err := s.CreatePost(context.Background(), models.Post{
		Title:        title,
		UserID:       userID,
		CollectionID: collectionID,
	})
	require.NoError(t, err)
	return id
}

func TestUserCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := seedUser(t, s, "ana", "ana@x.com")

	u, err := s.GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ana", u.Username)

	u.Bio = "painter"
	u.Age = 30
	require.NoError(t, s.UpdateUser(ctx, u))

	u2, err := s.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "painter", u2.Bio)
	assert.Equal(t, 30, u2.Age)

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	require.NoError(t, s.DeleteUser(ctx, id))
	_, err = s.GetUserByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUserByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionsSeeded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cols, err := s.GetCollections(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cols)

	c, err := s.GetCollectionByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	_, err = s.GetCollectionByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	uid := seedUser(t, s, "ana", "ana@x.com")
	pid := seedPost(t, s, uid, 1, "first")

	p, err := s.GetPostByID(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, "first", p.Title)
	assert.Equal(t, uid, p.UserID)
	assert.Equal(t, int64(1), p.CollectionID)

	require.NoError(t, s.UpdatePost(ctx, pid, "renamed", "desc", "img.png"))
	p, err = s.GetPostByID(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, "renamed", p.Title)
	assert.Equal(t, "img.png", p.Image)

	byUser, err := s.ListPostsByUser(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	byCollection, err := s.ListPostsByCollection(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCollection, 1)

	require.NoError(t, s.DeletePost(ctx, pid))
	_, err = s.GetPostByID(ctx, pid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikesAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	uid := seedUser(t, s, "ana", "ana@x.com")
	pid := seedPost(t, s, uid, 1, "p")

	require.NoError(t, s.AddLike(ctx, uid, pid))
	require.NoError(t, s.AddLike(ctx, uid, pid))

	n, err := s.CountLikesForPost(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.RemoveLike(ctx, uid, pid))
	n, err = s.CountLikesForPost(ctx, pid)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCommentCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	uid := seedUser(t, s, "ana", "ana@x.com")
	pid := seedPost(t, s, uid, 1, "p")

	cid, err := s.CreateComment(ctx, "nice", pid, uid)
	require.NoError(t, err)

	c, err := s.GetCommentByID(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, "nice", c.Content)

	require.NoError(t, s.UpdateComment(ctx, cid, "very nice"))
	byPost, err := s.ListCommentsByPost(ctx, pid)
	require.NoError(t, err)
	require.Len(t, byPost, 1)
	assert.Equal(t, "very nice", byPost[0].Content)

	byUser, err := s.ListCommentsByUser(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, byUser, 1)

	require.NoError(t, s.DeleteComment(ctx, cid))
	_, err = s.GetCommentByID(ctx, cid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionViewQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ana := seedUser(t, s, "ana", "ana@x.com")
	bob := seedUser(t, s, "bob", "bob@x.com")
	p1 := seedPost(t, s, ana, 1, "one")
	p2 := seedPost(t, s, ana, 1, "two")
	seedPost(t, s, ana, 2, "elsewhere")

	require.NoError(t, s.AddLike(ctx, ana, p1))
	require.NoError(t, s.AddLike(ctx, bob, p1))
	_, err := s.CreateComment(ctx, "hi", p1, bob)
	require.NoError(t, err)
	_, err = s.CreateComment(ctx, "hello", p2, ana)
	require.NoError(t, err)

	posts, err := s.ListCollectionPosts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, "ana", p.Author)
		if p.ID == p1 {
			assert.Equal(t, 2, p.Likes)
		} else {
			assert.Equal(t, 0, p.Likes)
		}
	}

	comments, err := s.ListCommentsByCollection(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	authors := []string{comments[0].Author, comments[1].Author}
	assert.Contains(t, authors, "bob")
	assert.Contains(t, authors, "ana")
}

func TestFollows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ana := seedUser(t, s, "ana", "ana@x.com")
	bob := seedUser(t, s, "bob", "bob@x.com")
	eve := seedUser(t, s, "eve", "eve@x.com")

	require.NoError(t, s.Follow(ctx, ana, bob))
	require.NoError(t, s.Follow(ctx, ana, bob)) // duplicate kept single

	follows, err := s.ListFollowsByFollower(ctx, ana)
	require.NoError(t, err)
	require.Len(t, follows, 1)
	assert.Equal(t, bob, follows[0].FollowedID)

	require.NoError(t, s.UpdateFollowByFollower(ctx, ana, eve))
	follows, err = s.ListFollowsByFollower(ctx, ana)
	require.NoError(t, err)
	require.Len(t, follows, 1)
	assert.Equal(t, eve, follows[0].FollowedID)

	all, err := s.GetFollows(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Unfollow(ctx, ana, eve))
	follows, err = s.ListFollowsByFollower(ctx, ana)
	require.NoError(t, err)
	assert.Empty(t, follows)
}
