package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/repo"
)

func newTestBlogService() *BlogService {
	return &BlogService{Repo: repo.NewBlogStore()}
}

func TestBlogService_CreateAndGet(t *testing.T) {
	t.Parallel()

	svc := newTestBlogService()

	post, err := svc.Create("alice", "first post", "hello")
	require.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)
	assert.Equal(t, domain.StatusPublic, post.Status)

	got, err := svc.Get(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first post", got.Title)

	_, err = svc.Get(999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlogService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestBlogService()

	for _, tt := range []struct {
		name                    string
		author, title, contents string
	}{
		{"missing author", "", "t", "c"},
		{"missing title", "a", "", "c"},
		{"missing contents", "a", "t", ""},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			post, err := svc.Create(tt.author, tt.title, tt.contents)
			assert.Nil(t, post)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBlogService_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	svc := newTestBlogService()

	post, err := svc.Create("alice", "first", "hello")
	require.NoError(t, err)

	updated, err := svc.Update(post.ID, "renamed", "changed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "changed", updated.Contents)

	_, err = svc.UpdateStatus(post.ID, "SECRET")
	require.ErrorIs(t, err, domain.ErrValidation)

	updated, err = svc.UpdateStatus(post.ID, domain.StatusPrivate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPrivate, updated.Status)

	require.NoError(t, svc.Delete(post.ID))
	require.ErrorIs(t, svc.Delete(post.ID), domain.ErrNotFound)
	assert.Empty(t, svc.List())
}

func TestBlogService_ByAuthor(t *testing.T) {
	t.Parallel()

	svc := newTestBlogService()

	_, err := svc.Create("alice", "a1", "x")
	require.NoError(t, err)
	_, err = svc.Create("bob", "b1", "y")
	require.NoError(t, err)
	_, err = svc.Create("alice", "a2", "z")
	require.NoError(t, err)

	posts := svc.ByAuthor("alice")
	require.Len(t, posts, 2)
	assert.Equal(t, "a1", posts[0].Title)
	assert.Equal(t, "a2", posts[1].Title)
}
