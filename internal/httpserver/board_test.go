package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
)

func createBoard(t *testing.T, env *testEnv, token, title string) models.Board {
	t.Helper()

	rec := env.do(http.MethodPost, "/api/boards", map[string]string{
		"title": title, "contents": "some contents",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var board models.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	return board
}

func TestBoard_CreateAndRead(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	token := env.signIn("a@x.com", "secret123")

	board := createBoard(t, env, token, "first board")
	assert.Equal(t, "alice", board.Author)
	assert.Equal(t, domain.StatusPublic, board.Status)
	assert.NotZero(t, board.ID)

	rec := env.do(http.MethodGet, fmt.Sprintf("/api/boards/%d", board.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/boards", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var boards []models.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boards))
	require.Len(t, boards, 1)

	rec = env.do(http.MethodGet, "/api/boards/search?author=alice", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boards))
	require.Len(t, boards, 1)

	rec = env.do(http.MethodGet, "/api/boards/999", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBoard_ListMine(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	env.signUp("bob", "secret456", "b@x.com")
	aliceToken := env.signIn("a@x.com", "secret123")
	bobToken := env.signIn("b@x.com", "secret456")

	createBoard(t, env, aliceToken, "alice board")
	createBoard(t, env, bobToken, "bob board")

	rec := env.do(http.MethodGet, "/api/boards/my", nil, aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var boards []models.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &boards))
	require.Len(t, boards, 1)
	assert.Equal(t, "alice board", boards[0].Title)
}

func TestBoard_UpdateOwnership(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	env.signUp("bob", "secret456", "b@x.com")
	aliceToken := env.signIn("a@x.com", "secret123")
	bobToken := env.signIn("b@x.com", "secret456")

	board := createBoard(t, env, aliceToken, "alice board")

	body := map[string]string{"title": "renamed", "contents": "changed"}

	rec := env.do(http.MethodPut, fmt.Sprintf("/api/boards/%d", board.ID), body, bobToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPut, fmt.Sprintf("/api/boards/%d", board.ID), body, aliceToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Board
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Title)
}

func TestBoard_DeleteOwnershipAndAdminBypass(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	env.signUp("bob", "secret456", "b@x.com")
	env.createAdmin("admin@x.com", "admin-pass")
	aliceToken := env.signIn("a@x.com", "secret123")
	bobToken := env.signIn("b@x.com", "secret456")
	adminToken := env.signIn("admin@x.com", "admin-pass")

	first := createBoard(t, env, aliceToken, "first")
	second := createBoard(t, env, aliceToken, "second")

	// A valid token with the right role is not enough: bob does not own it.
	rec := env.do(http.MethodDelete, fmt.Sprintf("/api/boards/%d", first.ID), nil, bobToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/boards/%d", first.ID), nil, aliceToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Admin may delete anyone's board.
	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/boards/%d", second.ID), nil, adminToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBoard_StatusPatchIsAdminOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	env.createAdmin("admin@x.com", "admin-pass")
	aliceToken := env.signIn("a@x.com", "secret123")
	adminToken := env.signIn("admin@x.com", "admin-pass")

	board := createBoard(t, env, aliceToken, "board")
	path := fmt.Sprintf("/api/boards/%d/status", board.ID)

	rec := env.do(http.MethodPatch, path, map[string]string{"status": domain.StatusPrivate}, aliceToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPatch, path, map[string]string{"status": domain.StatusPrivate}, adminToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(http.MethodPatch, path, map[string]string{"status": "SECRET"}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticle_SameGuardsAsBoards(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "secret123", "a@x.com")
	env.signUp("bob", "secret456", "b@x.com")
	aliceToken := env.signIn("a@x.com", "secret123")
	bobToken := env.signIn("b@x.com", "secret456")

	rec := env.do(http.MethodPost, "/api/articles", map[string]string{
		"title": "article", "contents": "text",
	}, aliceToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var article models.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &article))

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/articles/%d", article.ID), nil, bobToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/articles/%d", article.ID), nil, aliceToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBlog_PublicRoutes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// No token anywhere: the blog predates the auth pipeline.
	rec := env.do(http.MethodPost, "/api/blog", map[string]string{
		"author": "alice", "title": "post", "contents": "hello",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))

	rec = env.do(http.MethodGet, "/api/blog", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPost, "/api/blog", map[string]string{"title": "no author"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api/blog/%d", post.ID), nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSearch_UnavailableWithoutBackend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/search?q=board", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = env.do(http.MethodGet, "/api/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
