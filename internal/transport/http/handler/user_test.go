package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardhub/internal/model"
)

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	body := gin.H{"fullname": "Alice", "email": "a@x.com", "password": "pw1234"}
	rec := env.do(t, http.MethodPost, "/users/signup", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/users/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToken_InvalidCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signupAndLogin(t, "Alice", "a@x.com", "pw1234")

	rec := env.do(t, http.MethodPost, "/users/token", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestProtectedRoutes_RequireBearerToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/boards/list", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = env.do(t, http.MethodGet, "/boards/list", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.signupAndLogin(t, "Alice", "a@x.com", "pw1234")

	rec := env.do(t, http.MethodGet, "/boards/list", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/users/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The JWT has not expired, but its session record is gone.
	rec = env.do(t, http.MethodGet, "/boards/list", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEndToEnd_SignupToRankedListing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.signupAndLogin(t, "Alice", "a@x.com", "pw1234")

	rec := env.do(t, http.MethodPost, "/boards/create", token, gin.H{
		"name":      "General",
		"is_public": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var board model.Board
	decodeData(t, rec, &board)
	require.NotZero(t, board.ID)

	var alice model.User
	require.NoError(t, env.db.Where("email = ?", "a@x.com").First(&alice).Error)
	assert.Equal(t, alice.ID, board.CreatorID)

	rec = env.do(t, http.MethodPost, "/posts/create", token, gin.H{
		"board_id": board.ID,
		"title":    "Hi",
		"content":  "hello",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var post model.Post
	decodeData(t, rec, &post)
	assert.Equal(t, board.ID, post.BoardID)
	assert.Equal(t, alice.ID, post.AuthorID)
	assert.False(t, post.CreatedAt.IsZero())

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/boards/get/%d", board.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/boards/list?page=1&size=10", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var boards []model.Board
	decodeData(t, rec, &boards)
	require.Len(t, boards, 1)
	assert.Equal(t, board.ID, boards[0].ID)
	assert.EqualValues(t, 1, boards[0].PostCount)
}

func TestEndToEnd_DuplicateBoardNameAcrossUsers(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	aliceToken := env.signupAndLogin(t, "Alice", "a@x.com", "pw1234")
	bobToken := env.signupAndLogin(t, "Bob", "b@x.com", "pw5678")

	rec := env.do(t, http.MethodPost, "/boards/create", aliceToken, gin.H{"name": "Same"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/boards/create", bobToken, gin.H{"name": "Same"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.Board{}).Where("name = ?", "Same").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
