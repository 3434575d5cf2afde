package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boardhub/internal/app"
	"boardhub/internal/model"
	"boardhub/internal/repository"
	"boardhub/internal/transport/http/middleware"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.Post{},
		&model.ActivityLog{},
	))

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	postRepo := repository.NewPostRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	authService := app.NewAuthService(userRepo, newMemoryTokenStore(), "test-secret", 30*time.Minute)
	boardService := app.NewBoardService(boardRepo, nil)
	postService := app.NewPostService(postRepo, boardRepo, nil)
	activityService := app.NewActivityService(activityRepo)

	userHandler := NewUserHandler(authService)
	boardHandler := NewBoardHandler(boardService)
	postHandler := NewPostHandler(postService)
	activityHandler := NewActivityHandler(activityService)

	authRequired := middleware.AuthRequired(authService)

	router := gin.New()

	users := router.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/token", userHandler.Token)
	users.POST("/logout", authRequired, userHandler.Logout)
	users.GET("/activity", authRequired, activityHandler.List)

	boards := router.Group("/boards")
	boards.Use(authRequired)
	boards.POST("/create", boardHandler.Create)
	boards.PUT("/update", boardHandler.Update)
	boards.DELETE("/delete/:board_id", boardHandler.Delete)
	boards.GET("/get/:board_id", boardHandler.Get)
	boards.GET("/list", boardHandler.List)

	posts := router.Group("/posts")
	posts.Use(authRequired)
	posts.POST("/create", postHandler.Create)
	posts.PUT("/update", postHandler.Update)
	posts.DELETE("/delete/:post_id", postHandler.Delete)
	posts.GET("/get/:post_id", postHandler.Get)
	posts.GET("/list", postHandler.List)

	return &testEnv{router: router, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) signupAndLogin(t *testing.T, fullname, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/users/signup", "", gin.H{
		"fullname": fullname,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = e.do(t, http.MethodPost, "/users/token", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.Data.TokenType)
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if len(envelope.Data) == 0 {
		// Empty lists are omitted from the envelope.
		return
	}
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// memoryTokenStore stands in for the redis-backed store in handler tests.
type memoryTokenStore struct {
	mu      sync.Mutex
	records map[uint]memoryTokenRecord
}

type memoryTokenRecord struct {
	token     string
	expiresAt time.Time
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{records: map[uint]memoryTokenRecord{}}
}

func (s *memoryTokenStore) Save(_ context.Context, userID uint, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[userID] = memoryTokenRecord{token: token, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryTokenStore) Get(_ context.Context, userID uint) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[userID]
	if !ok || time.Now().After(record.expiresAt) {
		return "", false, nil
	}
	return record.token, true, nil
}

func (s *memoryTokenStore) Delete(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userID)
	return nil
}
