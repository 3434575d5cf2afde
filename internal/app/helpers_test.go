package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boardhub/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Board{},
		&model.Post{},
		&model.ActivityLog{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, fullname, email string) *model.User {
	t.Helper()

	user := &model.User{
		Fullname:     fullname,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

type fakeActivityPublisher struct {
	mu     sync.Mutex
	events []model.ActivityLog
	fail   bool
}

func (p *fakeActivityPublisher) Publish(_ context.Context, event model.ActivityLog) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("broker down")
	}
	p.events = append(p.events, event)
	return nil
}

func (p *fakeActivityPublisher) published() []model.ActivityLog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.ActivityLog(nil), p.events...)
}

type fakeTokenStore struct {
	mu       sync.Mutex
	records  map[uint]fakeTokenRecord
	failSave bool
	failGet  bool
}

type fakeTokenRecord struct {
	token     string
	expiresAt time.Time
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{records: map[uint]fakeTokenRecord{}}
}

func (s *fakeTokenStore) Save(_ context.Context, userID uint, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("store down")
	}
	s.records[userID] = fakeTokenRecord{token: token, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *fakeTokenStore) Get(_ context.Context, userID uint) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return "", false, errors.New("store down")
	}
	record, ok := s.records[userID]
	if !ok || time.Now().After(record.expiresAt) {
		return "", false, nil
	}
	return record.token, true, nil
}

func (s *fakeTokenStore) Delete(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userID)
	return nil
}
