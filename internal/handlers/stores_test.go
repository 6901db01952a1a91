package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"JEWELVISTA_BACK-END/internal/config"
	"JEWELVISTA_BACK-END/internal/middleware"
	"JEWELVISTA_BACK-END/internal/models"
	"JEWELVISTA_BACK-END/internal/storage"
)

// memUserStore is an in-memory storage.UserStore for handler tests
type memUserStore struct {
	mu     sync.Mutex
	users  map[string]models.User
	incErr error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (s *memUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return storage.ErrUserExists
	}
	s.users[user.Email] = *user
	return nil
}

func (s *memUserStore) Get(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &user, nil
}

func (s *memUserStore) IncrementLoginCount(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incErr != nil {
		return s.incErr
	}
	user, ok := s.users[email]
	if !ok {
		return storage.ErrUserNotFound
	}
	user.LoginCount++
	s.users[email] = user
	return nil
}

// memWishlistStore is an in-memory storage.WishlistStore for handler tests
type memWishlistStore struct {
	mu      sync.Mutex
	entries map[string]map[string]models.WishlistEntry
}

func newMemWishlistStore() *memWishlistStore {
	return &memWishlistStore{entries: map[string]map[string]models.WishlistEntry{}}
}

func (s *memWishlistStore) Put(ctx context.Context, entry *models.WishlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[entry.Email] == nil {
		s.entries[entry.Email] = map[string]models.WishlistEntry{}
	}
	s.entries[entry.Email][entry.ItemID] = *entry
	return nil
}

func (s *memWishlistStore) List(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.WishlistEntry{}
	for _, entry := range s.entries[email] {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (s *memWishlistStore) Delete(ctx context.Context, email, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries[email], itemID)
	return nil
}

// Shared test helpers

func testSession() *config.SessionConfig {
	return &config.SessionConfig{
		Secret:     "test-secret",
		TTL:        time.Hour,
		CookieName: "jv_session",
	}
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(t *testing.T, path string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, email, username string, session *config.SessionConfig) *http.Cookie {
	t.Helper()
	token, err := middleware.GenerateSessionToken(email, username, session)
	if err != nil {
		t.Fatalf("generate session token: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
