package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"tableside/internal/domain"
	sessionrepo "tableside/internal/repository/session"
)

type sessionMeta struct {
	RestaurantID string
	ExpiresAt    time.Time
}

type sessionManager struct {
	repo sessionrepo.Repository
}

func newSessionManager(repo sessionrepo.Repository) *sessionManager {
	return &sessionManager{repo: repo}
}

func (m *sessionManager) Issue(ctx context.Context, restaurantID string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, sessionrepo.Session{
			Token:        token,
			RestaurantID: restaurantID,
			ExpiresAt:    expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("session token collision")
}

func (m *sessionManager) Validate(ctx context.Context, token string) (sessionMeta, bool) {
	s, err := m.repo.Get(ctx, token)
	if err != nil {
		return sessionMeta{}, false
	}
	if time.Now().After(s.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return sessionMeta{}, false
	}
	return sessionMeta{RestaurantID: s.RestaurantID, ExpiresAt: s.ExpiresAt}, true
}

func (m *sessionManager) Revoke(ctx context.Context, token string) error {
	return m.repo.Delete(ctx, token)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
