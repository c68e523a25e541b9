package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"bitefinder/internal/domain"
	tokenrepo "bitefinder/internal/repository/token"
)

const tokenKindAccess = "access"

type tokenMeta struct {
	UserID    *string
	GuestID   *string
	ExpiresAt time.Time
}

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) IssueUser(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	return m.issue(ctx, tokenrepo.Token{UserID: &userID, Kind: tokenKindAccess, ExpiresAt: time.Now().Add(ttl)})
}

func (m *tokenManager) IssueGuest(ctx context.Context, guestID string, ttl time.Duration) (string, error) {
	return m.issue(ctx, tokenrepo.Token{GuestID: &guestID, Kind: tokenKindAccess, ExpiresAt: time.Now().Add(ttl)})
}

func (m *tokenManager) issue(ctx context.Context, tok tokenrepo.Token) (string, error) {
	for i := 0; i < 5; i++ {
		value, err := randomToken()
		if err != nil {
			return "", err
		}
		tok.Token = value
		err = m.repo.Create(ctx, tok)
		if err == nil {
			return value, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, token string) (tokenMeta, bool) {
	meta, err := m.repo.Get(ctx, token)
	if err != nil {
		return tokenMeta{}, false
	}
	if meta.Kind != tokenKindAccess {
		return tokenMeta{}, false
	}
	if meta.UserID == nil && meta.GuestID == nil {
		return tokenMeta{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return tokenMeta{}, false
	}
	return tokenMeta{
		UserID:    meta.UserID,
		GuestID:   meta.GuestID,
		ExpiresAt: meta.ExpiresAt,
	}, true
}

func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	err := m.repo.Delete(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
