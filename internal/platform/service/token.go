package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/cryptox"
	"github.com/prajasetu/prajasetu/pkg/jwtx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type TokenService struct {
	Signer    jwtx.Signer
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

// Login verifies mobile/password and issues a signed access token. A
// generic ErrInvalidCredentials covers unknown mobiles, wrong passwords
// and deactivated accounts alike so the response doesn't leak which one
// failed.
func (s *TokenService) Login(ctx context.Context, mobile, password string) (string, domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	if mobile == "" || password == "" {
		return "", domain.PublicUser{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.PublicUser{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return "", domain.PublicUser{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("mobile", mobile))
		return "", domain.PublicUser{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info("login rejected for inactive account", slog.String("user_id", user.ID))
		return "", domain.PublicUser{}, ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		user.ID, user.Name, user.Mobile, string(user.Role),
		ttl, s.Issuer, time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return "", domain.PublicUser{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return token, user.Public(), nil
}
