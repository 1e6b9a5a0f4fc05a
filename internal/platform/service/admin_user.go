package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSuperAdminLocked  = errors.New("super admin flags cannot be changed")
	ErrSelfflagForbidden = errors.New("cannot change your own flags")
)

type AdminUserService struct {
	Store store.Store
}

// ListUsers returns the admin user listing with per-content counts.
func (s *AdminUserService) ListUsers(ctx context.Context, f store.UserFilter, page store.Page) ([]store.UserWithCounts, int64, error) {
	return s.Store.Users().List(ctx, f, page.Normalize(DefaultPageSize))
}

// SetUserFlags toggles is_active / can_post on an account. The super
// admin account is immutable and admins cannot lock themselves out.
func (s *AdminUserService) SetUserFlags(ctx context.Context, callerID, userID string, isActive, canPost *bool) error {
	log := slogx.FromContext(ctx)

	if callerID == userID {
		return ErrSelfflagForbidden
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.Role == domain.RoleSuperAdmin {
		return ErrSuperAdminLocked
	}

	if err := s.Store.Users().UpdateFlags(ctx, userID, isActive, canPost); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	log.Info("user flags updated",
		slog.String("user_id", userID),
		slog.String("updated_by", callerID),
	)
	return nil
}
