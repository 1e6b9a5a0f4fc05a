package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/cryptox"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/prajasetu/prajasetu/pkg/slogx"
)

var (
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidExpiry        = errors.New("expiry must be in the future")
	ErrAdminInviteForbidden = errors.New("only a super admin can mint admin invites")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteConsumed       = errors.New("used invites cannot be deleted")
)

// mintCodeAttempts bounds retries when a generated code collides with an
// existing one.
const mintCodeAttempts = 5

type InviteService struct {
	Store store.Store
}

// MintInvite creates a new single-use invite code binding a role grant.
// Only SUPER_ADMIN callers may mint ADMIN (or SUPER_ADMIN) invites.
func (s *InviteService) MintInvite(
	ctx context.Context,
	role domain.Role,
	expiresAt *time.Time,
	createdBy string,
	createdByRole domain.Role,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	// 1. Role must be one of the platform roles.
	if !role.Valid() {
		return domain.Invite{}, ErrInvalidRole
	}

	// 2. Admin-granting invites are a privilege escalation path, so
	// they are reserved for the super admin.
	if (role == domain.RoleAdmin || role == domain.RoleSuperAdmin) &&
		createdByRole != domain.RoleSuperAdmin {
		log.Warn("blocked admin invite mint",
			slog.String("created_by", createdBy),
			slog.String("creator_role", string(createdByRole)),
		)
		return domain.Invite{}, ErrAdminInviteForbidden
	}

	// 3. Optional expiry must be in the future.
	if expiresAt != nil && !expiresAt.After(time.Now().UTC()) {
		return domain.Invite{}, ErrInvalidExpiry
	}

	// 4. Generate a code, retrying on the rare collision.
	for attempt := 0; attempt < mintCodeAttempts; attempt++ {
		code, err := cryptox.GenerateInviteCode(cryptox.DefaultInviteCodeLength)
		if err != nil {
			log.Error("failed to generate invite code", slog.Any("error", err))
			return domain.Invite{}, err
		}

		invite := domain.Invite{
			ID:        idx.New().String(),
			Code:      code,
			Role:      role,
			CreatedBy: createdBy,
			ExpiresAt: expiresAt,
		}

		err = s.Store.Invites().Create(ctx, invite)
		if err == nil {
			log.Info("invite minted",
				slog.String("invite_id", invite.ID),
				slog.String("role", string(role)),
			)
			return invite, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to create invite", slog.Any("error", err))
			return domain.Invite{}, err
		}
	}
	return domain.Invite{}, errors.New("service: could not generate a unique invite code")
}

// ListInvites returns invites newest first; used=nil matches all.
func (s *InviteService) ListInvites(ctx context.Context, used *bool, page store.Page) ([]store.InviteListing, int64, error) {
	return s.Store.Invites().List(ctx, used, page.Normalize(DefaultPageSize))
}

// DeleteInvite removes an unused invite. Consumed invites are part of
// the provisioning audit trail and are never deleted.
func (s *InviteService) DeleteInvite(ctx context.Context, inviteID string) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		return err
	}
	if invite.Used {
		return ErrInviteConsumed
	}

	if err := s.Store.Invites().Delete(ctx, inviteID); err != nil {
		if errors.Is(err, store.ErrNoRowsAffected) {
			// Consumed (or deleted) between the read and the delete.
			return ErrInviteConsumed
		}
		return err
	}

	log.Info("invite deleted", slog.String("invite_id", inviteID))
	return nil
}
