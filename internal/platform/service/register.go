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
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidMobileFormat = errors.New("mobile must be exactly 10 digits")
	ErrDuplicateMobile     = errors.New("mobile already registered")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrInviteAlreadyUsed   = errors.New("invite has already been used")
	ErrInviteExpired       = errors.New("invite has expired")
	ErrWeakPassword        = errors.New("password must be at least 6 characters")
)

// LeaderDesignation is the default designation stamped on profiles
// provisioned during registration.
const LeaderDesignation = "Party Leader"

// minPasswordLength is enforced server-side even though clients also
// validate it; requests do not all come from our clients.
const minPasswordLength = 6

// slugAllocateAttempts bounds the create/retry loop when two colliding
// display names register at the same instant.
const slugAllocateAttempts = 5

type RegisterService struct {
	Store store.Store
}

// RegisterInput is everything a prospective member submits. Role is
// deliberately absent: the invite is authoritative.
type RegisterInput struct {
	Name         string
	Mobile       string
	Password     string
	InviteCode   string
	State        string
	District     string
	Constituency string
}

// Register runs the invite-gated signup workflow: validate, consume the
// invite, create the account, and provision a leader profile when the
// invite grants LEADER. All writes happen in one transaction; the invite
// consumption is an atomic conditional update so two concurrent requests
// with the same code cannot both succeed.
func (s *RegisterService) Register(ctx context.Context, in RegisterInput) (domain.PublicUser, error) {
	log := slogx.FromContext(ctx)

	// 1. Pure input checks, first failure wins.
	if err := validateRequired(in); err != nil {
		return domain.PublicUser{}, err
	}
	if err := validateMobileFormat(in.Mobile); err != nil {
		return domain.PublicUser{}, err
	}

	// 2. Mobile must not already belong to an account.
	_, err := s.Store.Users().GetByMobile(ctx, in.Mobile)
	switch {
	case err == nil:
		return domain.PublicUser{}, ErrDuplicateMobile
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up mobile", slog.Any("error", err))
		return domain.PublicUser{}, err
	}

	// 3. The invite must exist, be unused, and not be expired.
	invite, err := s.Store.Invites().GetByCode(ctx, in.InviteCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PublicUser{}, ErrInvalidInviteCode
		}
		log.Error("failed to look up invite", slog.Any("error", err))
		return domain.PublicUser{}, err
	}
	if invite.Used {
		return domain.PublicUser{}, ErrInviteAlreadyUsed
	}
	if invite.Expired(time.Now().UTC()) {
		return domain.PublicUser{}, ErrInviteExpired
	}

	if err := validatePassword(in.Password); err != nil {
		return domain.PublicUser{}, err
	}

	// 4. Hash before opening the transaction; bcrypt takes a while and
	// there is no reason to hold a write transaction open for it.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.PublicUser{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         in.Name,
		Mobile:       in.Mobile,
		PasswordHash: hash,
		Role:         invite.Role,
		State:        in.State,
		District:     in.District,
		Constituency: in.Constituency,
		IsActive:     true,
		CanPost:      true,
		UsedInviteID: invite.ID,
	}

	// 5. Account, invite consumption and leader profile are one logical
	// unit: any failure rolls every write back.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Lost a race on the unique mobile constraint.
				return ErrDuplicateMobile
			}
			return err
		}

		// Exactly one concurrent caller can flip used=false to true;
		// everyone else learns here that the invite is gone.
		if err := tx.Invites().MarkUsedIfUnused(ctx, invite.ID, user.ID); err != nil {
			if errors.Is(err, store.ErrNoRowsAffected) {
				return ErrInviteAlreadyUsed
			}
			return err
		}

		if invite.Role == domain.RoleLeader {
			if err := s.provisionLeaderProfile(ctx, tx, user); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return domain.PublicUser{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
		slog.String("invite_id", invite.ID),
	)

	return user.Public(), nil
}

// provisionLeaderProfile allocates a unique slug and creates the profile.
// A colliding registration can slip between the existence check and the
// insert, so the unique constraint is treated as a signal to re-allocate.
func (s *RegisterService) provisionLeaderProfile(ctx context.Context, tx store.Tx, user domain.User) error {
	for attempt := 0; attempt < slugAllocateAttempts; attempt++ {
		slug, err := AllocateSlug(ctx, tx.LeaderProfiles(), user.Name)
		if err != nil {
			return err
		}

		profile := domain.LeaderProfile{
			ID:           idx.New().String(),
			UserID:       user.ID,
			Slug:         slug,
			Designation:  LeaderDesignation,
			Constituency: user.Constituency,
		}

		err = tx.LeaderProfiles().Create(ctx, profile)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return err
		}
	}
	return errors.New("service: could not allocate a unique leader slug")
}

func validateRequired(in RegisterInput) error {
	if in.Name == "" || in.Mobile == "" || in.Password == "" || in.InviteCode == "" {
		return ErrMissingField
	}
	return nil
}

func validateMobileFormat(mobile string) error {
	if len(mobile) != 10 {
		return ErrInvalidMobileFormat
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return ErrInvalidMobileFormat
		}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
