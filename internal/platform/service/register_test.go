package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/stretchr/testify/require"
)

func validInput(code string) RegisterInput {
	return RegisterInput{
		Name:       "Ravi Kumar",
		Mobile:     randomMobile(),
		Password:   "secret1",
		InviteCode: code,
		State:      "Andhra Pradesh",
		District:   "Guntur",
	}
}

func TestRegister_CadreSuccess(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	invite := seedInvite(t, st, "CADRE2024", domain.RoleCadre, nil)

	in := validInput("CADRE2024")
	user, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "Ravi Kumar", user.Name)
	require.Equal(t, in.Mobile, user.Mobile)
	require.Equal(t, domain.RoleCadre, user.Role)
	require.NotEmpty(t, user.ID)

	// Invite is consumed and points at the new account.
	got, err := st.Invites().GetByID(context.Background(), invite.ID)
	require.NoError(t, err)
	require.True(t, got.Used)
	require.Equal(t, user.ID, got.UsedBy)

	// No leader profile for a cadre registration.
	_, err = st.LeaderProfiles().GetByUserID(context.Background(), user.ID)
	require.Error(t, err)
}

func TestRegister_LeaderGetsProfileAndSlug(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	seedInvite(t, st, "LEADER2024", domain.RoleLeader, nil)

	in := validInput("LEADER2024")
	in.Constituency = "Guntur (Urban)"
	user, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, domain.RoleLeader, user.Role)

	profile, err := st.LeaderProfiles().GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, "ravi-kumar", profile.Slug)
	require.Equal(t, LeaderDesignation, profile.Designation)
	require.Equal(t, "Guntur (Urban)", profile.Constituency)
}

func TestRegister_CollidingNamesGetSuffixedSlugs(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	seedInvite(t, st, "LEAD0001", domain.RoleLeader, nil)
	seedInvite(t, st, "LEAD0002", domain.RoleLeader, nil)

	first, err := svc.Register(context.Background(), validInput("LEAD0001"))
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), validInput("LEAD0002"))
	require.NoError(t, err)

	p1, err := st.LeaderProfiles().GetByUserID(context.Background(), first.ID)
	require.NoError(t, err)
	p2, err := st.LeaderProfiles().GetByUserID(context.Background(), second.ID)
	require.NoError(t, err)

	require.Equal(t, "ravi-kumar", p1.Slug)
	require.Equal(t, "ravi-kumar-1", p2.Slug)
}

func TestRegister_ValidationOrder(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	seedInvite(t, st, "CADRE2024", domain.RoleCadre, nil)

	t.Run("missing fields", func(t *testing.T) {
		in := validInput("CADRE2024")
		in.Name = ""
		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrMissingField)

		in = validInput("")
		_, err = svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("invalid mobile format", func(t *testing.T) {
		in := validInput("CADRE2024")
		in.Mobile = "12345"
		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidMobileFormat)

		in.Mobile = "987654321x"
		_, err = svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidMobileFormat)
	})

	t.Run("duplicate mobile", func(t *testing.T) {
		existing := seedUser(t, st, domain.RoleCadre)
		in := validInput("CADRE2024")
		in.Mobile = existing.Mobile
		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrDuplicateMobile)
	})

	t.Run("unknown invite code", func(t *testing.T) {
		_, err := svc.Register(context.Background(), validInput("NO-SUCH-CODE"))
		require.ErrorIs(t, err, ErrInvalidInviteCode)
	})

	t.Run("weak password checked after invite", func(t *testing.T) {
		in := validInput("NO-SUCH-CODE")
		in.Password = "abc"
		_, err := svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidInviteCode)

		in = validInput("CADRE2024")
		in.Password = "abc"
		_, err = svc.Register(context.Background(), in)
		require.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestRegister_InviteExpired(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}

	past := time.Now().UTC().Add(-time.Hour)
	invite := seedInvite(t, st, "EXPIRED1", domain.RoleCadre, &past)

	_, err := svc.Register(context.Background(), validInput("EXPIRED1"))
	require.ErrorIs(t, err, ErrInviteExpired)

	// The expired invite stays unused.
	got, err := st.Invites().GetByID(context.Background(), invite.ID)
	require.NoError(t, err)
	require.False(t, got.Used)
}

func TestRegister_SecondUseOfInviteFails(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	seedInvite(t, st, "ONCE0001", domain.RoleLeader, nil)

	_, err := svc.Register(context.Background(), validInput("ONCE0001"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validInput("ONCE0001"))
	require.ErrorIs(t, err, ErrInviteAlreadyUsed)

	// Exactly one profile exists; the failed attempt left no writes.
	_, total, err := st.LeaderProfiles().List(context.Background(), store.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestRegister_ConcurrentSameInvite(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	seedInvite(t, st, "RACE0001", domain.RoleCadre, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), validInput("RACE0001"))
		}(i)
	}
	wg.Wait()

	// Exactly one winner, and the loser sees the invite as consumed.
	if errs[0] == nil {
		require.ErrorIs(t, errs[1], ErrInviteAlreadyUsed)
	} else {
		require.NoError(t, errs[1])
		require.ErrorIs(t, errs[0], ErrInviteAlreadyUsed)
	}
}

func TestRegister_RollbackLeavesNoOrphanAccount(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &RegisterService{Store: st}
	invite := seedInvite(t, st, "ROLLBACK1", domain.RoleCadre, nil)

	// Consume the invite between validation and the transactional CAS by
	// marking it used directly.
	require.NoError(t, st.Invites().MarkUsedIfUnused(context.Background(), invite.ID, "someone-else"))

	in := validInput("ROLLBACK1")
	_, err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrInviteAlreadyUsed)

	// The account created inside the transaction was rolled back.
	_, err = st.Users().GetByMobile(context.Background(), in.Mobile)
	require.Error(t, err)
}
