package service

import (
	"context"
	"testing"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/stretchr/testify/require"
)

func TestMintInvite(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st}
	admin := seedUser(t, st, domain.RoleAdmin)
	superAdmin := seedUser(t, st, domain.RoleSuperAdmin)

	t.Run("admin mints cadre invite", func(t *testing.T) {
		invite, err := svc.MintInvite(context.Background(),
			domain.RoleCadre, nil, admin.ID, admin.Role)
		require.NoError(t, err)
		require.Len(t, invite.Code, 8)
		require.Equal(t, domain.RoleCadre, invite.Role)
		require.False(t, invite.Used)

		got, err := st.Invites().GetByCode(context.Background(), invite.Code)
		require.NoError(t, err)
		require.Equal(t, invite.ID, got.ID)
	})

	t.Run("admin cannot mint admin invite", func(t *testing.T) {
		_, err := svc.MintInvite(context.Background(),
			domain.RoleAdmin, nil, admin.ID, admin.Role)
		require.ErrorIs(t, err, ErrAdminInviteForbidden)
	})

	t.Run("super admin can mint admin invite", func(t *testing.T) {
		_, err := svc.MintInvite(context.Background(),
			domain.RoleAdmin, nil, superAdmin.ID, superAdmin.Role)
		require.NoError(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := svc.MintInvite(context.Background(),
			domain.Role("VOLUNTEER"), nil, admin.ID, admin.Role)
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects past expiry", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Minute)
		_, err := svc.MintInvite(context.Background(),
			domain.RoleCadre, &past, admin.ID, admin.Role)
		require.ErrorIs(t, err, ErrInvalidExpiry)
	})
}

func TestDeleteInvite(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st}

	t.Run("deletes unused invite", func(t *testing.T) {
		invite := seedInvite(t, st, "DELETEME", domain.RoleCadre, nil)
		require.NoError(t, svc.DeleteInvite(context.Background(), invite.ID))

		_, err := st.Invites().GetByID(context.Background(), invite.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("refuses to delete consumed invite", func(t *testing.T) {
		invite := seedInvite(t, st, "CONSUMED", domain.RoleCadre, nil)
		user := seedUser(t, st, domain.RoleCadre)
		require.NoError(t, st.Invites().MarkUsedIfUnused(context.Background(), invite.ID, user.ID))

		err := svc.DeleteInvite(context.Background(), invite.ID)
		require.ErrorIs(t, err, ErrInviteConsumed)

		// The audit trail row survives.
		got, err := st.Invites().GetByID(context.Background(), invite.ID)
		require.NoError(t, err)
		require.True(t, got.Used)
	})

	t.Run("unknown invite", func(t *testing.T) {
		err := svc.DeleteInvite(context.Background(), "no-such-id")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestListInvites(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &InviteService{Store: st}

	a := seedInvite(t, st, "LIST0001", domain.RoleCadre, nil)
	b := seedInvite(t, st, "LIST0002", domain.RoleLeader, nil)
	consumer := seedUser(t, st, domain.RoleCadre)
	require.NoError(t, st.Invites().MarkUsedIfUnused(context.Background(), b.ID, consumer.ID))

	all, total, err := svc.ListInvites(context.Background(), nil, store.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, all, 2)

	used := true
	onlyUsed, total, err := svc.ListInvites(context.Background(), &used, store.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, b.ID, onlyUsed[0].ID)
	require.Equal(t, consumer.Name, onlyUsed[0].UsedByName)

	unused := false
	onlyUnused, _, err := svc.ListInvites(context.Background(), &unused, store.Page{})
	require.NoError(t, err)
	require.Equal(t, a.ID, onlyUnused[0].ID)
}
