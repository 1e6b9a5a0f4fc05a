package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/internal/platform/store/drivers/sqlite"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// seedUser inserts a user directly and returns it.
func seedUser(t *testing.T, st store.Store, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:           idx.New().String(),
		Name:         "Seed User " + idx.New().String()[:6],
		Mobile:       randomMobile(),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		IsActive:     true,
		CanPost:      true,
	}
	require.NoError(t, st.Users().Create(context.Background(), user))
	return user
}

// seedInvite inserts an invite with the given code and role, created by
// a fresh admin account.
func seedInvite(t *testing.T, st store.Store, code string, role domain.Role, expiresAt *time.Time) domain.Invite {
	t.Helper()

	creator := seedUser(t, st, domain.RoleSuperAdmin)
	invite := domain.Invite{
		ID:        idx.New().String(),
		Code:      code,
		Role:      role,
		CreatedBy: creator.ID,
		ExpiresAt: expiresAt,
	}
	require.NoError(t, st.Invites().Create(context.Background(), invite))
	return invite
}

var mobileCounter atomic.Int64

func init() { mobileCounter.Store(7000000000) }

func randomMobile() string {
	return formatMobile(mobileCounter.Add(1))
}

func formatMobile(n int64) string {
	digits := make([]byte, 10)
	for i := 9; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}
