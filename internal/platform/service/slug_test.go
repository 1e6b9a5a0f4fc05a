package service

import (
	"context"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Ravi Kumar", "ravi-kumar"},
		{"already lowercase", "ravi", "ravi"},
		{"extra whitespace", "  Ravi   Kumar  ", "ravi-kumar"},
		{"symbols stripped", "Dr. K.V. Rao!", "dr-kv-rao"},
		{"digits kept", "Leader 2024", "leader-2024"},
		{"hyphens collapsed", "a--b---c", "a-b-c"},
		{"leading trailing hyphens", "-ravi-", "ravi"},
		{"telugu characters stripped", "రవి Kumar", "kumar"},
		{"all symbols degenerate", "!@#$%", ""},
		{"mixed tabs and newlines", "Ravi\tKumar\nRao", "ravi-kumar-rao"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeSlug(tc.in))
		})
	}
}

func TestAllocateSlug_CountsUp(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	profiles := st.LeaderProfiles()

	slug, err := AllocateSlug(ctx, profiles, "Ravi Kumar")
	require.NoError(t, err)
	require.Equal(t, "ravi-kumar", slug)

	createProfile(t, st, "ravi-kumar")

	slug, err = AllocateSlug(ctx, profiles, "Ravi Kumar")
	require.NoError(t, err)
	require.Equal(t, "ravi-kumar-1", slug)

	createProfile(t, st, "ravi-kumar-1")

	slug, err = AllocateSlug(ctx, profiles, "Ravi Kumar")
	require.NoError(t, err)
	require.Equal(t, "ravi-kumar-2", slug)
}

func TestAllocateSlug_FreedSlugIsReusable(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	profileID := createProfile(t, st, "ravi-kumar")

	// Allocation re-checks live rows, so a deleted profile frees its
	// slug for the next allocation.
	require.NoError(t, st.LeaderProfiles().Delete(ctx, profileID))

	slug, err := AllocateSlug(ctx, st.LeaderProfiles(), "Ravi Kumar")
	require.NoError(t, err)
	require.Equal(t, "ravi-kumar", slug)
}

// createProfile inserts a leader user plus a profile with the exact slug
// and returns the profile id.
func createProfile(t *testing.T, st store.Store, slug string) string {
	t.Helper()

	user := seedUser(t, st, domain.RoleLeader)
	profile := domain.LeaderProfile{
		ID:          idx.New().String(),
		UserID:      user.ID,
		Slug:        slug,
		Designation: LeaderDesignation,
	}
	require.NoError(t, st.LeaderProfiles().Create(context.Background(), profile))
	return profile.ID
}
