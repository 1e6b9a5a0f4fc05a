package platform_test

import (
	"testing"

	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/stretchr/testify/require"
)

// TestCadreRegistrationAndModeration walks the core content flow:
// 1. Admin mints a CADRE invite
// 2. A cadre registers and logs in
// 3. The cadre submits an event report (queues PENDING)
// 4. The admin approves it
// 5. The event appears in the public feed
func TestCadreRegistrationAndModeration(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := apiclient.New(baseURL)
	admin := loginAdmin(t, client)

	code := mintInvite(t, admin, "CADRE")
	cadre := registerMember(t, client, "Ravi Kumar", "9876543210", code)

	event, err := cadre.CreateEvent(t.Context(), apiclient.EventRequest{
		Title:       "Door to door outreach",
		Category:    "OUTREACH",
		Description: "Covered two wards in Guntur East.",
		State:       "Andhra Pradesh",
		District:    "Guntur",
	})
	require.NoError(t, err)
	require.Equal(t, "PENDING", event.Status)

	// Pending events stay out of the public feed.
	feed, err := client.Feed(t.Context(), apiclient.EventFeedOptions{})
	require.NoError(t, err)
	require.Zero(t, feed.Total)

	require.NoError(t, admin.ModerateEvent(t.Context(), event.ID, "APPROVED"))

	feed, err = client.Feed(t.Context(), apiclient.EventFeedOptions{District: "Guntur"})
	require.NoError(t, err)
	require.EqualValues(t, 1, feed.Total)
	require.Equal(t, event.ID, feed.Events[0].ID)
	require.Equal(t, "Ravi Kumar", feed.Events[0].AuthorName)
}

// TestLeaderRegistrationProvisionsProfile verifies that a LEADER invite
// provisions a public profile reachable by slug, and that the leader can
// publish media bytes.
func TestLeaderRegistrationProvisionsProfile(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := apiclient.New(baseURL)
	admin := loginAdmin(t, client)

	code := mintInvite(t, admin, "LEADER")
	leader := registerMember(t, client, "Sita Devi", "9876500001", code)

	page, err := client.GetLeader(t.Context(), "sita-devi")
	require.NoError(t, err)
	require.Equal(t, "Sita Devi", page.Leader.Name)
	require.Equal(t, "Party Leader", page.Leader.Designation)

	mb, err := leader.CreateMediaByte(t.Context(), apiclient.MediaByteRequest{
		VideoURL:  "https://youtube.com/watch?v=abc123",
		VideoType: "youtube",
		Message:   "Namaskaram, quick update from the field.",
	})
	require.NoError(t, err)

	// Viewing bumps the counter.
	got, err := client.GetMediaByte(t.Context(), mb.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ViewCount)

	page, err = client.GetLeader(t.Context(), "sita-devi")
	require.NoError(t, err)
	require.Len(t, page.MediaBytes, 1)
}

// TestInviteIsSingleUse verifies a consumed invite cannot register a
// second account.
func TestInviteIsSingleUse(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := apiclient.New(baseURL)
	admin := loginAdmin(t, client)

	code := mintInvite(t, admin, "CADRE")
	registerMember(t, client, "First Member", "9876500100", code)

	_, err := client.Register(t.Context(), apiclient.RegisterRequest{
		Name:       "Second Member",
		Mobile:     "9876500101",
		Password:   "secret123",
		InviteCode: code,
	})
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
	require.Contains(t, apiErr.Message, "already been used")
}

// TestCommentsOnApprovedEvent verifies the comment flow end to end.
func TestCommentsOnApprovedEvent(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := apiclient.New(baseURL)
	admin := loginAdmin(t, client)

	code := mintInvite(t, admin, "CADRE")
	cadre := registerMember(t, client, "Commenter Cadre", "9876500200", code)

	event, err := cadre.CreateEvent(t.Context(), apiclient.EventRequest{
		Title:       "Medical camp",
		Category:    "SOCIAL_SERVICE",
		Description: "Free health checkups at the village square.",
		State:       "Telangana",
		District:    "Warangal",
	})
	require.NoError(t, err)

	// Comments are rejected until the event is approved.
	_, err = cadre.CommentOnEvent(t.Context(), event.ID, "Great turnout!")
	require.Error(t, err)

	require.NoError(t, admin.ModerateEvent(t.Context(), event.ID, "APPROVED"))

	_, err = cadre.CommentOnEvent(t.Context(), event.ID, "Great turnout!")
	require.NoError(t, err)

	comments, err := client.EventComments(t.Context(), event.ID, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, comments.Total)
	require.Equal(t, "Commenter Cadre", comments.Comments[0].AuthorName)
}

// TestAdminInviteEscalationBlocked verifies an ADMIN cannot mint ADMIN
// invites.
func TestAdminInviteEscalationBlocked(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := apiclient.New(baseURL)
	superAdmin := loginAdmin(t, client)

	adminCode := mintInvite(t, superAdmin, "ADMIN")
	admin := registerMember(t, client, "Regional Admin", "9876500300", adminCode)

	_, err := admin.MintInvite(t.Context(), apiclient.InviteMintRequest{Role: "ADMIN"})
	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Status)

	// Cadre invites are still fine.
	_, err = admin.MintInvite(t.Context(), apiclient.InviteMintRequest{Role: "CADRE"})
	require.NoError(t, err)
}
