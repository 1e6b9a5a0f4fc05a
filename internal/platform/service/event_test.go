package service

import (
	"context"
	"testing"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newEventService(st store.Store) *EventService {
	return &EventService{Store: st, Settings: &SettingsService{Store: st}}
}

func validEvent() EventInput {
	return EventInput{
		Title:       "Village outreach drive",
		Category:    domain.CategoryOutreach,
		Description: "Door to door visit covering two wards.",
		State:       "Andhra Pradesh",
		District:    "Guntur",
	}
}

func TestCreateEvent_Moderation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	cadre := seedUser(t, st, domain.RoleCadre)

	t.Run("queues pending by default", func(t *testing.T) {
		event, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, event.Status)
	})

	t.Run("auto-approve setting publishes immediately", func(t *testing.T) {
		require.NoError(t, st.Settings().Set(context.Background(), SettingAutoApprovePosts, "true"))

		event, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
		require.NoError(t, err)
		require.Equal(t, domain.StatusApproved, event.Status)

		require.NoError(t, st.Settings().Set(context.Background(), SettingAutoApprovePosts, "false"))
	})
}

func TestCreateEvent_Validation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	cadre := seedUser(t, st, domain.RoleCadre)

	t.Run("missing title", func(t *testing.T) {
		in := validEvent()
		in.Title = ""
		_, err := svc.CreateEvent(context.Background(), cadre.ID, in)
		require.ErrorIs(t, err, ErrEventInvalid)
	})

	t.Run("bad category", func(t *testing.T) {
		in := validEvent()
		in.Category = domain.EventCategory("PICNIC")
		_, err := svc.CreateEvent(context.Background(), cadre.ID, in)
		require.ErrorIs(t, err, ErrEventInvalid)
	})

	t.Run("too many images", func(t *testing.T) {
		in := validEvent()
		for i := 0; i <= MaxEventImages; i++ {
			in.ImageURLs = append(in.ImageURLs, "https://cdn.example.org/img.jpg")
		}
		_, err := svc.CreateEvent(context.Background(), cadre.ID, in)
		require.ErrorIs(t, err, ErrTooManyImages)
	})

	t.Run("bad social platform", func(t *testing.T) {
		in := validEvent()
		in.SocialLinks = []SocialLinkInput{{Platform: "MYSPACE", URL: "https://example.org"}}
		_, err := svc.CreateEvent(context.Background(), cadre.ID, in)
		require.ErrorIs(t, err, ErrEventInvalid)
	})

	t.Run("blocked poster", func(t *testing.T) {
		blocked := seedUser(t, st, domain.RoleCadre)
		canPost := false
		require.NoError(t, st.Users().UpdateFlags(context.Background(), blocked.ID, nil, &canPost))

		_, err := svc.CreateEvent(context.Background(), blocked.ID, validEvent())
		require.ErrorIs(t, err, ErrPostingDisabled)
	})
}

func TestCreateEvent_GalleryIsAtomic(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	cadre := seedUser(t, st, domain.RoleCadre)
	ctx := context.Background()

	// Two images sharing one id make the second gallery insert fail after
	// the event row and the first image already landed.
	imgID := idx.New().String()
	event := domain.Event{
		ID:          idx.New().String(),
		UserID:      cadre.ID,
		Title:       "Gallery event",
		Category:    domain.CategoryOutreach,
		Description: "Photo walk through the market ward.",
		State:       "Andhra Pradesh",
		District:    "Guntur",
		Language:    "te",
		Status:      domain.StatusPending,
	}
	event.Images = []domain.EventImage{
		{ID: imgID, EventID: event.ID, URL: "https://cdn.example.org/a.jpg", Position: 0},
		{ID: imgID, EventID: event.ID, URL: "https://cdn.example.org/b.jpg", Position: 1},
	}

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Events().Create(ctx, event)
	})
	require.Error(t, err)

	// No orphaned event row with a partial gallery survives the failure.
	_, err = st.Events().GetByID(ctx, event.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPublicFeed_OnlyApproved(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	cadre := seedUser(t, st, domain.RoleCadre)

	pending, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, pending.Status)

	approved, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
	require.NoError(t, err)
	require.NoError(t, svc.Moderate(context.Background(), approved.ID, domain.StatusApproved))

	feed, total, err := svc.PublicFeed(context.Background(), store.EventFilter{}, store.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, approved.ID, feed[0].ID)

	// The status filter cannot be overridden from outside.
	feed, _, err = svc.PublicFeed(context.Background(),
		store.EventFilter{Status: domain.StatusPending}, store.Page{})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, approved.ID, feed[0].ID)
}

func TestPublicFeed_RegionFilter(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	require.NoError(t, st.Settings().Set(context.Background(), SettingAutoApprovePosts, "true"))
	cadre := seedUser(t, st, domain.RoleCadre)

	guntur, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
	require.NoError(t, err)

	in := validEvent()
	in.District = "Krishna"
	_, err = svc.CreateEvent(context.Background(), cadre.ID, in)
	require.NoError(t, err)

	feed, total, err := svc.PublicFeed(context.Background(),
		store.EventFilter{District: "Guntur"}, store.Page{})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, guntur.ID, feed[0].ID)
}

func TestGetEvent_Visibility(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	cadre := seedUser(t, st, domain.RoleCadre)
	stranger := seedUser(t, st, domain.RoleCadre)
	admin := seedUser(t, st, domain.RoleAdmin)

	pending, err := svc.CreateEvent(context.Background(), cadre.ID, validEvent())
	require.NoError(t, err)

	// Author and admin can see the pending event; others cannot.
	_, err = svc.GetEvent(context.Background(), pending.ID, cadre.ID, cadre.Role)
	require.NoError(t, err)
	_, err = svc.GetEvent(context.Background(), pending.ID, admin.ID, admin.Role)
	require.NoError(t, err)
	_, err = svc.GetEvent(context.Background(), pending.ID, stranger.ID, stranger.Role)
	require.ErrorIs(t, err, ErrEventNotFound)

	require.NoError(t, svc.Moderate(context.Background(), pending.ID, domain.StatusApproved))
	_, err = svc.GetEvent(context.Background(), pending.ID, "", domain.Role(""))
	require.NoError(t, err)
}

func TestDeleteEvent_Authorization(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := newEventService(st)
	author := seedUser(t, st, domain.RoleCadre)
	stranger := seedUser(t, st, domain.RoleCadre)
	admin := seedUser(t, st, domain.RoleAdmin)

	event, err := svc.CreateEvent(context.Background(), author.ID, validEvent())
	require.NoError(t, err)

	err = svc.DeleteEvent(context.Background(), event.ID, stranger.ID, stranger.Role)
	require.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, svc.DeleteEvent(context.Background(), event.ID, author.ID, author.Role))

	other, err := svc.CreateEvent(context.Background(), author.ID, validEvent())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEvent(context.Background(), other.ID, admin.ID, admin.Role))
}
