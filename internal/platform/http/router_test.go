package http_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/domain"
	httpapi "github.com/prajasetu/prajasetu/internal/platform/http"
	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/internal/platform/store/drivers/sqlite"
	"github.com/prajasetu/prajasetu/pkg/apiclient"
	"github.com/prajasetu/prajasetu/pkg/cryptox"
	"github.com/prajasetu/prajasetu/pkg/idx"
	"github.com/prajasetu/prajasetu/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-0123456789abcdef0123456789"
	testIssuer = "prajasetu-test"
)

// testEnv bundles an in-memory server with direct store access for
// seeding.
type testEnv struct {
	Server *httptest.Server
	Store  store.Store
	Client *apiclient.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	router := httpapi.NewRouter(verifier, "test", st, logger)

	settings := &service.SettingsService{Store: st}
	router.RegisterService = &service.RegisterService{Store: st}
	router.TokenService = &service.TokenService{
		Signer:    signer,
		Store:     st,
		Issuer:    testIssuer,
		AccessTTL: time.Hour,
	}
	router.InviteService = &service.InviteService{Store: st}
	router.EventService = &service.EventService{Store: st, Settings: settings}
	router.MediaByteService = &service.MediaByteService{Store: st}
	router.CommentService = &service.CommentService{Store: st}
	router.LeaderService = &service.LeaderService{Store: st}
	router.LocationService = &service.LocationService{Store: st}
	router.BannerService = &service.BannerService{Store: st}
	router.AdminUserService = &service.AdminUserService{Store: st}
	router.SettingsService = settings
	router.AnalyticsService = &service.AnalyticsService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Server: server,
		Store:  st,
		Client: apiclient.New(server.URL),
	}
}

// seedInvite inserts an invite (and its creating admin) directly.
func (env *testEnv) seedInvite(t *testing.T, code string, role domain.Role) domain.Invite {
	t.Helper()
	ctx := context.Background()

	creator := env.seedUser(t, "Seeder Admin", domain.RoleSuperAdmin, "seeder123")

	invite := domain.Invite{
		ID:        idx.New().String(),
		Code:      code,
		Role:      role,
		CreatedBy: creator.ID,
	}
	require.NoError(t, env.Store.Invites().Create(ctx, invite))
	return invite
}

var seededMobiles atomic.Int64

func init() {
	seededMobiles.Store(8000000000)
}

// seedUser inserts an account with a real password hash so it can log in.
func (env *testEnv) seedUser(t *testing.T, name string, role domain.Role, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Mobile:       formatMobile(seededMobiles.Add(1)),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CanPost:      true,
	}
	require.NoError(t, env.Store.Users().Create(context.Background(), user))
	return user
}

func formatMobile(n int64) string {
	digits := make([]byte, 10)
	for i := 9; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}

// login returns an authenticated client for a seeded user.
func (env *testEnv) login(t *testing.T, mobile, password string) *apiclient.Client {
	t.Helper()

	resp, err := env.Client.Login(context.Background(), mobile, password)
	require.NoError(t, err)
	return env.Client.WithToken(resp.Token)
}
