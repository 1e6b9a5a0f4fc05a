package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prajasetu/prajasetu/internal/platform/service"
	"github.com/prajasetu/prajasetu/internal/platform/store"
	"github.com/prajasetu/prajasetu/pkg/httpx"
	"github.com/prajasetu/prajasetu/pkg/jwtx"
	"github.com/prajasetu/prajasetu/pkg/slogx"

	_ "github.com/prajasetu/prajasetu/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// adminRoles lists the roles allowed on /v1/admin endpoints.
var adminRoles = []string{"ADMIN", "SUPER_ADMIN"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	RegisterService  *service.RegisterService
	TokenService     *service.TokenService
	InviteService    *service.InviteService
	EventService     *service.EventService
	MediaByteService *service.MediaByteService
	CommentService   *service.CommentService
	LeaderService    *service.LeaderService
	LocationService  *service.LocationService
	BannerService    *service.BannerService
	AdminUserService *service.AdminUserService
	SettingsService  *service.SettingsService
	AnalyticsService *service.AnalyticsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEvents()
	r.registerMediaBytes()
	r.registerLeaders()
	r.registerLocations()
	r.registerBanners()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Prajasetu Platform API
//	@version		0.1.0
//	@description	Invite-gated content platform for a regional political party: cadre event
//	@description	reports with moderation, leader profiles and media bytes, a public approved
//	@description	feed by region, and admin tooling.
//	@description
//	@description				Access tokens are HS256-signed JWTs issued by the login endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// Both endpoints take credential material, so both sit behind the
	// strict per-IP limit.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(&RegisterHandler{RegisterService: r.RegisterService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{TokenService: r.TokenService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerEvents() {
	r.Mux.Handle("GET /v1/events",
		httpx.Chain(&EventFeedHandler{EventService: r.EventService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Single-event reads take an optional token: the author and admins
	// can see their pending/rejected events, everyone else only
	// approved ones.
	r.Mux.Handle("GET /v1/events/{id}",
		httpx.Chain(&EventGetHandler{EventService: r.EventService},
			httpx.OptionalAuthn(r.verifier),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /v1/events",
		httpx.Chain(&EventCreateHandler{EventService: r.EventService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/events/{id}",
		httpx.Chain(&EventDeleteHandler{EventService: r.EventService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/events/{id}/comments",
		httpx.Chain(&CommentListHandler{CommentService: r.CommentService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /v1/events/{id}/comments",
		httpx.Chain(&CommentCreateHandler{CommentService: r.CommentService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMediaBytes() {
	r.Mux.Handle("GET /v1/media-bytes",
		httpx.Chain(&MediaByteListHandler{MediaByteService: r.MediaByteService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /v1/media-bytes/{id}",
		httpx.Chain(&MediaByteViewHandler{MediaByteService: r.MediaByteService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /v1/media-bytes",
		httpx.Chain(&MediaByteCreateHandler{MediaByteService: r.MediaByteService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/media-bytes/{id}",
		httpx.Chain(&MediaByteDeleteHandler{MediaByteService: r.MediaByteService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/media-bytes/{id}/comments",
		httpx.Chain(&CommentListHandler{CommentService: r.CommentService, ForMediaByte: true},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /v1/media-bytes/{id}/comments",
		httpx.Chain(&CommentCreateHandler{CommentService: r.CommentService, ForMediaByte: true},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerLeaders() {
	r.Mux.Handle("GET /v1/leaders",
		httpx.Chain(&LeaderListHandler{LeaderService: r.LeaderService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /v1/leaders/{slug}",
		httpx.Chain(&LeaderGetHandler{LeaderService: r.LeaderService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{LocationService: r.LocationService}

	r.Mux.Handle("GET /v1/locations/states",
		httpx.Chain(http.HandlerFunc(h.States),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/locations/states/{id}/districts",
		httpx.Chain(http.HandlerFunc(h.Districts),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/locations/districts/{id}/constituencies",
		httpx.Chain(http.HandlerFunc(h.Constituencies),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerBanners() {
	r.Mux.Handle("GET /v1/banners",
		httpx.Chain(&BannerListHandler{BannerService: r.BannerService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	// secured wraps an admin handler with authn, the role check and a
	// per-user limit.
	secured := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(adminRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/admin/events",
		secured(&ModerationQueueHandler{EventService: r.EventService}))
	r.Mux.Handle("POST /v1/admin/events/{id}/moderate",
		secured(&ModerateHandler{EventService: r.EventService}))

	r.Mux.Handle("POST /v1/admin/invites",
		secured(&InviteMintHandler{InviteService: r.InviteService}))
	r.Mux.Handle("GET /v1/admin/invites",
		secured(&InviteListHandler{InviteService: r.InviteService}))
	r.Mux.Handle("DELETE /v1/admin/invites/{id}",
		secured(&InviteDeleteHandler{InviteService: r.InviteService}))

	r.Mux.Handle("GET /v1/admin/users",
		secured(&UserListHandler{AdminUserService: r.AdminUserService}))
	r.Mux.Handle("PATCH /v1/admin/users/{id}/flags",
		secured(&UserFlagsHandler{AdminUserService: r.AdminUserService}))

	r.Mux.Handle("GET /v1/admin/banners",
		secured(&AdminBannerListHandler{BannerService: r.BannerService}))
	r.Mux.Handle("POST /v1/admin/banners",
		secured(&BannerCreateHandler{BannerService: r.BannerService}))
	r.Mux.Handle("PATCH /v1/admin/banners/{id}",
		secured(&BannerUpdateHandler{BannerService: r.BannerService}))
	r.Mux.Handle("DELETE /v1/admin/banners/{id}",
		secured(&BannerDeleteHandler{BannerService: r.BannerService}))

	r.Mux.Handle("GET /v1/admin/settings",
		secured(&SettingsListHandler{SettingsService: r.SettingsService}))
	r.Mux.Handle("PUT /v1/admin/settings/{key}",
		secured(&SettingUpdateHandler{SettingsService: r.SettingsService}))

	r.Mux.Handle("GET /v1/admin/analytics",
		secured(&AnalyticsHandler{AnalyticsService: r.AnalyticsService}))

	// The constituency leaderboard is the one public analytics cut.
	r.Mux.Handle("GET /v1/analytics/top-constituencies",
		httpx.Chain(&TopConstituenciesHandler{AnalyticsService: r.AnalyticsService},
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
