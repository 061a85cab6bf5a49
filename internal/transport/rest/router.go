package rest

import (
	"net/http"

	"github.com/runprhq/runpr-backend/internal/observability"
	"github.com/runprhq/runpr-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Avatar  *AvatarHandler
	Health  *HealthHandler

	// AuthMW guards the profile endpoints.
	AuthMW middleware.Middleware
	// AuthRateMW throttles credential endpoints.
	AuthRateMW middleware.Middleware
	// Media serves uploaded files; nil disables the route.
	Media http.Handler
}

// NewRouter builds the ServeMux with all API routes. Cross-cutting
// middleware (request ID, recovery, logging, CORS) wraps the returned
// handler at the app level.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern, metricRoute string, h http.HandlerFunc, mws ...middleware.Middleware) {
		handler := observability.Middleware(metricRoute, middleware.Chain(mws...)(h))
		mux.Handle(pattern, handler)
	}

	route("POST /api/auth/register", "/api/auth/register", deps.Auth.Register, deps.AuthRateMW)
	route("POST /api/auth/login", "/api/auth/login", deps.Auth.Login, deps.AuthRateMW)
	route("POST /api/auth/refresh", "/api/auth/refresh", deps.Auth.Refresh, deps.AuthRateMW)
	route("POST /api/auth/logout", "/api/auth/logout", deps.Auth.Logout)

	route("GET /api/profile", "/api/profile", deps.Profile.Get, deps.AuthMW)
	route("PATCH /api/profile/fields", "/api/profile/fields", deps.Profile.PatchField, deps.AuthMW)
	route("PATCH /api/profile/records/{index}", "/api/profile/records/{index}", deps.Profile.PatchRecord, deps.AuthMW)
	route("POST /api/profile/save", "/api/profile/save", deps.Profile.Save, deps.AuthMW)
	route("POST /api/profile/avatar", "/api/profile/avatar", deps.Avatar.Upload, deps.AuthMW)

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)
	mux.Handle("GET /metrics", observability.Handler())

	if deps.Media != nil {
		mux.Handle("GET /media/", http.StripPrefix("/media/", deps.Media))
	}

	return mux
}
