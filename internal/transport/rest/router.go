package rest

import (
	"net/http"

	"github.com/heartmarshall/pentest-stories/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewMux.
type Handlers struct {
	Health    *HealthHandler
	Session   *SessionHandler
	Story     *StoryHandler
	Diagram   *DiagramHandler
	Admin     *AdminHandler
	Functions *FunctionHandler
}

// Guards are the per-route middleware. Nil fields are skipped.
type Guards struct {
	AuthLimit  middleware.Middleware // sign-in, sign-up, refresh, password change
	ResetLimit middleware.Middleware // password reset function and admin reset
	Loaders    middleware.Middleware // per-request dataloaders for the audit viewer
}

// NewMux registers every route. Global middleware (request ID, logging,
// recovery, CORS, auth) is applied by the caller around the returned mux.
func NewMux(h Handlers, g Guards) *http.ServeMux {
	mux := http.NewServeMux()
	authLimited := wrap(g.AuthLimit)
	resetLimited := wrap(g.ResetLimit)
	adminOnly := func(f http.HandlerFunc) http.Handler { return middleware.AdminOnly(f) }
	members := func(f http.HandlerFunc) http.Handler { return middleware.RequireUser(f) }

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/sign-up", authLimited(h.Session.SignUp))
	mux.Handle("POST /auth/sign-in", authLimited(h.Session.SignIn))
	mux.Handle("POST /auth/refresh", authLimited(h.Session.Refresh))
	mux.HandleFunc("POST /auth/sign-out", h.Session.SignOut)
	mux.HandleFunc("GET /me", h.Session.Me)
	mux.HandleFunc("GET /me/profile", h.Session.Me)
	mux.HandleFunc("PATCH /me/profile", h.Session.UpdateProfile)
	mux.Handle("POST /me/password", authLimited(h.Session.ChangePassword))

	// The story directory is for signed-in members only.
	mux.Handle("GET /stories", members(h.Story.List))
	mux.Handle("GET /stories/mine", members(h.Story.ListMine))
	mux.Handle("GET /stories/facets", members(h.Story.Facets))
	mux.Handle("GET /stories/stats", members(h.Story.Stats))
	mux.Handle("GET /stories/{id}", members(h.Story.Get))
	mux.Handle("POST /stories", members(h.Story.Create))
	mux.Handle("PUT /stories/{id}", members(h.Story.Update))
	mux.Handle("DELETE /stories/{id}", members(h.Story.Delete))
	mux.Handle("GET /tags", members(h.Story.ListTags))
	mux.Handle("POST /tags", members(h.Story.CreateTag))
	mux.Handle("GET /verticals", members(h.Story.ListVerticals))

	mux.Handle("GET /diagrams/templates", members(h.Diagram.Templates))
	mux.Handle("GET /diagrams/templates/{name}", members(h.Diagram.Template))
	mux.Handle("POST /stories/{id}/diagram", members(h.Diagram.Attach))
	mux.Handle("POST /stories/{id}/diagram/generate", members(h.Diagram.Generate))

	mux.Handle("GET /admin/users", adminOnly(h.Admin.ListUsers))
	mux.Handle("POST /admin/users/promote-by-email", adminOnly(h.Admin.PromoteByEmail))
	mux.Handle("POST /admin/users/{id}/promote", adminOnly(h.Admin.Promote))
	mux.Handle("POST /admin/users/{id}/block", adminOnly(h.Admin.Block))
	mux.Handle("POST /admin/users/{id}/unblock", adminOnly(h.Admin.Unblock))
	mux.Handle("POST /admin/users/{id}/delete", adminOnly(h.Admin.DeleteUser))
	mux.Handle("POST /admin/users/{id}/reset-password", resetLimited(h.Admin.ResetPassword, middleware.AdminOnly))

	mux.Handle("GET /admin/tags", adminOnly(h.Admin.ListTags))
	mux.Handle("POST /admin/tags", adminOnly(h.Admin.CreateTag))
	mux.Handle("PUT /admin/tags/{id}", adminOnly(h.Admin.UpdateTag))
	mux.Handle("DELETE /admin/tags/{id}", adminOnly(h.Admin.DeleteTag))
	mux.Handle("GET /admin/verticals", adminOnly(h.Admin.ListVerticals))
	mux.Handle("POST /admin/verticals", adminOnly(h.Admin.CreateVertical))
	mux.Handle("PUT /admin/verticals/{id}", adminOnly(h.Admin.UpdateVertical))
	mux.Handle("DELETE /admin/verticals/{id}", adminOnly(h.Admin.DeleteVertical))

	mux.Handle("GET /admin/stories", adminOnly(h.Admin.ListStories))
	mux.Handle("DELETE /admin/stories/{id}", adminOnly(h.Admin.DeleteStory))
	mux.Handle("GET /admin/audit-logs", wrap(g.Loaders)(h.Admin.AuditLogs, middleware.AdminOnly))

	// The function authorizes against stored roles itself, so it is not
	// behind AdminOnly.
	mux.Handle("POST /functions/admin-reset-password", resetLimited(h.Functions.AdminResetPassword))

	return mux
}

// wrap returns a helper that applies inner middleware first and guard
// outermost. A nil guard is skipped.
func wrap(guard middleware.Middleware) func(http.HandlerFunc, ...middleware.Middleware) http.Handler {
	return func(f http.HandlerFunc, inner ...middleware.Middleware) http.Handler {
		mws := make([]middleware.Middleware, 0, len(inner)+1)
		if guard != nil {
			mws = append(mws, guard)
		}
		mws = append(mws, inner...)
		return middleware.Chain(mws...)(f)
	}
}
