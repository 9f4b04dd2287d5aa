package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bitmarsh/ticklist/internal/todo/service"
	"github.com/bitmarsh/ticklist/internal/todo/store"
	"github.com/bitmarsh/ticklist/pkg/httpx"
	"github.com/bitmarsh/ticklist/pkg/slogx"

	_ "github.com/bitmarsh/ticklist/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TodoService *service.TodoService
	UserService *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerTodos()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Ticklist API
//	@version		0.1.0
//	@description	A small REST API exposing CRUD operations on todo records plus
//	@description	user registration and token-based authentication.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	AuthToken
//	@in							header
//	@name						x-auth
//	@description				Auth token issued by registration or login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerTodos() {
	h := &TodosHandler{TodoService: r.TodoService}

	// Reads are public; mutations get a moderate per-IP limit.
	r.Mux.Handle("POST /todos",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /todos",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("PATCH /todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	registerHandler := &RegisterHandler{UserService: r.UserService}
	loginHandler := &LoginHandler{UserService: r.UserService}
	meHandler := &MeHandler{UserService: r.UserService}
	logoutHandler := &LogoutHandler{UserService: r.UserService}

	// Credential endpoints get the strict per-IP limit (brute force
	// prevention); authenticated endpoints are limited per user.
	r.Mux.Handle("POST /users",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /users/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /users/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.UserService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /users/me/token",
		httpx.Chain(logoutHandler,
			httpx.AuthnMiddleware(r.UserService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
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
