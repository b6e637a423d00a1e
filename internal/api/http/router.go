package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/skillforge/backend/internal/api/ai"
	"github.com/skillforge/backend/internal/api/service"
	"github.com/skillforge/backend/pkg/httpx"
	"github.com/skillforge/backend/pkg/jwtx"
	"github.com/skillforge/backend/pkg/slogx"
)

// Router owns the HTTP surface of the API. Routes are registered against a
// standard ServeMux using method patterns, with auth and rate limiting
// applied per route via httpx.Chain.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	Auth    *service.AuthService
	Skills  *service.SkillService
	Goals   *service.GoalService
	Stats   *service.StatsService
	Advisor *ai.Advisor

	verifier  jwtx.Verifier
	startTime time.Time
	version   string
}

type RouterConfig struct {
	Auth    *service.AuthService
	Skills  *service.SkillService
	Goals   *service.GoalService
	Stats   *service.StatsService
	Advisor *ai.Advisor

	Verifier       jwtx.Verifier
	AllowedOrigins []string
	Version        string
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		Mux: http.NewServeMux(),
		middlewares: []httpx.Middleware{
			slogx.HTTPMiddleware(logger),
			httpx.CORS(cfg.AllowedOrigins),
		},
		Auth:      cfg.Auth,
		Skills:    cfg.Skills,
		Goals:     cfg.Goals,
		Stats:     cfg.Stats,
		Advisor:   cfg.Advisor,
		verifier:  cfg.Verifier,
		startTime: time.Now(),
		version:   cfg.Version,
	}
	r.ApplyRoutes()
	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuthRoutes()
	r.registerSkillRoutes()
	r.registerGoalRoutes()
	r.registerAIRoutes()
	r.registerSystemRoutes()
}

// authn guards a route with bearer token verification and a user existence
// check, so tokens for deleted accounts stop working immediately.
func (r *Router) authn() httpx.Middleware {
	return httpx.RequireAuth(r.verifier, r.Auth.UserExists)
}

func (r *Router) registerAuthRoutes() {
	h := &AuthHandler{Auth: r.Auth}

	r.Mux.Handle("POST /api/auth/register", httpx.Chain(
		http.HandlerFunc(h.HandleRegister),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
	r.Mux.Handle("POST /api/auth/login", httpx.Chain(
		http.HandlerFunc(h.HandleLogin),
		httpx.RateLimitByIP(httpx.StrictLimit),
	))
	r.Mux.Handle("GET /api/auth/profile", httpx.Chain(
		http.HandlerFunc(h.HandleProfile),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("PATCH /api/auth/profile", httpx.Chain(
		http.HandlerFunc(h.HandleUpdateProfile),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("GET /api/auth/export", httpx.Chain(
		http.HandlerFunc(h.HandleExport),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("DELETE /api/auth/reset", httpx.Chain(
		http.HandlerFunc(h.HandleReset),
		r.authn(),
		httpx.RateLimitByUser(httpx.StrictLimit),
	))
	r.Mux.Handle("DELETE /api/auth/account", httpx.Chain(
		http.HandlerFunc(h.HandleDeleteAccount),
		r.authn(),
		httpx.RateLimitByUser(httpx.StrictLimit),
	))
}

func (r *Router) registerSkillRoutes() {
	h := &SkillsHandler{Skills: r.Skills, Stats: r.Stats}

	r.Mux.Handle("GET /api/skills", httpx.Chain(
		http.HandlerFunc(h.HandleList),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("GET /api/skills/stats", httpx.Chain(
		http.HandlerFunc(h.HandleStats),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("GET /api/skills/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleGet),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("POST /api/skills", httpx.Chain(
		http.HandlerFunc(h.HandleCreate),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("PUT /api/skills/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleUpdate),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("DELETE /api/skills/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleDelete),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
}

func (r *Router) registerGoalRoutes() {
	h := &GoalsHandler{Goals: r.Goals, Stats: r.Stats}

	r.Mux.Handle("GET /api/goals", httpx.Chain(
		http.HandlerFunc(h.HandleList),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("GET /api/goals/stats", httpx.Chain(
		http.HandlerFunc(h.HandleStats),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("GET /api/goals/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleGet),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("POST /api/goals", httpx.Chain(
		http.HandlerFunc(h.HandleCreate),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("PUT /api/goals/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleUpdate),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("PATCH /api/goals/{id}/progress", httpx.Chain(
		http.HandlerFunc(h.HandleProgress),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
	r.Mux.Handle("DELETE /api/goals/{id}", httpx.Chain(
		http.HandlerFunc(h.HandleDelete),
		r.authn(),
		httpx.RateLimitByUser(httpx.LenientLimit),
	))
}

func (r *Router) registerAIRoutes() {
	h := &AIHandler{Skills: r.Skills, Goals: r.Goals, Stats: r.Stats, Advisor: r.Advisor}

	r.Mux.Handle("GET /api/ai/insights", httpx.Chain(
		http.HandlerFunc(h.HandleInsights),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("GET /api/ai/learning-path", httpx.Chain(
		http.HandlerFunc(h.HandleLearningPath),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("GET /api/ai/skill-suggestions", httpx.Chain(
		http.HandlerFunc(h.HandleSkillSuggestions),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("POST /api/ai/skill-gaps", httpx.Chain(
		http.HandlerFunc(h.HandleSkillGaps),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
	r.Mux.Handle("GET /api/ai/study-plan/{goalId}", httpx.Chain(
		http.HandlerFunc(h.HandleStudyPlan),
		r.authn(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	))
}

func (r *Router) registerSystemRoutes() {
	h := &HealthHandler{StartTime: r.startTime, Version: r.version}

	r.Mux.Handle("GET /api/health", httpx.Chain(
		http.HandlerFunc(h.HandleHealth),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}
