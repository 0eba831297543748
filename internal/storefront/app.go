package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"VelvetStore/internal/kv"
	"VelvetStore/internal/scope"
	"VelvetStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Store      kv.Store
	Tokens     *scope.TokenMaker
	AdminEmail string
	LoginPath  string

	LoginPerMin    int
	RegisterPerMin int

	Now func() time.Time
}

const (
	maxBodyBytes = 1 << 20
	readyTimeout = 1 * time.Second
	limitWindow  = time.Minute

	defaultLoginPath = "/session"
)

type Server struct {
	store      kv.Store
	tokens     *scope.TokenMaker
	log        *zap.Logger
	metrics    *kit.Metrics
	adminEmail string
	loginPath  string
	now        func() time.Time
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		store:      deps.Store,
		tokens:     deps.Tokens,
		log:        log,
		adminEmail: deps.AdminEmail,
		loginPath:  deps.LoginPath,
		now:        deps.Now,
	}
	if s.loginPath == "" {
		s.loginPath = defaultLoginPath
	}
	if s.now == nil {
		s.now = time.Now
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer(log))
	r.Use(kit.Logging(log))

	if httpDeps.Registry != nil {
		s.metrics = kit.NewMetrics(httpDeps.Registry)
		r.Use(s.metrics.Middleware(httpDeps.Service))

		if httpDeps.MetricsEnabled {
			r.With(kit.MetricsAuth(httpDeps.MetricsToken)).
				Handle("/metrics", promhttp.HandlerFor(httpDeps.Registry, promhttp.HandlerOpts{}))
		}
	}

	r.Get("/healthz", healthz)
	r.Get("/readyz", s.readyz)

	loginLimiter := kit.NewIPRateLimiter(deps.LoginPerMin, limitWindow)
	registerLimiter := kit.NewIPRateLimiter(deps.RegisterPerMin, limitWindow)

	r.Group(func(sr chi.Router) {
		sr.Use(s.withScope)

		sr.Get("/products", s.listProducts)
		sr.Get("/products/new", s.newArrivals)
		sr.Get("/products/{id}", s.getProduct)
		sr.Get("/products/{id}/related", s.relatedProducts)

		sr.Get("/cart", s.getCart)
		sr.Delete("/cart", s.clearCart)
		sr.Post("/cart/items", s.addCartItem)
		sr.Patch("/cart/items/{index}", s.updateCartItem)
		sr.Delete("/cart/items/{index}", s.removeCartItem)

		sr.Post("/checkout", s.checkout)

		sr.Get("/session", s.getSession)
		sr.Delete("/session", s.logout)
		sr.With(loginLimiter.Middleware).Post("/session/login", s.login)
		sr.With(registerLimiter.Middleware).Post("/session/register", s.register)

		sr.Route("/admin", func(ar chi.Router) {
			ar.Use(s.requireAdmin)
			ar.Get("/products", s.adminListProducts)
			ar.Post("/products", s.adminCreateProduct)
			ar.Put("/products/{id}", s.adminReplaceProduct)
			ar.Delete("/products/{id}", s.adminDeleteProduct)
		})
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.log.Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// fail logs err and answers with a generic 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log.Error(msg,
		zap.Error(err),
		zap.String("request_id", chimw.GetReqID(r.Context())),
	)
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
