package storefront

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"VelvetStore/internal/cart"
	"VelvetStore/internal/catalog"
	"VelvetStore/internal/kv"
	"VelvetStore/internal/scope"
	"VelvetStore/internal/session"
	"VelvetStore/pkg/kit"
)

const (
	HeaderScopeToken = "X-Scope-Token"
	HeaderCartCount  = "X-Cart-Count"
)

type ctxKey string

const scopeKey ctxKey = "scope"

func ScopeFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(scopeKey).(string)
	return v, ok && v != ""
}

// withScope resolves the storage namespace for the request. A client without
// a token gets a fresh scope and its token in X-Scope-Token.
func (s *Server) withScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string

		if tok, ok := kit.BearerToken(r); ok {
			parsed, err := s.tokens.Parse(tok)
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid scope token", nil)
				return
			}
			id = parsed
		} else {
			id = scope.NewID()
			tok, err := s.tokens.New(id)
			if err != nil {
				s.fail(w, r, "issue scope token", err)
				return
			}
			w.Header().Set(HeaderScopeToken, tok)
		}

		ctx := context.WithValue(r.Context(), scopeKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// repos are the repositories bound to one request's scope.
type repos struct {
	catalog *catalog.Repository
	cart    *cart.Repository
	session *session.Repository
}

func (s *Server) reposFor(w http.ResponseWriter, r *http.Request) (repos, error) {
	id, _ := ScopeFromContext(r.Context())

	st, err := kv.Scoped(s.store, id)
	if err != nil {
		return repos{}, err
	}

	log := s.log.With(zap.String("scope", id))
	a := kv.NewAdapter(st, kv.WithLogger(log), kv.WithResetHook(s.metrics.StoreReset))

	badge := func(_ context.Context, count int) {
		w.Header().Set(HeaderCartCount, strconv.Itoa(count))
		log.Debug("cart badge updated", zap.Int("count", count))
	}

	return repos{
		catalog: catalog.NewRepository(a),
		cart:    cart.NewRepository(a, badge),
		session: session.NewRepository(a, s.adminEmail),
	}, nil
}

// requireAdmin sends anyone who is not a logged-in admin to the login page.
// No session and a customer session are handled the same way.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rp, err := s.reposFor(w, r)
		if err != nil {
			s.fail(w, r, "scope repos", err)
			return
		}

		ok, err := rp.session.IsAdmin(r.Context())
		if err != nil {
			s.fail(w, r, "admin check", err)
			return
		}
		if !ok {
			http.Redirect(w, r, s.loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
