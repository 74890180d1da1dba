package gate

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"

	"github.com/benefithub/authkit/pkg/rbac"
)

// Source yields the current principal for a request. loading=true means
// the principal has not resolved yet (session still being established or
// grants still deriving).
type Source interface {
	Principal(ctx context.Context) (p *rbac.Principal, loading bool)
}

// ContextSource reads the principal installed in the request context by
// the hosting application's session middleware. An absent principal is a
// resolved "not authenticated", never a loading state.
type ContextSource struct{}

func (ContextSource) Principal(ctx context.Context) (*rbac.Principal, bool) {
	p, ok := rbac.PrincipalFromContext(ctx)
	if !ok {
		return nil, false
	}
	return &p, false
}

// Guard is the route-level gate. Its lifecycle per principal is
// Loading -> Unauthenticated | Unauthorized | Authorized; once resolved
// there is no way back to Loading short of a full principal reset in the
// Source.
type Guard struct {
	engine *rbac.Engine
	source Source
	cfg    Config
	opts   []Option
}

// NewGuard builds a route guard over the engine and principal source
// with the given gate conditions.
func NewGuard(eng *rbac.Engine, source Source, cfg Config, conditions ...Option) *Guard {
	if cfg.RedirectParam == "" {
		cfg.RedirectParam = "redirect"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.FallbackPath == "" {
		cfg.FallbackPath = "/"
	}
	return &Guard{engine: eng, source: source, cfg: cfg, opts: conditions}
}

// Decide evaluates the guard for the current principal without any HTTP
// side effect.
func (g *Guard) Decide(ctx context.Context) Decision {
	p, loading := g.source.Principal(ctx)
	return Evaluate(g.engine, p, loading, g.opts...)
}

// Middleware enforces the guard around next:
//
//   - Loading: 503 with Retry-After, since no decision exists yet and a
//     denial would be wrong.
//   - Unauthenticated: redirect to the login path, carrying the original
//     URL for post-login return.
//   - Unauthorized: redirect to the configured unauthorized path; else a
//     denial screen when ShowDenial is set; else redirect to the
//     fallback path.
//   - Authorized: pass the request through unmodified.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := g.Decide(r.Context())

		switch d.Status {
		case StatusAuthorized:
			next.ServeHTTP(w, r)

		case StatusLoading:
			w.Header().Set("Retry-After", "1")
			http.Error(w, "session still resolving", http.StatusServiceUnavailable)

		case StatusUnauthenticated:
			dest := g.cfg.LoginPath + "?" + g.cfg.RedirectParam + "=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, dest, http.StatusSeeOther)

		default: // StatusUnauthorized
			if g.cfg.UnauthorizedPath != "" {
				http.Redirect(w, r, g.cfg.UnauthorizedPath, http.StatusSeeOther)
				return
			}
			if g.cfg.ShowDenial {
				g.renderDenial(w, d)
				return
			}
			http.Redirect(w, r, g.cfg.FallbackPath, http.StatusSeeOther)
		}
	})
}

// renderDenial writes the denial screen with go-back and go-home actions.
func (g *Guard) renderDenial(w http.ResponseWriter, d Decision) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, `<!doctype html>
<html>
<body>
<h1>Access denied</h1>
<p>%s</p>
<p><a href="javascript:history.back()">Go back</a> | <a href="%s">Go to home</a></p>
</body>
</html>
`, html.EscapeString(d.DenialMessage()), html.EscapeString(g.cfg.FallbackPath))
}
