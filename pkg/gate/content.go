package gate

import "github.com/benefithub/authkit/pkg/rbac"

// Outcome tells the presentation layer what a content gate should render.
type Outcome int

const (
	// OutcomeRenderChildren renders the protected content.
	OutcomeRenderChildren Outcome = iota

	// OutcomeRenderFallback renders the configured fallback content.
	OutcomeRenderFallback

	// OutcomeRenderDenial renders a generic denial explanation
	// (see Decision.DenialMessage).
	OutcomeRenderDenial

	// OutcomeRenderNothing renders nothing at all.
	OutcomeRenderNothing
)

// ContentGate decides whether a block of UI content is shown. It holds
// configuration only; the render itself belongs to the hosting
// application.
type ContentGate struct {
	engine *rbac.Engine
	opts   []Option

	hasFallback bool
	showDenial  bool
}

// ContentOption configures a ContentGate beyond its conditions.
type ContentOption func(*ContentGate)

// WithFallback declares that the host supplies fallback content for
// denied principals.
func WithFallback() ContentOption {
	return func(g *ContentGate) {
		g.hasFallback = true
	}
}

// WithDenialExplanation makes the gate ask for a denial explanation
// instead of rendering nothing when no fallback is configured.
func WithDenialExplanation() ContentOption {
	return func(g *ContentGate) {
		g.showDenial = true
	}
}

// NewContentGate builds a content gate over the given engine, gate
// conditions and content options.
func NewContentGate(eng *rbac.Engine, conditions []Option, opts ...ContentOption) *ContentGate {
	g := &ContentGate{engine: eng, opts: conditions}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resolve evaluates the gate for the principal and maps the decision to
// a render outcome. Loading renders nothing: the gate neither exposes
// protected content nor flashes a denial before the principal resolves.
func (g *ContentGate) Resolve(p *rbac.Principal, loading bool) (Outcome, Decision) {
	d := Evaluate(g.engine, p, loading, g.opts...)

	switch d.Status {
	case StatusAuthorized:
		return OutcomeRenderChildren, d
	case StatusLoading:
		return OutcomeRenderNothing, d
	default:
		if g.hasFallback {
			return OutcomeRenderFallback, d
		}
		if g.showDenial {
			return OutcomeRenderDenial, d
		}
		return OutcomeRenderNothing, d
	}
}
