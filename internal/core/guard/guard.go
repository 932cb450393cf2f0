// Package guard decides, per navigation, whether the requested path may
// render for the current session.
package guard

import (
	"github.com/rs/zerolog"

	"github.com/mykare/auth-core/internal/core/domain"
	"github.com/mykare/auth-core/internal/core/ports"
	"github.com/mykare/auth-core/internal/metrics"
)

// Decision is the outcome of a single guard evaluation.
type Decision int

const (
	// DecisionPending means the session state is still unknown; render a
	// loading state and decide nothing yet.
	DecisionPending Decision = iota
	DecisionAllow
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	default:
		return "pending"
	}
}

// Result carries the decision and, for redirects, the target path.
type Result struct {
	Decision   Decision
	RedirectTo string
}

// SessionSource is the read-only view of the auth service the guard needs:
// the current session plus change notifications.
type SessionSource interface {
	Current() (*domain.Session, domain.SessionState)
	Subscribe(fn func()) (unsubscribe func())
}

// Guard re-evaluates the admit/redirect decision whenever the requested path
// or the session changes. Decisions are never cached: a logout invalidates
// any previous admit on the next evaluation.
type Guard struct {
	source SessionSource
	policy domain.RoutePolicy
	router ports.Router
	exempt map[string]struct{}
	log    zerolog.Logger

	// path is the most recently requested path, re-checked on session change.
	path string
}

// New builds a Guard. The not-found path is always exempt so redirecting to
// it can never loop; extraExempt adds further always-admitted paths.
func New(source SessionSource, policy domain.RoutePolicy, router ports.Router,
	log zerolog.Logger, extraExempt ...string) *Guard {
	exempt := map[string]struct{}{domain.NotFoundPath: {}}
	for _, p := range extraExempt {
		exempt[p] = struct{}{}
	}
	g := &Guard{
		source: source,
		policy: policy,
		router: router,
		exempt: exempt,
		log:    log,
	}
	source.Subscribe(g.refresh)
	return g
}

// Evaluate maps (session, path) to a decision without side effects.
func (g *Guard) Evaluate(path string) Result {
	res := g.decide(path)
	metrics.GuardDecisionsTotal.WithLabelValues(res.Decision.String()).Inc()
	return res
}

// Visit records path as the current navigation target, evaluates it, and
// issues the router command when the decision is a redirect.
func (g *Guard) Visit(path string) Result {
	g.path = path
	res := g.Evaluate(path)
	if res.Decision == DecisionRedirect {
		g.log.Debug().Str("path", path).Str("to", res.RedirectTo).Msg("navigation redirected")
		g.router.Navigate(res.RedirectTo)
	}
	return res
}

// refresh re-runs the decision for the current path after a session change.
func (g *Guard) refresh() {
	if g.path == "" {
		return
	}
	g.Visit(g.path)
}

func (g *Guard) decide(path string) Result {
	if _, ok := g.exempt[path]; ok {
		return Result{Decision: DecisionAllow}
	}

	sess, state := g.source.Current()
	switch state {
	case domain.SessionUnknown:
		return Result{Decision: DecisionPending}
	case domain.SessionAuthenticated:
		if g.policy.Allows(sess.Role, path) {
			return Result{Decision: DecisionAllow}
		}
		return Result{Decision: DecisionRedirect, RedirectTo: domain.NotFoundPath}
	default:
		return Result{Decision: DecisionRedirect, RedirectTo: domain.LoginPath}
	}
}
