package guard

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mykare/auth-core/internal/core/domain"
)

// stubSource is a hand-driven session source: tests flip the state and fire
// the subscribers the way the auth service would.
type stubSource struct {
	session *domain.Session
	state   domain.SessionState
	subs    []func()
}

func (s *stubSource) Current() (*domain.Session, domain.SessionState) {
	return s.session, s.state
}

func (s *stubSource) Subscribe(fn func()) func() {
	s.subs = append(s.subs, fn)
	return func() {}
}

func (s *stubSource) set(session *domain.Session, state domain.SessionState) {
	s.session = session
	s.state = state
	for _, fn := range s.subs {
		fn()
	}
}

type recordingRouter struct {
	paths []string
}

func (r *recordingRouter) Navigate(path string) { r.paths = append(r.paths, path) }

func (r *recordingRouter) last() string {
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[len(r.paths)-1]
}

func newTestGuard() (*Guard, *stubSource, *recordingRouter) {
	source := &stubSource{state: domain.SessionUnknown}
	router := &recordingRouter{}
	g := New(source, domain.DefaultRoutePolicy(), router, zerolog.Nop())
	return g, source, router
}

func TestGuard_ExemptPathAlwaysAdmitted(t *testing.T) {
	g, _, _ := newTestGuard()

	// Session state is still unknown, yet the exempt path renders.
	if res := g.Evaluate(domain.NotFoundPath); res.Decision != DecisionAllow {
		t.Fatalf("expected allow for exempt path, got %v", res.Decision)
	}
}

func TestGuard_ExtraExemptPaths(t *testing.T) {
	source := &stubSource{state: domain.SessionAnonymous}
	router := &recordingRouter{}
	g := New(source, domain.DefaultRoutePolicy(), router, zerolog.Nop(), domain.LoginPath)

	if res := g.Evaluate(domain.LoginPath); res.Decision != DecisionAllow {
		t.Fatalf("expected allow for exempted login path, got %v", res.Decision)
	}
}

func TestGuard_PendingWhileUnknown(t *testing.T) {
	g, _, router := newTestGuard()

	res := g.Visit(domain.HomePath)
	if res.Decision != DecisionPending {
		t.Fatalf("expected pending while session unknown, got %v", res.Decision)
	}
	if len(router.paths) != 0 {
		t.Fatalf("pending decision must not navigate, got %v", router.paths)
	}
}

func TestGuard_AuthenticatedAllowedByPolicy(t *testing.T) {
	g, source, _ := newTestGuard()
	source.session = &domain.Session{Username: "admin", Role: domain.RoleAdmin}
	source.state = domain.SessionAuthenticated

	if res := g.Evaluate(domain.DashboardPath); res.Decision != DecisionAllow {
		t.Fatalf("expected admin admitted to dashboard, got %v", res.Decision)
	}
}

func TestGuard_WrongRoleRedirectsToNotFound(t *testing.T) {
	g, source, router := newTestGuard()
	source.session = &domain.Session{Username: "alice", Role: domain.RoleUser}
	source.state = domain.SessionAuthenticated

	res := g.Visit(domain.DashboardPath)
	if res.Decision != DecisionRedirect || res.RedirectTo != domain.NotFoundPath {
		t.Fatalf("expected redirect to %s, got %+v", domain.NotFoundPath, res)
	}
	if router.last() != domain.NotFoundPath {
		t.Fatalf("expected router sent to %s, got %v", domain.NotFoundPath, router.paths)
	}
}

func TestGuard_AnonymousRedirectsToLogin(t *testing.T) {
	g, source, router := newTestGuard()
	source.state = domain.SessionAnonymous

	res := g.Visit(domain.DashboardPath)
	if res.Decision != DecisionRedirect || res.RedirectTo != domain.LoginPath {
		t.Fatalf("expected redirect to %s, got %+v", domain.LoginPath, res)
	}
	if router.last() != domain.LoginPath {
		t.Fatalf("expected router sent to %s, got %v", domain.LoginPath, router.paths)
	}
}

func TestGuard_UnknownRoleHasNoPaths(t *testing.T) {
	g, source, _ := newTestGuard()
	source.session = &domain.Session{Username: "m", Role: "moderator"}
	source.state = domain.SessionAuthenticated

	if res := g.Evaluate(domain.HomePath); res.Decision != DecisionRedirect {
		t.Fatalf("role without policy entry must be redirected, got %v", res.Decision)
	}
}

func TestGuard_ReEvaluatesOnSessionChange(t *testing.T) {
	g, source, router := newTestGuard()
	source.set(&domain.Session{Username: "alice", Role: domain.RoleUser}, domain.SessionAuthenticated)

	if res := g.Visit(domain.HomePath); res.Decision != DecisionAllow {
		t.Fatalf("expected alice admitted to home, got %v", res.Decision)
	}

	// Logout: the previously allowed path must not stay admitted.
	source.set(nil, domain.SessionAnonymous)
	if router.last() != domain.LoginPath {
		t.Fatalf("expected redirect to login after logout, got %v", router.paths)
	}

	// Logging back in with an admin re-admits the same path.
	router.paths = nil
	source.set(&domain.Session{Username: "admin", Role: domain.RoleAdmin}, domain.SessionAuthenticated)
	if len(router.paths) != 0 {
		t.Fatalf("allowed path must not trigger navigation, got %v", router.paths)
	}
}
