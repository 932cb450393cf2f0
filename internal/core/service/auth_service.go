package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mykare/auth-core/internal/core/domain"
	"github.com/mykare/auth-core/internal/core/ports"
	"github.com/mykare/auth-core/internal/metrics"
)

// AuthService implements registration, login and logout over an injected
// directory, hasher and session store. The session slot moves
// Unknown → Anonymous/Authenticated → Anonymous; it is never Unknown again
// after Hydrate.
type AuthService struct {
	directory ports.UserDirectory
	hasher    ports.CredentialHasher
	sessions  ports.SessionStore
	router    ports.Router
	log       zerolog.Logger

	mu      sync.Mutex
	session *domain.Session
	state   domain.SessionState
	subs    map[int]func()
	nextSub int
}

func NewAuthService(directory ports.UserDirectory, hasher ports.CredentialHasher,
	sessions ports.SessionStore, router ports.Router, log zerolog.Logger) *AuthService {
	return &AuthService{
		directory: directory,
		hasher:    hasher,
		sessions:  sessions,
		router:    router,
		log:       log,
		state:     domain.SessionUnknown,
		subs:      make(map[int]func()),
	}
}

// Hydrate performs the one-time startup read: directory load, admin
// bootstrap, session rehydration. Repeated calls just re-read storage.
func (s *AuthService) Hydrate(ctx context.Context) error {
	if err := s.directory.Load(ctx); err != nil {
		return err
	}
	if err := s.directory.BootstrapAdmin(ctx); err != nil {
		return err
	}

	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return err
	}
	s.setSession(sess)
	s.log.Info().Str("state", s.stateString()).Msg("auth state hydrated")
	return nil
}

// Register creates a new account and signs it in. An empty role defaults to
// the unprivileged user role. The session is only mutated after every prior
// step has succeeded.
func (s *AuthService) Register(ctx context.Context, fullname, username, password, role string) (*domain.Session, error) {
	if _, state := s.Current(); state == domain.SessionUnknown {
		return nil, domain.ErrNotHydrated
	}
	if role == "" {
		role = domain.RoleUser
	}
	if err := validateRegistration(fullname, username, password, role); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if _, err := s.directory.FindByUsername(ctx, username); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrDuplicateUsername
	}

	hashed, err := s.hasher.Hash(ctx, password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	user := &domain.User{
		Fullname:     fullname,
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.directory.Add(ctx, user); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	sess := user.Project()
	if err := s.sessions.Save(ctx, sess); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.setSession(sess)

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", username).Str("role", role).Msg("user registered")
	return sess, nil
}

// Login authenticates by username and password. Unknown usernames and wrong
// passwords are reported with the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if _, state := s.Current(); state == domain.SessionUnknown {
		return nil, domain.ErrNotHydrated
	}
	user, err := s.directory.FindByUsername(ctx, username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.log.Debug().Str("username", username).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	sess := user.Project()
	if err := s.sessions.Save(ctx, sess); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	s.setSession(sess)

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("username", username).Str("role", user.Role).Msg("login successful")
	return sess, nil
}

// Logout clears the session and navigates to the login path. It cannot fail;
// a storage error only loses the persisted copy, the in-memory state still
// becomes anonymous.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("clearing persisted session failed")
	}
	s.setSession(nil)

	metrics.LogoutsTotal.Inc()
	s.log.Info().Msg("logged out")
	s.router.Navigate(domain.LoginPath)
}

// Current returns the active session projection and the lifecycle state. The
// projection is nil unless the state is SessionAuthenticated.
func (s *AuthService) Current() (*domain.Session, domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, s.state
	}
	clone := *s.session
	return &clone, s.state
}

// AllUsers exposes the directory's public projection.
func (s *AuthService) AllUsers(ctx context.Context) ([]*domain.Session, error) {
	return s.directory.AllUsers(ctx)
}

// Subscribe registers fn to run synchronously after every session mutation.
func (s *AuthService) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// setSession updates the slot and fans out to subscribers. Subscribers run
// outside the lock so they may call Current.
func (s *AuthService) setSession(sess *domain.Session) {
	s.mu.Lock()
	s.session = sess
	if sess == nil {
		s.state = domain.SessionAnonymous
	} else {
		s.state = domain.SessionAuthenticated
	}
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *AuthService) stateString() string {
	_, state := s.Current()
	return state.String()
}
