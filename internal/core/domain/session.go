package domain

import "errors"

// ErrNotHydrated is returned when an operation requires the startup storage
// read to have completed first.
var ErrNotHydrated = errors.New("auth state not hydrated")

// Session is the current identity's projection: a User with the password
// hash stripped. It is the only shape ever written to the session store.
type Session struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionState represents the lifecycle of the current-session slot.
type SessionState int

const (
	// SessionUnknown means durable storage has not been read yet.
	SessionUnknown SessionState = iota
	// SessionAnonymous means storage was read and no identity is present.
	SessionAnonymous
	// SessionAuthenticated means a signed-in identity is present.
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
