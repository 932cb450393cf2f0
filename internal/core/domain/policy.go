package domain

// Well-known application paths. LoginPath and NotFoundPath are redirect
// targets baked into the auth flow; the rest exist for policy defaults and
// consumers.
const (
	HomePath         = "/"
	DashboardPath    = "/dashboard"
	LoginPath        = "/auth/login"
	RegistrationPath = "/auth/registration"
	NotFoundPath     = "/not-found"
)

// RoutePolicy maps a role to the set of paths it may visit. A role with no
// entry is permitted nothing.
type RoutePolicy map[string][]string

// Allows reports whether the policy permits role to visit path.
// Matching is exact; there is no prefix or wildcard semantics.
func (p RoutePolicy) Allows(role, path string) bool {
	for _, allowed := range p[role] {
		if allowed == path {
			return true
		}
	}
	return false
}

// DefaultRoutePolicy returns the built-in role→paths mapping used when no
// policy file is configured.
func DefaultRoutePolicy() RoutePolicy {
	return RoutePolicy{
		RoleAdmin: {HomePath, DashboardPath},
		RoleUser:  {HomePath},
	}
}
