package ports

// Router is the navigation collaborator. Implementations own page dispatch;
// the auth core only issues commands.
type Router interface {
	Navigate(path string)
}

// Notifier surfaces transient user-facing messages. Purely informational:
// implementations must not affect auth state.
type Notifier interface {
	Success(message string)
	Error(message string)
}
