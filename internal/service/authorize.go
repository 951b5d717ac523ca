package service

// Well-known routes of the navigation surface.
const (
	// DefaultRoute is the landing route after login and the escape
	// target from the access-denied screen.
	DefaultRoute = "/"

	// LoginRoute hosts the login protocol and is reachable in every
	// authentication state.
	LoginRoute = "/login"
)

// Decision is the route authorizer's verdict for a navigation target.
type Decision int

const (
	// DecisionPending means authentication or permission loading is
	// still in flight; render a waiting indicator, no content.
	DecisionPending Decision = iota

	// DecisionAllow renders the target.
	DecisionAllow

	// DecisionDeny renders the access-denied state (or redirects to
	// login when anonymous; that distinction is the guard's job).
	DecisionDeny
)

// Authorize is the pure route-access decision. canAccess is the
// route-membership answer for path, normally
// [PermissionService.CanAccessRoute]; it only matters for
// authenticated identities. Anonymous navigation is allowed through
// here because the guards own the redirect-to-login behavior.
func Authorize(path string, authStatus AuthStatus, permStatus PermissionStatus, canAccess bool) Decision {
	switch {
	case authStatus == AuthResolving:
		return DecisionPending
	case authStatus == AuthAuthenticated && permStatus != PermissionsLoaded:
		return DecisionPending
	case authStatus == AuthAuthenticated && !canAccess && path != LoginRoute:
		return DecisionDeny
	default:
		return DecisionAllow
	}
}
