// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package nav implements the navigation authorization guard.

The guard intercepts every in-app navigation attempt, consults the session's
authentication status, and redirects unauthenticated users away from protected
destinations while preserving the intended destination for the post-login
redirect.

Architecture:

  - Pure decision: No network calls, no store mutation — the guard is a
    synchronous function over the route's declared requirement and the
    session's derived predicate.
  - Route table: The application's destinations and their requiresAuth flags
    live in routes.go.
*/
package nav

import (
	"net/url"

	"github.com/taibuivan/kinora/internal/platform/constants"
)

// # Contracts & Types

// SessionState is the read-only view of the session the guard consults.
//
// # Why an interface?
//
// The guard never mutates session state; depending on the single predicate
// keeps it decoupled from the session manager and trivially testable.
type SessionState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of one navigation attempt.
type Decision struct {
	// Allowed reports whether navigation to the target may proceed.
	Allowed bool
	// RedirectPath is the alternate destination when navigation is blocked.
	RedirectPath string
	// RedirectQuery carries the originally intended full path for the
	// post-login redirect.
	RedirectQuery url.Values
}

// RedirectURL renders the redirect destination as a single navigable string.
func (d Decision) RedirectURL() string {
	if d.Allowed || d.RedirectPath == "" {
		return ""
	}
	redirect := url.URL{Path: d.RedirectPath, RawQuery: d.RedirectQuery.Encode()}
	return redirect.String()
}

// Guard gates every in-app navigation against the session state.
type Guard struct {
	session SessionState
}

// NewGuard constructs a [Guard] consulting the given session.
func NewGuard(session SessionState) *Guard {
	return &Guard{session: session}
}

// # Navigation Decisions

/*
Resolve decides whether navigation to the target route may proceed.

Description: Routes without an auth requirement always proceed. Protected
routes proceed for authenticated sessions; anonymous sessions are redirected
to the login destination with the original full path carried in the
"redirect" query parameter.

Parameters:
  - route: The target route's declaration
  - fullPath: The originally intended full path (including any query string)

Returns:
  - Decision: Allow or redirect
*/
func (guard *Guard) Resolve(route Route, fullPath string) Decision {
	if !route.RequiresAuth {
		return Decision{Allowed: true}
	}

	if guard.session.IsAuthenticated() {
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed:      false,
		RedirectPath: constants.LoginPath,
		RedirectQuery: url.Values{
			constants.RedirectQueryParam: {fullPath},
		},
	}
}

/*
ResolvePath decides a navigation attempt from a concrete path.

Description: Convenience over [Guard.Resolve] — matches the path against the
route table first. Unknown paths proceed unconditionally, mirroring routes
with no declared requirement.

Parameters:
  - fullPath: Concrete navigation path (may include a query string)

Returns:
  - Decision: Allow or redirect
*/
func (guard *Guard) ResolvePath(fullPath string) Decision {
	route, ok := Match(fullPath)
	if !ok {
		return Decision{Allowed: true}
	}
	return guard.Resolve(route, fullPath)
}
