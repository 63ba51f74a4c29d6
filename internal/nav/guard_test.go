// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package nav_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kinora/internal/nav"
)

// fakeSession is a scripted authentication predicate.
type fakeSession struct {
	authenticated bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }

/*
TestGuard_RedirectCarriesFullPath verifies that an anonymous navigation to a
protected destination redirects to login with the intended full path preserved.
*/
func TestGuard_RedirectCarriesFullPath(t *testing.T) {
	guard := nav.NewGuard(&fakeSession{authenticated: false})

	decision := guard.ResolvePath("/movie-list?sort=recent")

	// 1. Navigation is blocked and redirected to the login destination.
	assert.False(t, decision.Allowed)
	assert.Equal(t, "/login", decision.RedirectPath)

	// 2. The redirect query carries the original full path, query included.
	assert.Equal(t, "/movie-list?sort=recent", decision.RedirectQuery.Get("redirect"))

	// 3. The rendered URL round-trips back to the intended destination.
	rendered, err := url.Parse(decision.RedirectURL())
	require.NoError(t, err)
	assert.Equal(t, "/login", rendered.Path)
	assert.Equal(t, "/movie-list?sort=recent", rendered.Query().Get("redirect"))
}

/*
TestGuard_AuthenticatedProceeds verifies that an authenticated session passes
protected destinations.
*/
func TestGuard_AuthenticatedProceeds(t *testing.T) {
	guard := nav.NewGuard(&fakeSession{authenticated: true})

	assert.True(t, guard.ResolvePath("/profile").Allowed)
	assert.True(t, guard.ResolvePath("/movie-list").Allowed)
}

/*
TestGuard_PublicAlwaysProceeds verifies that public and unknown destinations
proceed regardless of the session state.
*/
func TestGuard_PublicAlwaysProceeds(t *testing.T) {
	guard := nav.NewGuard(&fakeSession{authenticated: false})

	for _, path := range []string{
		"/",
		"/login",
		"/register",
		"/movie/42",
		"/trending/week",
		"/search?query=blade",
		"/nonexistent/path",
	} {
		decision := guard.ResolvePath(path)
		assert.True(t, decision.Allowed, "path %q should proceed", path)
		assert.Empty(t, decision.RedirectURL())
	}
}

/*
TestMatch verifies route-table matching including wildcard segments and query
stripping.
*/
func TestMatch(t *testing.T) {
	// 1. Exact paths resolve to their routes.
	route, ok := nav.Match("/profile")
	require.True(t, ok)
	assert.Equal(t, "profile", route.Name)
	assert.True(t, route.RequiresAuth)

	// 2. Wildcard segments match any single non-empty value.
	route, ok = nav.Match("/movie/42")
	require.True(t, ok)
	assert.Equal(t, "movie-detail", route.Name)
	assert.False(t, route.RequiresAuth)

	_, ok = nav.Match("/movie/42/extra")
	assert.False(t, ok)

	// 3. Query strings do not affect matching.
	route, ok = nav.Match("/movie-list?sort=recent")
	require.True(t, ok)
	assert.Equal(t, "movie-list", route.Name)

	// 4. Unknown paths do not match.
	_, ok = nav.Match("/admin")
	assert.False(t, ok)
}
