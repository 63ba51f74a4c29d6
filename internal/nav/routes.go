// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package nav

import "strings"

// # Route Surface

// Route declares one navigable destination and its access requirement.
type Route struct {
	// Name is the stable identifier of the route.
	Name string
	// Pattern is the path pattern; "{...}" segments match any single segment.
	Pattern string
	// RequiresAuth marks destinations reserved for authenticated users.
	RequiresAuth bool
}

// Routes returns the application's route table.
//
// The protected destinations are the user profile and the personal
// movie-list views; everything else is public.
func Routes() []Route {
	return []Route{
		{Name: "home", Pattern: "/"},
		{Name: "login", Pattern: "/login"},
		{Name: "register", Pattern: "/register"},
		{Name: "movie-detail", Pattern: "/movie/{id}"},
		{Name: "weekly-trending", Pattern: "/trending/week"},
		{Name: "daily-trending", Pattern: "/trending/day"},
		{Name: "profile", Pattern: "/profile", RequiresAuth: true},
		{Name: "movie-list", Pattern: "/movie-list", RequiresAuth: true},
		{Name: "search", Pattern: "/search"},
	}
}

// # Route Matching

/*
Match resolves a concrete path against the route table.

Description: Query strings are ignored for matching; "{...}" pattern segments
match any single non-empty path segment.

Parameters:
  - path: Concrete navigation path (may include a query string)

Returns:
  - Route: The matched route
  - bool: false when no route matches
*/
func Match(path string) (Route, bool) {
	// Strip the query string before segment comparison.
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	for _, route := range Routes() {
		if matchPattern(route.Pattern, path) {
			return route, true
		}
	}
	return Route{}, false
}

// matchPattern compares a concrete path against a pattern segment by segment.
func matchPattern(pattern, path string) bool {
	patternParts := splitPath(pattern)
	pathParts := splitPath(path)

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i, part := range patternParts {
		// Wildcard segments match any non-empty value.
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}

	return true
}

// splitPath breaks a path into its non-empty segments.
func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
