// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared helpers for page-based remote fetches.
//
// # Overview
//
// The remote service exposes 1-based page numbers in its trending endpoints.
// Paging is stateless on the client: each fetch supplies its own page number
// and no "current page" is retained between calls.
package pagination

// DefaultPage is the starting page (1-indexed).
const DefaultPage = 1

// Clamp normalizes a caller-supplied page number.
//
// # Clamping
//
// Zero and negative values are treated as "not specified" and clamped to
// [DefaultPage].
func Clamp(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}
