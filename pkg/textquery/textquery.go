// Copyright (c) 2026 Kinora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textquery prepares free-form Unicode search input for transmission.
//
// # Usage
//
// Search terms typed by users arrive in inconsistent Unicode forms (composed vs
// decomposed accents, stray whitespace). This package canonicalizes them so that
// identical-looking queries produce identical request URLs.
package textquery

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// multiSpace collapses runs of whitespace into a single space.
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize converts an arbitrary Unicode search string into canonical form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes decomposed sequences: e + combining acute → é).
// 2. Trims leading and trailing whitespace.
// 3. Collapses internal whitespace runs into single spaces.
func Normalize(s string) string {
	// 1. Canonical composition
	result := norm.NFC.String(s)

	// 2. Trim edges
	result = strings.TrimSpace(result)

	// 3. Collapse internal whitespace
	result = multiSpace.ReplaceAllString(result, " ")

	return result
}
