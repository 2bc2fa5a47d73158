// Copyright (c) 2026 Groupdex. All rights reserved.

// Package query contains helpers for parsing structured values out of URL
// query parameters and environment-style strings.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated value into a trimmed slice.
// Empty segments are dropped; an empty input yields nil.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}

	var result []string
	for _, segment := range strings.Split(val, ",") {
		clean := strings.TrimSpace(segment)
		if clean != "" {
			result = append(result, clean)
		}
	}

	return result
}
