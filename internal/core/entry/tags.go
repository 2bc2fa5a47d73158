// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import "strings"

const (
	maxTags      = 10
	maxTagLength = 30
)

/*
SanitizeTags converts a raw comma-separated tag string into the canonical
tag sequence stored on an entry.

Pipeline, in order: split on commas, trim, strip every character outside
[A-Za-z0-9 ], truncate to 30 characters, trim again, drop anything shorter
than 2 characters, deduplicate keeping the first occurrence (case-sensitive,
original order preserved), cap at 10 tags.

The function is pure and idempotent: sanitizing its own output returns the
same sequence.
*/
func SanitizeTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0, maxTags)

	for _, candidate := range strings.Split(raw, ",") {
		tag := stripDisallowed(strings.TrimSpace(candidate))
		if len(tag) > maxTagLength {
			tag = tag[:maxTagLength]
		}
		tag = strings.TrimSpace(tag)
		if len(tag) <= 1 {
			continue
		}

		if _, duplicate := seen[tag]; duplicate {
			continue
		}
		seen[tag] = struct{}{}

		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}

	if len(tags) == 0 {
		return nil
	}
	return tags
}

// JoinTags renders a stored tag sequence back into the comma-separated form
// used by the submission form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// stripDisallowed removes every rune outside [A-Za-z0-9 ].
func stripDisallowed(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ':
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
