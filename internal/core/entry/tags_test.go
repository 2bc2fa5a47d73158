// Copyright (c) 2026 Groupdex. All rights reserved.

package entry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTags(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "plain list",
			raw:      "crypto, trading, signals",
			expected: []string{"crypto", "trading", "signals"},
		},
		{
			name:     "strips disallowed characters",
			raw:      "c#ry!pto, tra_ding-24/7",
			expected: []string{"crypto", "trading247"},
		},
		{
			name:     "case sensitive dedup keeps first occurrence",
			raw:      "News, news, News",
			expected: []string{"News", "news"},
		},
		{
			name:     "drops single characters and empties",
			raw:      "a, , !, go, x",
			expected: []string{"go"},
		},
		{
			name:     "preserves inner spaces",
			raw:      "job alerts , remote work",
			expected: []string{"job alerts", "remote work"},
		},
		{
			name:     "empty input",
			raw:      "   ",
			expected: nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, SanitizeTags(testCase.raw))
		})
	}
}

func TestSanitizeTagsCapsAtTen(t *testing.T) {
	raw := "t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11, t12"

	tags := SanitizeTags(raw)
	assert.Len(t, tags, 10)
	assert.Equal(t, "t1", tags[0])
	assert.Equal(t, "t10", tags[9])
}

func TestSanitizeTagsTruncatesLongTags(t *testing.T) {
	long := strings.Repeat("ab", 40)

	tags := SanitizeTags(long)
	assert.Len(t, tags, 1)
	assert.Len(t, tags[0], 30)
}

// Sanitizing the sanitizer's own output must be a no-op.
func TestSanitizeTagsIdempotent(t *testing.T) {
	inputs := []string{
		"crypto, trading, signals",
		"  Messy!!, in PUT , " + strings.Repeat("long", 20) + ", dup, dup",
		"News, news, a, , GO GO GO",
	}

	for _, raw := range inputs {
		first := SanitizeTags(raw)
		second := SanitizeTags(JoinTags(first))
		assert.Equal(t, first, second, "input: %q", raw)
	}
}
