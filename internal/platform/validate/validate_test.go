// Copyright (c) 2026 Groupdex. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/apperr"
	"github.com/groupdex/groupdex/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Groupdex", false},
		{"empty_string", "title", "", true},
		{"whitespace_only", "title", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_URL checks the absolute-URL validation rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_https", "https://chat.whatsapp.com/AbCdEf123", true},
		{"valid_http", "http://example.com/x", true},
		{"missing_scheme", "chat.whatsapp.com/AbCdEf123", false},
		{"bad_scheme", "ftp://example.com/x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("link", tt.value)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Prefix checks the invite-prefix rule used by the submission flow.
*/
func TestValidator_Prefix(t *testing.T) {
	v := &validate.Validator{}
	v.Prefix("link", "https://chat.whatsapp.com/AbC", "https://chat.whatsapp.com/", "Must be a group invite link")
	assert.False(t, v.HasErrors())

	v2 := &validate.Validator{}
	v2.Prefix("link", "https://example.com/AbC", "https://chat.whatsapp.com/", "Must be a group invite link")
	require.True(t, v2.HasErrors())

	ae := apperr.As(v2.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "Must be a group invite link", ae.Details[0].Message)
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("title", "Berlin Football Fans").
		MinLen("title", "Berlin Football Fans", 5).
		MinLen("description", "A weekly five-a-side meetup group.", 20).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").            // Fails
		MinLen("description", "shrt", 20). // Fails
		OneOf("type", "server", "group", "channel"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
