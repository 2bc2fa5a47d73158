// Copyright (c) 2026 Groupdex. All rights reserved.

package rated

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupdex/groupdex/internal/platform/constants"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	entryIDs := []string{
		"0191e2a3-0000-7000-8000-000000000001",
		"0191e2a3-0000-7000-8000-000000000002",
	}

	decoded := codec.Decode(codec.Encode(entryIDs))
	assert.Equal(t, entryIDs, decoded)
}

func TestCodecEmptySet(t *testing.T) {
	codec := NewCodec("test-secret")

	decoded := codec.Decode(codec.Encode(nil))
	assert.Empty(t, decoded)
}

func TestCodecRejectsTampering(t *testing.T) {
	codec := NewCodec("test-secret")
	value := codec.Encode([]string{"0191e2a3-0000-7000-8000-000000000001"})

	testCases := []struct {
		name  string
		value string
	}{
		{name: "flipped payload byte", value: "x" + value[1:]},
		{name: "truncated signature", value: value[:len(value)-2]},
		{name: "missing separator", value: "bm90LWEtY29va2ll"},
		{name: "garbage", value: "!!!not-base64!!!"},
		{name: "empty", value: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Empty(t, codec.Decode(testCase.value))
		})
	}
}

func TestCodecRejectsForeignKey(t *testing.T) {
	signer := NewCodec("secret-a")
	verifier := NewCodec("secret-b")

	value := signer.Encode([]string{"0191e2a3-0000-7000-8000-000000000001"})
	assert.Empty(t, verifier.Decode(value))
}

func TestFromRequestMissingCookie(t *testing.T) {
	codec := NewCodec("test-secret")
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, codec.FromRequest(request))
}

func TestWriteSetsSignedCookie(t *testing.T) {
	codec := NewCodec("test-secret")
	recorder := httptest.NewRecorder()

	entryIDs := []string{"0191e2a3-0000-7000-8000-000000000001"}
	codec.Write(recorder, entryIDs)

	response := recorder.Result()
	defer response.Body.Close()

	cookies := response.Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, constants.RatedCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, entryIDs, codec.Decode(cookie.Value))
}

func TestContains(t *testing.T) {
	entryIDs := []string{"a", "b"}

	assert.True(t, Contains(entryIDs, "a"))
	assert.False(t, Contains(entryIDs, "c"))
	assert.False(t, Contains(nil, "a"))
}
