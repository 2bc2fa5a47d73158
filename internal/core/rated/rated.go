// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package rated tracks which entries a visitor has already rated.

The rated set is a client-side cookie holding the entry ids the visitor has
rated, signed with HMAC-SHA256 so that a tampered or hand-crafted value is
indistinguishable from an empty set. This is deliberately a per-browser
device, not an identity system: clearing cookies resets the set, which is an
accepted limitation of anonymous rating.
*/
package rated

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/groupdex/groupdex/internal/platform/constants"
)

// Codec signs and verifies the rated-set cookie value.
//
// # Concurrency
//
// Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec keyed by the application session secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

/*
Encode serializes and signs a set of entry ids.

The wire format is base64url(json-array) + "." + base64url(hmac-sha256).
*/
func (codec *Codec) Encode(entryIDs []string) string {
	if entryIDs == nil {
		entryIDs = []string{}
	}

	payload, err := json.Marshal(entryIDs)
	if err != nil {
		// A []string cannot fail to marshal.
		return ""
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + codec.sign(encoded)
}

/*
Decode verifies and parses a cookie value.

Returns:
  - []string: The rated entry ids, empty on any malformed or tampered input
*/
func (codec *Codec) Decode(value string) []string {
	encoded, signature, found := strings.Cut(value, ".")
	if !found {
		return nil
	}

	expected := codec.sign(encoded)
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var entryIDs []string
	if err := json.Unmarshal(payload, &entryIDs); err != nil {
		return nil
	}

	return entryIDs
}

// FromRequest reads and decodes the rated set from the request cookie.
// A missing cookie yields an empty set.
func (codec *Codec) FromRequest(request *http.Request) []string {
	cookie, err := request.Cookie(constants.RatedCookieName)
	if err != nil {
		return nil
	}
	return codec.Decode(cookie.Value)
}

// Write sets the signed rated-set cookie on the response.
func (codec *Codec) Write(writer http.ResponseWriter, entryIDs []string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RatedCookieName,
		Value:    codec.Encode(entryIDs),
		Path:     "/",
		Expires:  time.Now().Add(constants.RatedCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Contains reports whether the rated set already includes the entry id.
func Contains(entryIDs []string, entryID string) bool {
	for _, id := range entryIDs {
		if id == entryID {
			return true
		}
	}
	return false
}

// sign computes the base64url HMAC-SHA256 tag over the encoded payload.
func (codec *Codec) sign(encoded string) string {
	mac := hmac.New(sha256.New, codec.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
