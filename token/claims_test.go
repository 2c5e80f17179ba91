package token_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketdesk/sellerctl/token"
)

func buildToken(payload string) string {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	header := encode(`{"alg":"HS256","typ":"JWT"}`)
	return header + "." + encode(payload) + ".signature"
}

func TestSellerIDFromNumericIDClaim(t *testing.T) {
	id, err := token.SellerID(buildToken(`{"id":7,"email":"a@b.com"}`))
	require.NoError(t, err)
	require.Equal(t, "7", id)
}

func TestSellerIDFromSellerIDClaim(t *testing.T) {
	id, err := token.SellerID(buildToken(`{"sellerId":42}`))
	require.NoError(t, err)
	require.Equal(t, "42", id)
}

func TestSellerIDPrefersIDOverSellerID(t *testing.T) {
	id, err := token.SellerID(buildToken(`{"id":"7","sellerId":42}`))
	require.NoError(t, err)
	require.Equal(t, "7", id)
}

func TestSellerIDSoftFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"no segments", "notatoken"},
		{"single dot", "abc.def"},
		{"payload not base64", "eyJhbGciOiJIUzI1NiJ9.!!!notbase64!!!.sig"},
		{"payload not json", "eyJhbGciOiJIUzI1NiJ9.bm90anNvbg.sig"},
		{"no id claim", buildToken(`{"email":"a@b.com"}`)},
		{"empty string id claim", buildToken(`{"id":""}`)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := token.SellerID(tc.raw)
			require.ErrorIs(t, err, token.ErrSellerIDUnavailable)
		})
	}
}
