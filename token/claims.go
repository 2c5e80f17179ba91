package token

import (
	"errors"
	"strconv"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrSellerIDUnavailable is returned whenever the seller id cannot be
// recovered from a token, whatever the reason.
var ErrSellerIDUnavailable = errors.New("seller id unavailable in token")

// SellerID decodes the payload segment of a bearer token WITHOUT verifying
// the signature and returns the embedded seller identifier. This is a
// best-effort convenience for scoping queries ("list my products") when a
// response body does not carry the id; it must never feed an authorization
// decision. The backend stays the sole authority on token validity.
//
// Every failure mode - missing payload segment, undecodable text, no id
// claim - yields ErrSellerIDUnavailable rather than a panic or a logout.
func SellerID(raw string) (string, error) {
	unverified, _, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return "", ErrSellerIDUnavailable
	}

	claims, ok := unverified.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", ErrSellerIDUnavailable
	}

	for _, key := range []string{"id", "sellerId"} {
		value, ok := claims[key]
		if !ok {
			continue
		}
		switch id := value.(type) {
		case string:
			if id != "" {
				return id, nil
			}
		case float64:
			return strconv.FormatInt(int64(id), 10), nil
		}
	}

	return "", ErrSellerIDUnavailable
}
