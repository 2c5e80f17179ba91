package api

import (
	"context"
	"net/http"

	"github.com/marketdesk/sellerctl/session"
)

// OwnProfile fetches the authenticated seller's full profile. The backend
// resolves the seller from the bearer token.
func (c *Client) OwnProfile(ctx context.Context) (*session.SellerProfile, error) {
	var out session.SellerProfile
	if err := c.do(ctx, http.MethodGet, ownProfilePath, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
